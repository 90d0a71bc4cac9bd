package parse

import (
	"errors"

	"github.com/signadot/objsig/value"
)

var (
	ErrParse     = errors.New("parse error")
	ErrDupKey    = errors.New("duplicate key")
	ErrTooDeep   = value.ErrTooDeep
	ErrUnsupport = errors.New("unsupported value")
)
