package value

import "errors"

// DefaultMaxDepth is the nesting limit used unless a caller sets another.
const DefaultMaxDepth = 10000

var (
	ErrMalformed = errors.New("malformed value")
	ErrTooDeep   = errors.New("nesting too deep")
)
