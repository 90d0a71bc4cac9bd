package parse

import (
	"github.com/signadot/objsig/format"
	"github.com/signadot/objsig/value"
)

type parseOpts struct {
	format   format.Format
	maxDepth int
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseMaxDepth bounds the nesting depth of documents. It defaults to
// value.DefaultMaxDepth; a negative n disables the bound.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{maxDepth: value.DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
