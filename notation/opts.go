package notation

import (
	"github.com/signadot/objsig/encode"
	"github.com/signadot/objsig/value"
)

const DefaultMaxDepth = value.DefaultMaxDepth

type notateOpts struct {
	maxDepth int
	colors   *encode.Colors
}

type Option func(*notateOpts)

// MaxDepth bounds the nesting depth of accepted values. A negative n
// disables the bound.
func MaxDepth(n int) Option {
	return func(o *notateOpts) { o.maxDepth = n }
}

// Colors colorizes content and tags by value type, for display only.
func Colors(c *encode.Colors) Option {
	return func(o *notateOpts) { o.colors = c }
}

func newOpts(opts []Option) *notateOpts {
	o := &notateOpts{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
