package notation

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/objsig/canon"
	"github.com/signadot/objsig/debug"
	"github.com/signadot/objsig/encode"
	"github.com/signadot/objsig/value"
)

const (
	NullTag   = "_"
	BoolTag   = "B"
	NumberTag = "N"
	StringTag = "S"
	ArrayTag  = "A"
	ObjectTag = "H"
)

var (
	ErrTooDeep   = value.ErrTooDeep
	ErrMalformed = value.ErrMalformed
)

// Notate returns the notation of v. It fails with ErrTooDeep if v is nested
// deeper than the configured limit and with ErrMalformed if v is not a well
// formed tree.
func Notate(v *value.Value, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Write(&b, v, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func MustNotate(v *value.Value, opts ...Option) string {
	s, err := Notate(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Write writes the notation of v to w.
func Write(w io.Writer, v *value.Value, opts ...Option) error {
	o := newOpts(opts)
	depth, err := value.Check(v, o.maxDepth)
	if err != nil {
		return fmt.Errorf("cannot notate: %w", err)
	}
	n := &notator{w: w, colors: o.colors}
	n.notate(canon.Sort(v))
	if n.err != nil {
		return fmt.Errorf("error writing notation: %w", n.err)
	}
	if debug.Notate() {
		debug.Logf("notated %s (depth %d)\n", encode.MustString(v), depth)
	}
	return nil
}

type notator struct {
	w      io.Writer
	err    error
	colors *encode.Colors
}

func (n *notator) notate(t *canon.Tree) {
	v := t.Value
	switch v.Type {
	case value.NullType:
		n.tag(v.Type, NullTag)
	case value.BoolType:
		if v.Bool {
			n.content(v.Type, "true")
		} else {
			n.content(v.Type, "false")
		}
		n.tag(v.Type, BoolTag)
	case value.NumberType:
		n.content(v.Type, v.Number)
		n.tag(v.Type, NumberTag)
	case value.StringType:
		n.content(v.Type, v.String)
		n.tag(v.Type, StringTag)
	case value.ArrayType:
		for _, c := range t.Children {
			n.notate(c)
		}
		n.tag(v.Type, ArrayTag)
	case value.ObjectType:
		for _, pair := range t.Children {
			n.notate(pair)
		}
		n.tag(v.Type, ObjectTag)
	}
}

func (n *notator) content(t value.Type, s string) {
	if n.colors != nil {
		s = n.colors.Color(t, encode.ValueColor, s)
	}
	n.write(s)
}

func (n *notator) tag(t value.Type, s string) {
	if n.colors != nil {
		s = n.colors.Color(t, encode.TagColor, s)
	}
	n.write(s)
}

func (n *notator) write(s string) {
	if n.err != nil {
		return
	}
	_, n.err = io.WriteString(n.w, s)
}
