package objsig

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/objsig/debug"
	"github.com/signadot/objsig/encode"
	"github.com/signadot/objsig/notation"
	"github.com/signadot/objsig/parse"
	"github.com/signadot/objsig/value"
)

const Size = md5.Size

var (
	ErrMismatch     = errors.New("signature mismatch")
	ErrBadSignature = errors.New("bad signature")
)

// Sum is a raw signature.
type Sum [Size]byte

func (s Sum) String() string {
	return hex.EncodeToString(s[:])
}

func (s Sum) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Sum) UnmarshalText(d []byte) error {
	res, err := ParseSum(string(d))
	if err != nil {
		return err
	}
	*s = res
	return nil
}

// ParseSum decodes a hex signature. Upper case digits are accepted.
func ParseSum(v string) (Sum, error) {
	var res Sum
	if len(v) != 2*Size {
		return res, fmt.Errorf("%w: %q is not %d hex digits", ErrBadSignature, v, 2*Size)
	}
	if _, err := hex.Decode(res[:], []byte(v)); err != nil {
		return res, fmt.Errorf("%w: %w", ErrBadSignature, err)
	}
	return res, nil
}

type signOpts struct {
	maxDepth int
}

type Option func(*signOpts)

// WithMaxDepth bounds the nesting depth of signed values, see
// notation.MaxDepth.
func WithMaxDepth(n int) Option {
	return func(o *signOpts) { o.maxDepth = n }
}

func newSignOpts(opts []Option) *signOpts {
	o := &signOpts{maxDepth: value.DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *signOpts) notateOpts() []notation.Option {
	return []notation.Option{notation.MaxDepth(o.maxDepth)}
}

// Sign returns the MD5 of the notation of v.
func Sign(v *value.Value, opts ...Option) (Sum, error) {
	var res Sum
	o := newSignOpts(opts)
	h := md5.New()
	if err := notation.Write(h, v, o.notateOpts()...); err != nil {
		return res, err
	}
	copy(res[:], h.Sum(nil))
	if debug.Sign() {
		debug.Logf("signed %s: %s\n", encode.MustString(v), res)
	}
	return res, nil
}

// Signature returns the signature of v as 32 lowercase hex digits.
func Signature(v *value.Value, opts ...Option) (string, error) {
	sum, err := Sign(v, opts...)
	if err != nil {
		return "", err
	}
	return sum.String(), nil
}

func MustSignature(v *value.Value, opts ...Option) string {
	s, err := Signature(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Verify returns nil if sig is the signature of v and an error wrapping
// ErrMismatch if it is not.
func Verify(v *value.Value, sig string, opts ...Option) error {
	want, err := ParseSum(strings.TrimSpace(sig))
	if err != nil {
		return err
	}
	got, err := Sign(v, opts...)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: expected %s, got %s", ErrMismatch, want, got)
	}
	return nil
}

// SignDocument parses data and signs the result.
func SignDocument(data []byte, opts ...parse.ParseOption) (string, error) {
	v, err := parse.Parse(data, opts...)
	if err != nil {
		return "", err
	}
	return Signature(v)
}
