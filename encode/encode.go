package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/objsig/value"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	newline bool

	Color func(value.Type, ColorAttr, string) string
}

// Encode writes v as minified JSON. Numbers are written with their literal
// text and strings are escaped minimally, so the output of a given tree is
// fixed byte for byte.
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(v, w, es); err != nil {
		return err
	}
	if es.newline {
		return writeString(w, "\n")
	}
	return nil
}

func encode(v *value.Value, w io.Writer, es *EncState) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrEncoding)
	}
	switch v.Type {
	case value.NullType:
		return writeColor(w, es, v.Type, ValueColor, "null")
	case value.BoolType:
		s := "false"
		if v.Bool {
			s = "true"
		}
		return writeColor(w, es, v.Type, ValueColor, s)
	case value.NumberType:
		if v.Number == "" {
			return fmt.Errorf("%w: empty number literal", ErrEncoding)
		}
		return writeColor(w, es, v.Type, ValueColor, v.Number)
	case value.StringType:
		return writeColor(w, es, v.Type, ValueColor, Quote(v.String))
	case value.ArrayType:
		return encodeArray(v, w, es)
	case value.ObjectType:
		return encodeObject(v, w, es)
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncoding, v.Type)
	}
}

func encodeArray(v *value.Value, w io.Writer, es *EncState) error {
	if err := writeColor(w, es, v.Type, SepColor, "["); err != nil {
		return err
	}
	for i, elt := range v.Values {
		if i > 0 {
			if err := writeColor(w, es, v.Type, SepColor, ","); err != nil {
				return err
			}
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	return writeColor(w, es, v.Type, SepColor, "]")
}

func encodeObject(v *value.Value, w io.Writer, es *EncState) error {
	if len(v.Fields) != len(v.Values) {
		return fmt.Errorf("%w: %d fields and %d values", ErrEncoding, len(v.Fields), len(v.Values))
	}
	if err := writeColor(w, es, v.Type, SepColor, "{"); err != nil {
		return err
	}
	for i, f := range v.Fields {
		if i > 0 {
			if err := writeColor(w, es, v.Type, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeColor(w, es, v.Type, FieldColor, Quote(f.String)); err != nil {
			return err
		}
		if err := writeColor(w, es, v.Type, SepColor, ":"); err != nil {
			return err
		}
		if err := encode(v.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeColor(w, es, v.Type, SepColor, "}")
}

func writeColor(w io.Writer, es *EncState, t value.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// String returns the encoding of v.
func String(v *value.Value, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
