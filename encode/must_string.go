package encode

import "github.com/signadot/objsig/value"

func MustString(v *value.Value, opts ...EncodeOption) string {
	s, err := String(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
