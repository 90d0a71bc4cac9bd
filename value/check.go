package value

import (
	"fmt"
	"strconv"
	"strings"
)

type frame struct {
	v      *Value
	depth  int
	parent *frame
	index  int
}

// path renders a JSONPath-style location such as $.a[1]. It is only built
// when reporting an error.
func (fr *frame) path() string {
	var parts []string
	for f := fr; f.parent != nil; f = f.parent {
		if f.parent.v.Type == ObjectType {
			parts = append(parts, "."+f.parent.v.Fields[f.index].String)
			continue
		}
		parts = append(parts, "["+strconv.Itoa(f.index)+"]")
	}
	var b strings.Builder
	b.WriteString("$")
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
	}
	return b.String()
}

// Check verifies that v is a well formed tree no deeper than maxDepth and
// returns its depth. A scalar has depth 0. A maxDepth < 0 means no limit.
//
// Check uses an explicit stack so that it is safe to call on trees that are
// too deep to recurse over.
func Check(v *Value, maxDepth int) (int, error) {
	res := 0
	stack := []*frame{{v: v}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fr.v == nil {
			return 0, fmt.Errorf("%w: nil value at %s", ErrMalformed, fr.path())
		}
		if !fr.v.Type.valid() {
			return 0, fmt.Errorf("%w: unknown type %d at %s", ErrMalformed, fr.v.Type, fr.path())
		}
		if maxDepth >= 0 && fr.depth > maxDepth {
			return 0, fmt.Errorf("%w: depth exceeds limit %d at %s", ErrTooDeep, maxDepth, fr.path())
		}
		res = max(res, fr.depth)
		switch fr.v.Type {
		case ArrayType:
		case ObjectType:
			if err := checkFields(fr); err != nil {
				return 0, err
			}
		case NumberType:
			if fr.v.Number == "" {
				return 0, fmt.Errorf("%w: empty number at %s", ErrMalformed, fr.path())
			}
			continue
		default:
			continue
		}
		for i, c := range fr.v.Values {
			stack = append(stack, &frame{v: c, depth: fr.depth + 1, parent: fr, index: i})
		}
	}
	return res, nil
}

func checkFields(fr *frame) error {
	v := fr.v
	if len(v.Fields) != len(v.Values) {
		return fmt.Errorf("%w: %d fields and %d values at %s", ErrMalformed, len(v.Fields), len(v.Values), fr.path())
	}
	seen := make(map[string]struct{}, len(v.Fields))
	for i, f := range v.Fields {
		if f == nil || f.Type != StringType {
			return fmt.Errorf("%w: field %d is not a string at %s", ErrMalformed, i, fr.path())
		}
		if _, dup := seen[f.String]; dup {
			return fmt.Errorf("%w: duplicate key %q at %s", ErrMalformed, f.String, fr.path())
		}
		seen[f.String] = struct{}{}
	}
	return nil
}
