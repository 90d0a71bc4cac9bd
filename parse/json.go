package parse

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/objsig/value"

	"github.com/buger/jsonparser"
)

func parseJSON(data []byte, maxDepth int) (*value.Value, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrParse)
	}
	raw, dt, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromJSON(raw, dt, 0, maxDepth)
}

func fromJSON(raw []byte, dt jsonparser.ValueType, depth, maxDepth int) (*value.Value, error) {
	if err := checkDepth(depth, maxDepth); err != nil {
		return nil, err
	}
	switch dt {
	case jsonparser.Null:
		return value.Null(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return value.FromBool(b), nil
	case jsonparser.Number:
		return value.FromNumber(string(raw)), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return value.FromString(s), nil
	case jsonparser.Array:
		return arrayFromJSON(raw, depth, maxDepth)
	case jsonparser.Object:
		return objectFromJSON(raw, depth, maxDepth)
	default:
		return nil, fmt.Errorf("%w: unexpected JSON value %q", ErrParse, raw)
	}
}

func arrayFromJSON(raw []byte, depth, maxDepth int) (*value.Value, error) {
	var (
		vs    []*value.Value
		cbErr error
	)
	_, err := jsonparser.ArrayEach(raw, func(elt []byte, dt jsonparser.ValueType, _ int, err error) {
		if cbErr != nil {
			return
		}
		if err != nil {
			cbErr = fmt.Errorf("%w: %w", ErrParse, err)
			return
		}
		v, err := fromJSON(elt, dt, depth+1, maxDepth)
		if err != nil {
			cbErr = fmt.Errorf("index %d: %w", len(vs), err)
			return
		}
		vs = append(vs, v)
	})
	if cbErr != nil {
		return nil, cbErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return value.FromSlice(vs), nil
}

func objectFromJSON(raw []byte, depth, maxDepth int) (*value.Value, error) {
	var kvs []value.KeyVal
	seen := map[string]struct{}{}
	err := jsonparser.ObjectEach(raw, func(k, elt []byte, dt jsonparser.ValueType, _ int) error {
		// keys arrive unescaped
		key := string(k)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %w %q", ErrParse, ErrDupKey, key)
		}
		seen[key] = struct{}{}
		v, err := fromJSON(elt, dt, depth+1, maxDepth)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		kvs = append(kvs, value.KeyVal{Key: key, Val: v})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value.FromKeyVals(kvs), nil
}
