package parse

import (
	"fmt"

	"github.com/signadot/objsig/debug"
	"github.com/signadot/objsig/encode"
	"github.com/signadot/objsig/format"
	"github.com/signadot/objsig/value"
)

// Parse decodes a document into a value tree. Numbers keep their literal
// text and object keys must be unique.
func Parse(data []byte, opts ...ParseOption) (*value.Value, error) {
	o := newParseOpts(opts)
	var (
		res *value.Value
		err error
	)
	switch o.format {
	case format.JSONFormat:
		res, err = parseJSON(data, o.maxDepth)
	case format.YAMLFormat:
		res, err = parseYAML(data, o.maxDepth)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, o.format)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s: %s\n", o.format, encode.MustString(res))
	}
	return res, nil
}

func checkDepth(depth, maxDepth int) error {
	if maxDepth >= 0 && depth > maxDepth {
		return fmt.Errorf("%w: depth exceeds limit %d", ErrTooDeep, maxDepth)
	}
	return nil
}
