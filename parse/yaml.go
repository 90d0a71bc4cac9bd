package parse

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/signadot/objsig/value"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// parseYAML converts the first document of data. Scalars are typed by the
// YAML core schema. Integers and floats keep their source text when it is
// also a JSON number.
func parseYAML(data []byte, maxDepth int) (*value.Value, error) {
	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return value.Null(), nil
	}
	y := &yamlConv{
		anchors:  map[string]ast.Node{},
		active:   map[string]bool{},
		maxDepth: maxDepth,
	}
	return y.convert(f.Docs[0].Body, 0)
}

type yamlConv struct {
	anchors map[string]ast.Node
	// anchors whose node is being converted
	active   map[string]bool
	maxDepth int
}

func (y *yamlConv) convert(node ast.Node, depth int) (*value.Value, error) {
	if err := checkDepth(depth, y.maxDepth); err != nil {
		return nil, err
	}
	switch n := node.(type) {
	case nil, *ast.NullNode:
		return value.Null(), nil
	case *ast.BoolNode:
		return value.FromBool(n.Value), nil
	case *ast.IntegerNode:
		return yamlNumber(n.GetToken().Value, n.Value), nil
	case *ast.FloatNode:
		return yamlNumber(n.GetToken().Value, n.Value), nil
	case *ast.InfinityNode, *ast.NanNode:
		return nil, fmt.Errorf("%w: %s is not a finite number", ErrUnsupport, node.GetToken().Value)
	case *ast.StringNode:
		return value.FromString(n.Value), nil
	case *ast.LiteralNode:
		return value.FromString(n.Value.Value), nil
	case *ast.TagNode:
		if n.Start != nil && n.Start.Value == "!!str" && n.Value != nil && n.Value.GetToken() != nil {
			return value.FromString(n.Value.GetToken().Value), nil
		}
		return y.convert(n.Value, depth)
	case *ast.AnchorNode:
		name := n.Name.GetToken().Value
		y.anchors[name] = n.Value
		y.active[name] = true
		defer delete(y.active, name)
		return y.convert(n.Value, depth)
	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		target, ok := y.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown alias %q", ErrParse, name)
		}
		if y.active[name] {
			return nil, fmt.Errorf("%w: alias %q refers to its own anchor", ErrParse, name)
		}
		y.active[name] = true
		defer delete(y.active, name)
		return y.convert(target, depth)
	case *ast.SequenceNode:
		vs := make([]*value.Value, len(n.Values))
		for i, elt := range n.Values {
			v, err := y.convert(elt, depth+1)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			vs[i] = v
		}
		return value.FromSlice(vs), nil
	case *ast.MappingNode:
		return y.mapping(n.Values, depth)
	case *ast.MappingValueNode:
		return y.mapping([]*ast.MappingValueNode{n}, depth)
	default:
		return nil, fmt.Errorf("%w: YAML node %s", ErrUnsupport, node.Type())
	}
}

func (y *yamlConv) mapping(mvs []*ast.MappingValueNode, depth int) (*value.Value, error) {
	kvs := make([]value.KeyVal, 0, len(mvs))
	seen := map[string]struct{}{}
	for _, mv := range mvs {
		key, err := y.key(mv.Key)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %w %q", ErrParse, ErrDupKey, key)
		}
		seen[key] = struct{}{}
		v, err := y.convert(mv.Value, depth+1)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		kvs = append(kvs, value.KeyVal{Key: key, Val: v})
	}
	return value.FromKeyVals(kvs), nil
}

func (y *yamlConv) key(k ast.Node) (string, error) {
	switch n := k.(type) {
	case nil:
		return "", fmt.Errorf("%w: empty mapping key", ErrParse)
	case *ast.StringNode:
		return n.Value, nil
	case *ast.MergeKeyNode:
		return "<<", nil
	case *ast.TagNode:
		return y.key(n.Value)
	case *ast.AnchorNode:
		return y.key(n.Value)
	case *ast.MappingKeyNode, *ast.MappingNode, *ast.SequenceNode:
		return "", fmt.Errorf("%w: complex mapping key", ErrUnsupport)
	}
	tok := k.GetToken()
	if tok == nil {
		return "", fmt.Errorf("%w: empty mapping key", ErrParse)
	}
	return tok.Value, nil
}

// yamlNumber keeps the literal text of a YAML number when it is also a JSON
// number. Other spellings (0x1F, 1_000, .5, +1) are written out from the
// decoded value.
func yamlNumber(lit string, v any) *value.Value {
	if json.Valid([]byte(lit)) {
		return value.FromNumber(lit)
	}
	switch x := v.(type) {
	case float64:
		return value.FromNumber(strconv.FormatFloat(x, 'g', -1, 64))
	default:
		return value.FromNumber(fmt.Sprint(x))
	}
}
