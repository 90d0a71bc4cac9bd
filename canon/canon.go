package canon

import (
	"slices"
	"strings"

	"github.com/signadot/objsig/debug"
	"github.com/signadot/objsig/encode"
	"github.com/signadot/objsig/value"
)

// Tree is a value whose composites have their children laid out in
// canonical order, at every depth. The children of an object are its
// [key, value] pairs, each ordered like any other array.
type Tree struct {
	Value    *value.Value
	Children []*Tree

	// field is the tree of the value half of a pair.
	field *Tree
}

type keyed struct {
	t    *Tree
	key  string
	name string
	text string
}

// Sort returns the canonical tree of v. The canonical JSON of each subtree
// is built once, bottom-up, and handed to its parent as the ordering key.
// v is not modified.
func Sort(v *value.Value) *Tree {
	t, _ := build(v)
	return t
}

// build returns the tree of v together with its canonical JSON.
func build(v *value.Value) (*Tree, string) {
	elts, text := children(v)
	t := &Tree{Value: v}
	if len(elts) != 0 {
		t.Children = make([]*Tree, len(elts))
		for i := range elts {
			t.Children[i] = elts[i].t
		}
	}
	return t, text
}

func children(v *value.Value) ([]keyed, string) {
	switch v.Type {
	case value.ArrayType:
		return arrayChildren(v)
	case value.ObjectType:
		return objectChildren(v)
	default:
		return nil, leafJSON(v)
	}
}

func arrayChildren(v *value.Value) ([]keyed, string) {
	elts := make([]keyed, len(v.Values))
	for i, c := range v.Values {
		t, text := build(c)
		elts[i] = keyed{t: t, key: elementKey(c, text), text: text}
	}
	sortKeyed(elts)
	var b strings.Builder
	b.WriteByte('[')
	for i := range elts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(elts[i].text)
	}
	b.WriteByte(']')
	return elts, b.String()
}

func objectChildren(v *value.Value) ([]keyed, string) {
	elts := make([]keyed, len(v.Fields))
	for i, f := range v.Fields {
		ft, text := build(v.Values[i])
		elts[i] = keyed{
			t:    pairTree(f.String, v.Values[i], ft, text),
			key:  pairKey(f.String, text),
			name: f.String,
			text: text,
		}
	}
	sortKeyed(elts)
	fields := slices.Clone(elts)
	slices.SortFunc(fields, func(a, b keyed) int {
		return compareKeys(a.name, b.name)
	})
	var b strings.Builder
	b.WriteByte('{')
	for i := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(encode.Quote(fields[i].name))
		b.WriteByte(':')
		b.WriteString(fields[i].text)
	}
	b.WriteByte('}')
	return elts, b.String()
}

// sortKeyed orders elements by key. Pairs whose keys tie fall back to the
// byte order of their field names, which are unique; array elements have no
// name and keep their input order.
func sortKeyed(elts []keyed) {
	slices.SortStableFunc(elts, func(a, b keyed) int {
		if c := CompareOrdinal(a.key, b.key); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
}

func pairTree(name string, v *value.Value, ft *Tree, text string) *Tree {
	k := value.FromString(name)
	kt := &Tree{Value: k}
	pair := &Tree{Value: value.FromSlice([]*value.Value{k, v}), field: ft}
	if CompareOrdinal(elementKey(v, text), name) < 0 {
		pair.Children = []*Tree{ft, kt}
	} else {
		pair.Children = []*Tree{kt, ft}
	}
	return pair
}

func pairKey(name, text string) string {
	return "[" + encode.Quote(name) + "," + text + "]"
}

func elementKey(v *value.Value, text string) string {
	if v.Type.IsLeaf() {
		return leafKey(v)
	}
	return text
}

func leafKey(v *value.Value) string {
	switch v.Type {
	case value.StringType:
		return v.String
	case value.BoolType:
		if v.Bool {
			return "true"
		}
		return "false"
	case value.NumberType:
		return v.Number
	default:
		return ""
	}
}

func leafJSON(v *value.Value) string {
	switch v.Type {
	case value.StringType:
		return encode.Quote(v.String)
	case value.BoolType, value.NumberType:
		return leafKey(v)
	default:
		return "null"
	}
}

// Canonicalize returns the children of v in canonical order. Objects yield
// fresh [key, value] arrays. Scalars and empty composites yield an empty
// slice. v is not modified.
func Canonicalize(v *value.Value) []*value.Value {
	res, _ := CanonicalizeKeys(v)
	return res
}

// CanonicalizeKeys is Canonicalize also returning the ordering key of each
// child, as used by the sort.
func CanonicalizeKeys(v *value.Value) ([]*value.Value, []string) {
	elts, _ := children(v)
	res := make([]*value.Value, len(elts))
	keys := make([]string, len(elts))
	for i := range elts {
		res[i] = elts[i].t.Value
		keys[i] = elts[i].key
	}
	if debug.Canon() {
		debug.Logf("canonicalize %s: keys %q\n", v.Type, keys)
	}
	return res, keys
}

// OrderingKey returns the string v is sorted by as an array element.
func OrderingKey(v *value.Value) string {
	if v.Type.IsLeaf() {
		return leafKey(v)
	}
	_, text := children(v)
	return text
}

// Canonical returns a tree with arrays in canonical order and object fields
// in ordinal key order, at every depth. Leaves are shared with v. For a
// composite v its encoding is OrderingKey(v).
func Canonical(v *value.Value) *value.Value {
	return Sort(v).canonical()
}

func (t *Tree) canonical() *value.Value {
	switch t.Value.Type {
	case value.ArrayType:
		vs := make([]*value.Value, len(t.Children))
		for i, c := range t.Children {
			vs[i] = c.canonical()
		}
		return value.FromSlice(vs)
	case value.ObjectType:
		kvs := make([]value.KeyVal, len(t.Children))
		for i, p := range t.Children {
			kvs[i] = value.KeyVal{Key: p.Value.Values[0].String, Val: p.field.canonical()}
		}
		slices.SortFunc(kvs, func(a, b value.KeyVal) int {
			return compareKeys(a.Key, b.Key)
		})
		return value.FromKeyVals(kvs)
	default:
		return t.Value
	}
}
