package value

import (
	"maps"
	"slices"
)

type Value struct {
	Type   Type
	Fields []*Value
	Values []*Value

	String string
	Bool   bool
	Number string
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

// FromNumber returns a number holding lit verbatim. lit is not validated.
func FromNumber(lit string) *Value {
	return &Value{Type: NumberType, Number: lit}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func FromSlice(vs []*Value) *Value {
	res := &Value{Type: ArrayType}
	res.Values = make([]*Value, len(vs))
	copy(res.Values, vs)
	return res
}

// FromMap builds an object from m. Since map iteration order is random the
// fields are laid out in sorted key order.
func FromMap(m map[string]*Value) *Value {
	res := &Value{Type: ObjectType}
	res.Fields = make([]*Value, len(m))
	res.Values = make([]*Value, len(m))
	keys := slices.Sorted(maps.Keys(m))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = m[key]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals builds an object keeping the order of kvs.
func FromKeyVals(kvs []KeyVal) *Value {
	res := &Value{Type: ObjectType}
	res.Fields = make([]*Value, len(kvs))
	res.Values = make([]*Value, len(kvs))
	for i := range kvs {
		res.Fields[i] = FromString(kvs[i].Key)
		res.Values[i] = kvs[i].Val
	}
	return res
}

// KeyVals returns the entries of an object in field order, or nil if v is
// not an object.
func (v *Value) KeyVals() []KeyVal {
	if v.Type != ObjectType {
		return nil
	}
	res := make([]KeyVal, len(v.Fields))
	for i, f := range v.Fields {
		res[i] = KeyVal{Key: f.String, Val: v.Values[i]}
	}
	return res
}

func (v *Value) Clone() *Value {
	res := &Value{}
	*res = *v
	if v.Fields != nil {
		res.Fields = make([]*Value, len(v.Fields))
		for i, f := range v.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, c := range v.Values {
			res.Values[i] = c.Clone()
		}
	}
	return res
}
