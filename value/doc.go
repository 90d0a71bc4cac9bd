// Package value provides the tree of generic structured values that signatures
// are computed over.
//
// # Overview
//
// A document is represented as a tree of *Value nodes. Each node is one of
// six kinds, selected by its Type field:
//
//   - NullType: null
//   - BoolType: true or false, in Bool
//   - NumberType: a non-empty numeric literal, kept as its original text in Number
//   - StringType: raw (unquoted, unescaped) content in String
//   - ArrayType: ordered children in Values
//   - ObjectType: keys in Fields, children in Values
//
// Like other recursive tagged unions, only the payload fields selected by the
// Type are meaningful; the rest are ignored.
//
// # Numbers
//
// Numbers are never parsed into machine integers or floats. Number holds the
// literal as it appeared in the source document ("1", "1.0", "1e3"), and two
// numbers are the same only if their text is the same.
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always the same number of fields as values. Fields are StringType
// nodes and no key appears twice. Field order carries no meaning.
//
// # Creating Values
//
//	s := value.FromString("hello")
//	n := value.FromNumber("1.2")
//	obj := value.FromMap(map[string]*value.Value{
//	    "key": value.FromString("value"),
//	})
//	arr := value.FromSlice([]*value.Value{
//	    value.FromNumber("1"),
//	    value.Null(),
//	})
//
// # Checking Values
//
// Check walks a tree without recursion and reports ErrMalformed for trees
// that break the constraints above and ErrTooDeep for trees nested beyond a
// limit. Everything downstream assumes a tree that passed Check.
//
// # Thread Safety
//
// Values are plain data. Nothing in this module mutates a tree it is handed,
// so a tree may be read from many goroutines at once as long as the caller
// does not modify it concurrently.
package value
