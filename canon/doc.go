// Package canon puts the children of composite values into a deterministic
// order.
//
// Canonicalize works on a single level. For an array it returns the
// elements; for an object it returns one synthetic two element array
// [key, value] per entry. Either way the result is stably sorted by each
// element's ordering key:
//
//   - a string's key is its raw content
//   - null's key is the empty string
//   - a bool's key is "true" or "false", a number's key is its literal text
//   - an array's or object's key is its canonical minified JSON: arrays in
//     canonical order and object keys in ordinal order, as written by
//     encoding Canonical
//   - a synthetic [key, value] pair's key is ["key",<canonical value>]
//
// Sort orders a whole tree at once. It builds the canonical JSON of every
// subtree a single time, so ordering a tree costs the total length of those
// texts rather than rebuilding them at each level.
//
// Keys are compared with CompareOrdinal. Keys of different kinds may collide:
// the number 1 and the string "1" both have key "1". The sort is stable, so
// colliding array elements keep their input order.
//
// # Known Limitation
//
// CompareOrdinal reduces every character to the low 8 bits of its code
// point. This is the ASCII order for ASCII text but distinct multi-byte
// characters can compare equal. Object keys that tie this way fall back to
// byte order; array elements keep their input order.
package canon
