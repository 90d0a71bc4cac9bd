// Package objsig computes content signatures of structured values.
//
// A signature is the lowercase hex MD5 of a value's notation (see package
// notation). Because the notation puts array elements and object entries in
// canonical order at every depth, two documents that differ only in element
// or key order share a signature, while documents that differ in shape, type
// or content do not:
//
//	v, err := parse.Parse([]byte(`{"a": [1, 2]}`))
//	sig, err := objsig.Signature(v) // same as for {"a": [2, 1]}
//
// Numbers are compared by their literal text, so 1 and 1.0 sign differently,
// and the number 1 signs differently from the string "1".
//
// The MD5 signature is a content fingerprint, not a defence against a party
// crafting collisions. Digest hashes the same notation with a wider
// algorithm, returning an OCI style "sha256:<hex>" digest.
//
// Signing is a pure computation over the tree it is given: the tree is never
// modified and concurrent calls need no locking.
package objsig
