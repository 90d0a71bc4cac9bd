// Package encode writes value trees as minified JSON.
//
// The output is the plain structural form of a tree: no whitespace, numbers
// as their literal text, strings escaped only where JSON requires it. It is
// used both to derive ordering keys during canonicalization and to display
// trees on the command line.
//
// Arrays and objects are written in stored order; canon.Canonical gives the
// tree to write for a canonical form. EncodeColors colorizes output for a
// terminal.
package encode
