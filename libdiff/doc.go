// Package libdiff shows where the notations of two values differ.
//
// Two documents have different signatures exactly when their notations
// differ, so a character diff of the notations points at the content that
// changed once ordering has been factored out.
package libdiff
