// Package parse decodes JSON and YAML documents into value trees.
//
// Parsing keeps what signatures depend on: each number's literal text is
// kept verbatim (1.0 stays 1.0), strings are unescaped to their raw content,
// and objects with a repeated key are rejected with ErrDupKey.
//
// JSON is the default format:
//
//	v, err := parse.Parse(data)
//	v, err := parse.Parse(data, parse.ParseYAML())
//
// For YAML only the first document is read. Anchors and aliases are
// expanded, "<<" is kept as an ordinary key, and non-finite floats are
// rejected with ErrUnsupport.
package parse
