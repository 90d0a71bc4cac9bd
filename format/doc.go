// Package format names the document formats values can be read from.
package format
