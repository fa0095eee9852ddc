// Package registry provides a generic, type-safe registry keyed by an open
// string tag. Renderer tables for node and mark types and the table of named
// output formats are all built on it.
//
// Registries are safe for concurrent use. Merge never mutates its inputs: it
// returns a fresh registry in which entries of the overlay replace entries of
// the base by tag.
package registry
