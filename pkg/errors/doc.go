// Package errors provides coded errors for richtext. Every error carries a
// stable ErrorCode so callers and tests can branch on the category without
// matching message text.
package errors
