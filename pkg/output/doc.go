// Package output decides how results reach the user: which format suits the
// destination, and how a document is shown by the inspect command.
package output
