// Package listing drives the scanner over source files for command line use.
//
// It adds what the scanner leaves to its callers: recovering after errors to
// report one error per bad line, reading and scanning several files at once,
// selecting tokens with starlark filter expressions, and printing listings.
package listing
