// Package driver wires the source, lexer, parser and code generator into
// file-level operations used by the command line and the build pipeline.
package driver
