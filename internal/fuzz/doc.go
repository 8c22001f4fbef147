// Package fuzztests holds native Go fuzz harnesses for the front end
// (source -> lexer -> parser). They guard against panics on arbitrary input
// and check that every failure surfaces as a positioned *diag.Error.
package fuzztests
