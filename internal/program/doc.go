// Package program defines the executable form of a translated script.
//
// A Unit is a tree of statements and expressions built by the code generator
// while the parser recognises the source; the execution engine interprets it
// directly. The textual listing produced alongside is for display only and is
// never parsed back.
package program
