// Package dialect describes the script language variants the scanner understands:
// which comment forms each one allows, which it rejects, how strings are quoted
// and which words are reserved.
//
// Only the primary dialect has a parser; the other two share the scanning machinery.
package dialect
