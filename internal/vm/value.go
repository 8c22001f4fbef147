// Package vm interprets translated scripts.
package vm

import (
	"strings"

	"xbase/internal/program"
)

// ValueKind identifies the runtime type of a Value.
type ValueKind uint8

const (
	VKInvalid ValueKind = iota
	VKNumber
	VKString
	VKLogical
)

// String returns a human-readable name for the value kind.
func (k ValueKind) String() string {
	switch k {
	case VKNumber:
		return "numeric"
	case VKString:
		return "character"
	case VKLogical:
		return "logical"
	default:
		return "invalid"
	}
}

// Value is a script value: numeric, character or logical.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Bool bool
}

// Num makes a numeric value.
func Num(v float64) Value { return Value{Kind: VKNumber, Num: v} }

// Str makes a character value.
func Str(s string) Value { return Value{Kind: VKString, Str: s} }

// Bool makes a logical value.
func Bool(b bool) Value { return Value{Kind: VKLogical, Bool: b} }

// False is the value every LOCAL starts with.
var False = Bool(false)

// String formats v the way the console prints it.
func (v Value) String() string {
	switch v.Kind {
	case VKNumber:
		return program.FormatNumber(v.Num)
	case VKString:
		return v.Str
	case VKLogical:
		return program.FormatLogical(v.Bool)
	default:
		return "NIL"
	}
}

// Equal reports exact equality (the == operator).
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case VKNumber:
		return v.Num == o.Num
	case VKString:
		return v.Str == o.Str
	case VKLogical:
		return v.Bool == o.Bool
	}
	return false
}

// looseEqual is the = operator: a string equals any string it starts with.
func looseEqual(a, b Value) bool {
	if a.Kind == VKString && b.Kind == VKString {
		return strings.HasPrefix(a.Str, b.Str)
	}
	return a.Equal(b)
}
