package dialect

import (
	"fmt"
	"strings"
)

// Kind identifies a script language variant. The caller always selects it explicitly.
type Kind uint8

const (
	Unknown Kind = iota
	// Primary is the dBase-like business scripting dialect.
	Primary
	// Structured is the Pascal-like structured-imperative variant.
	Structured
	// List is the Lisp-like list-processing variant.
	List

	kindCount
)

func (k Kind) String() string {
	switch k {
	case Primary:
		return "dbase"
	case Structured:
		return "pascal"
	case List:
		return "lisp"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}

// Parse maps a dialect name (as used on the command line) to its Kind.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dbase", "primary", "prg":
		return Primary, nil
	case "pascal", "structured":
		return Structured, nil
	case "lisp", "list":
		return List, nil
	default:
		return Unknown, fmt.Errorf("unknown dialect %q (expected dbase|pascal|lisp)", name)
	}
}

// Valid reports whether k names a real dialect.
func (k Kind) Valid() bool {
	return k > Unknown && k < kindCount
}
