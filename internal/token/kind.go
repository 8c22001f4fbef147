package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline terminates a statement in the primary dialect.
	Newline

	// Ident represents an identifier token.
	Ident
	// Number is an integer or decimal literal.
	Number
	// String is a quoted string literal.
	String
	// Logical is .T. or .F.
	Logical
	// Keyword is a reserved word of a dialect without its own kinds.
	Keyword
	// Char is any other significant character.
	Char

	Plus             // +
	Minus            // -
	Star             // *
	Slash            // /
	Eq               // =
	EqEq             // ==
	NotEq            // <> # !=
	Lt               // <
	LtEq             // <=
	Gt               // >
	GtEq             // >=
	LParen           // (
	RParen           // )
	LBracket         // [
	RBracket         // ]
	Comma            // ,
	Dot              // .
	Colon            // :
	ColonAssign      // :=
	Semicolon        // ;
	At               // @
	Question         // ?
	QuestionQuestion // ??
	And              // .AND.
	Or               // .OR.
	Not              // .NOT.

	kwFirst
	KwParameter  // PARAMETER, PARAMETERS
	KwLocal      // LOCAL
	KwIf         // IF
	KwElse       // ELSE
	KwEndif      // ENDIF
	KwFor        // FOR
	KwTo         // TO
	KwStep       // STEP
	KwNext       // NEXT, ENDFOR
	KwDo         // DO
	KwWhile      // WHILE
	KwEnddo      // ENDDO
	KwReturn     // RETURN
	KwSet        // SET
	KwColor      // COLOR
	KwSay        // SAY
	KwClass      // CLASS
	KwOf         // OF
	KwEndclass   // ENDCLASS
	KwThis       // THIS
	KwForm       // FORM
	KwContainer  // CONTAINER
	KwGrid       // GRID
	KwPushbutton // PUSHBUTTON
	KwMemo       // MEMO
	KwText       // TEXT
	KwEditfield  // EDITFIELD
	kwLast
)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Newline:          "Newline",
	Ident:            "Ident",
	Number:           "Number",
	String:           "String",
	Logical:          "Logical",
	Keyword:          "Keyword",
	Char:             "Char",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	Slash:            "Slash",
	Eq:               "Eq",
	EqEq:             "EqEq",
	NotEq:            "NotEq",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	LParen:           "LParen",
	RParen:           "RParen",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	Comma:            "Comma",
	Dot:              "Dot",
	Colon:            "Colon",
	ColonAssign:      "ColonAssign",
	Semicolon:        "Semicolon",
	At:               "At",
	Question:         "Question",
	QuestionQuestion: "QuestionQuestion",
	And:              "And",
	Or:               "Or",
	Not:              "Not",
	KwParameter:      "KwParameter",
	KwLocal:          "KwLocal",
	KwIf:             "KwIf",
	KwElse:           "KwElse",
	KwEndif:          "KwEndif",
	KwFor:            "KwFor",
	KwTo:             "KwTo",
	KwStep:           "KwStep",
	KwNext:           "KwNext",
	KwDo:             "KwDo",
	KwWhile:          "KwWhile",
	KwEnddo:          "KwEnddo",
	KwReturn:         "KwReturn",
	KwSet:            "KwSet",
	KwColor:          "KwColor",
	KwSay:            "KwSay",
	KwClass:          "KwClass",
	KwOf:             "KwOf",
	KwEndclass:       "KwEndclass",
	KwThis:           "KwThis",
	KwForm:           "KwForm",
	KwContainer:      "KwContainer",
	KwGrid:           "KwGrid",
	KwPushbutton:     "KwPushbutton",
	KwMemo:           "KwMemo",
	KwText:           "KwText",
	KwEditfield:      "KwEditfield",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word of any dialect.
func (k Kind) IsKeyword() bool {
	return k == Keyword || (k > kwFirst && k < kwLast)
}
