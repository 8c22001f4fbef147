package dialect

// CommentForm is one syntactic comment shape, independent of the dialect that allows it.
type CommentForm uint8

const (
	CommentStarStar   CommentForm = iota + 1 // ** до конца строки
	CommentAmpAmp                            // && до конца строки
	CommentSlashSlash                        // // до конца строки
	CommentSlashStar                         // /* ... */
	CommentParenStar                         // (* ... *)
	CommentBrace                             // { ... }
	CommentSemicolon                         // ; до конца строки
)

// allForms is ordered so that two-character openers are tried before one-character ones.
var allForms = [...]CommentForm{
	CommentStarStar, CommentAmpAmp, CommentSlashSlash, CommentSlashStar, CommentParenStar,
	CommentBrace, CommentSemicolon,
}

// Opener returns the characters that start the comment.
func (f CommentForm) Opener() string {
	switch f {
	case CommentStarStar:
		return "**"
	case CommentAmpAmp:
		return "&&"
	case CommentSlashSlash:
		return "//"
	case CommentSlashStar:
		return "/*"
	case CommentParenStar:
		return "(*"
	case CommentBrace:
		return "{"
	case CommentSemicolon:
		return ";"
	}
	return ""
}

// Closer returns the terminator of a block comment, or "" for a line comment.
func (f CommentForm) Closer() string {
	switch f {
	case CommentSlashStar:
		return "*/"
	case CommentParenStar:
		return "*)"
	case CommentBrace:
		return "}"
	}
	return ""
}

// IsBlock reports whether the comment runs up to an explicit terminator.
func (f CommentForm) IsBlock() bool { return f.Closer() != "" }

// Usage says how a dialect treats a comment form.
type Usage uint8

const (
	// NotComment means the opener is ordinary syntax in this dialect.
	NotComment Usage = iota
	// Allowed means the form is a comment in this dialect.
	Allowed
	// Foreign means the form belongs to another dialect and is a reported error here.
	Foreign
)

// Rules is everything the scanner needs to know about a dialect.
type Rules struct {
	Kind Kind
	// Comments maps each form to its usage; missing forms are NotComment.
	Comments map[CommentForm]Usage
	// NewlineSignificant makes '\n' a token (statements are line-terminated).
	NewlineSignificant bool
	// Quotes lists the characters that open a string literal.
	Quotes string
	// BackslashEscapes enables \\ \t \n \r \a \" \' inside strings.
	BackslashEscapes bool
	// FoldCase makes keyword lookup case-insensitive.
	FoldCase bool
	// DotWords enables .T. .F. .AND. .OR. .NOT.
	DotWords bool
}

var rulesTable = map[Kind]Rules{
	Primary: {
		Kind: Primary,
		Comments: map[CommentForm]Usage{
			CommentStarStar:   Allowed,
			CommentAmpAmp:     Allowed,
			CommentSlashSlash: Allowed,
			CommentSlashStar:  Allowed,
			CommentParenStar:  Foreign,
			CommentBrace:      Foreign,
			CommentSemicolon:  Foreign,
		},
		NewlineSignificant: true,
		Quotes:             `"'`,
		BackslashEscapes:   true,
		FoldCase:           true,
		DotWords:           true,
	},
	Structured: {
		Kind: Structured,
		Comments: map[CommentForm]Usage{
			CommentParenStar:  Allowed,
			CommentBrace:      Allowed,
			CommentSlashSlash: Allowed,
			CommentStarStar:   Foreign,
			CommentAmpAmp:     Foreign,
			CommentSlashStar:  Foreign,
		},
		Quotes:   `'`,
		FoldCase: true,
	},
	List: {
		Kind: List,
		Comments: map[CommentForm]Usage{
			CommentSemicolon:  Allowed,
			CommentSlashSlash: Foreign,
			CommentSlashStar:  Foreign,
			CommentBrace:      Foreign,
			CommentAmpAmp:     Foreign,
		},
		Quotes: `"`,
	},
}

// RulesFor returns the scanning rules of k. ok is false for Unknown.
func RulesFor(k Kind) (Rules, bool) {
	r, ok := rulesTable[k]
	return r, ok
}

// Usage returns how the dialect treats form.
func (r Rules) Usage(form CommentForm) Usage {
	return r.Comments[form]
}

// Forms returns every comment form with a non-NotComment usage, longest openers first.
func (r Rules) Forms() []CommentForm {
	out := make([]CommentForm, 0, len(allForms))
	for _, f := range allForms {
		if r.Comments[f] != NotComment {
			out = append(out, f)
		}
	}
	return out
}

// IsQuote reports whether ch opens a string literal.
func (r Rules) IsQuote(ch rune) bool {
	for _, q := range r.Quotes {
		if q == ch {
			return true
		}
	}
	return false
}
