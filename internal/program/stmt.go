package program

// StmtKind enumerates statement kinds.
type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtLocal
	StmtAssign
	StmtIf
	StmtFor
	StmtWhile
	StmtColor
	StmtSay
	StmtPrint
	StmtReturn
)

var stmtNames = [...]string{
	StmtInvalid: "invalid",
	StmtLocal:   "local",
	StmtAssign:  "assign",
	StmtIf:      "if",
	StmtFor:     "for",
	StmtWhile:   "while",
	StmtColor:   "color",
	StmtSay:     "say",
	StmtPrint:   "print",
	StmtReturn:  "return",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtNames) {
		return stmtNames[k]
	}
	return "invalid"
}

// Stmt is a statement node. Exactly the payload of its Kind is set.
type Stmt struct {
	Kind StmtKind `msgpack:"k"`
	Line uint32   `msgpack:"l"`

	Local  *LocalStmt  `msgpack:"local,omitempty"`
	Assign *AssignStmt `msgpack:"assign,omitempty"`
	If     *IfStmt     `msgpack:"if,omitempty"`
	For    *ForStmt    `msgpack:"for,omitempty"`
	While  *WhileStmt  `msgpack:"while,omitempty"`
	Color  *ColorPair  `msgpack:"color,omitempty"`
	Say    *SayStmt    `msgpack:"say,omitempty"`
	Print  *PrintStmt  `msgpack:"print,omitempty"`
}

// LocalStmt declares variables initialised to .F.
type LocalStmt struct {
	Names []string `msgpack:"names"`
}

// AssignStmt stores Value into Name.
type AssignStmt struct {
	Name  string `msgpack:"name"`
	Value Expr   `msgpack:"value"`
}

// IfStmt is a two-way branch; Else may be empty.
type IfStmt struct {
	Cond Expr   `msgpack:"cond"`
	Then []Stmt `msgpack:"then"`
	Else []Stmt `msgpack:"else,omitempty"`
}

// ForStmt is a counted loop. Step is nil for the implicit step of 1.
type ForStmt struct {
	Var  string `msgpack:"var"`
	From Expr   `msgpack:"from"`
	To   Expr   `msgpack:"to"`
	Step *Expr  `msgpack:"step,omitempty"`
	Body []Stmt `msgpack:"body"`
}

// WhileStmt is a pre-tested loop.
type WhileStmt struct {
	Cond Expr   `msgpack:"cond"`
	Body []Stmt `msgpack:"body"`
}

// SayStmt prints Value at a screen position.
type SayStmt struct {
	Row   Expr `msgpack:"row"`
	Col   Expr `msgpack:"col"`
	Value Expr `msgpack:"value"`
}

// PrintStmt prints Args separated by a space; Newline is set for ? and clear for ??.
type PrintStmt struct {
	Args    []Expr `msgpack:"args"`
	Newline bool   `msgpack:"nl"`
}
