package plume

// Node is an element of a parsed script. Pos returns its source line.
type Node interface {
	Pos() int
}

// Program is a parsed script.
type Program struct {
	Stmts []Node
}

// Statements

type (
	// ImportStmt is `import NAME [as ALIAS]`.
	ImportStmt struct {
		Line   int
		Module string
		Alias  string
	}

	// FromImportStmt is `from MODULE import NAME, ...`.
	FromImportStmt struct {
		Line   int
		Module string
		Names  []string
	}

	// AssignStmt is `NAME = expr`.
	AssignStmt struct {
		Line  int
		Name  string
		Value Node
	}

	// SetAttrStmt is `expr.NAME = expr`.
	SetAttrStmt struct {
		Line   int
		Target Node
		Attr   string
		Value  Node
	}

	// DelStmt is `del NAME, ...`.
	DelStmt struct {
		Line  int
		Names []string
	}

	// AssertStmt is `assert expr [, message]`.
	AssertStmt struct {
		Line int
		Test Node
		Msg  Node // nil when absent
	}

	// PassStmt is `pass`.
	PassStmt struct {
		Line int
	}

	// ExprStmt is an expression evaluated for its value.
	ExprStmt struct {
		Line int
		X    Node
	}
)

// Expressions

type (
	// NameExpr is a variable reference.
	NameExpr struct {
		Line int
		Name string
	}

	// ConstExpr is a literal: int, str, None, True or False.
	ConstExpr struct {
		Line  int
		Kind  TokenType
		Value any
	}

	// ListExpr is `[a, b, ...]`.
	ListExpr struct {
		Line  int
		Items []Node
	}

	// AttrExpr is `x.name`.
	AttrExpr struct {
		Line int
		X    Node
		Name string
	}

	// CallExpr is `fn(args...)`.
	CallExpr struct {
		Line int
		Fn   Node
		Args []Node
	}

	// UnaryExpr is `-x` or `not x`.
	UnaryExpr struct {
		Line int
		Op   TokenType
		X    Node
	}

	// BinaryExpr covers arithmetic, comparisons and the short-circuit
	// operators. Op is IS for `is`; Negate turns it into `is not`.
	BinaryExpr struct {
		Line   int
		Op     TokenType
		Negate bool
		L, R   Node
	}
)

func (n *ImportStmt) Pos() int     { return n.Line }
func (n *FromImportStmt) Pos() int { return n.Line }
func (n *AssignStmt) Pos() int     { return n.Line }
func (n *SetAttrStmt) Pos() int    { return n.Line }
func (n *DelStmt) Pos() int        { return n.Line }
func (n *AssertStmt) Pos() int     { return n.Line }
func (n *PassStmt) Pos() int       { return n.Line }
func (n *ExprStmt) Pos() int       { return n.Line }
func (n *NameExpr) Pos() int       { return n.Line }
func (n *ConstExpr) Pos() int      { return n.Line }
func (n *ListExpr) Pos() int       { return n.Line }
func (n *AttrExpr) Pos() int       { return n.Line }
func (n *CallExpr) Pos() int       { return n.Line }
func (n *UnaryExpr) Pos() int      { return n.Line }
func (n *BinaryExpr) Pos() int     { return n.Line }
