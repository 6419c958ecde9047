package plume

import (
	"errors"
	"fmt"
)

// ParseStatus indicates the result of parsing a script.
type ParseStatus int

const (
	// ParseOK indicates the script is syntactically complete and valid.
	ParseOK ParseStatus = iota

	// ParseIncomplete indicates the script ends inside a bracket, a string
	// or an expression.
	ParseIncomplete

	// ParseError indicates a syntax error in the script.
	ParseError
)

// ParseResult holds the result of parsing a script.
type ParseResult struct {
	// Status indicates whether parsing succeeded, found incomplete input, or failed.
	Status ParseStatus

	// Message contains an error message if Status is not ParseOK.
	Message string
}

// Parse checks if a script is syntactically complete.
//
//	pr := interp.Parse("print(1,")
//	if pr.Status == plume.ParseIncomplete {
//	    // read another line
//	}
func (i *Interp) Parse(script string) ParseResult {
	_, err := ParseProgram(script)
	switch {
	case err == nil:
		return ParseResult{Status: ParseOK}
	case errors.Is(err, errIncomplete):
		return ParseResult{Status: ParseIncomplete, Message: err.Error()}
	default:
		return ParseResult{Status: ParseError, Message: err.Error()}
	}
}

// ParseProgram tokenizes and parses a script.
// Errors are *Error values of kind SyntaxError carrying the offending line.
func ParseProgram(src string) (*Program, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.program()
}

type parser struct {
	toks []Token
	i    int
}

// ─────────────────────────── token basics & helpers ─────────────────────────

func (p *parser) atEnd() bool { return p.peek().Type == EOF }
func (p *parser) peek() Token { return p.toks[p.i] }
func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) match(tt ...TokenType) bool {
	if p.atEnd() {
		return false
	}
	for _, t := range tt {
		if p.peek().Type == t {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) need(t TokenType, msg string) (Token, error) {
	if p.match(t) {
		return p.prev(), nil
	}
	return Token{}, p.errorAt(p.peek(), msg)
}

// errorAt reports a syntax error at tok. Running out of input is reported
// as incomplete so interactive callers can ask for more.
func (p *parser) errorAt(tok Token, msg string) error {
	if tok.Type == EOF {
		return &Error{Kind: KindSyntaxError, Detail: msg, Cause: errIncomplete, Line: tok.Line}
	}
	return &Error{Kind: KindSyntaxError, Detail: msg, Line: tok.Line}
}

// ───────────────────────── precedence / associativity ──────────────────────

const (
	bpNot   = 30
	bpUnary = 70
)

func lbp(t TokenType) (int, bool) {
	switch t {
	case PLUS, MINUS:
		return 60, true
	case EQ, NEQ, LESS, LESS_EQ, GREATER, GREATER_EQ, IS:
		return 40, true
	case AND:
		return 20, true
	case OR:
		return 10, true
	}
	return 0, false
}

// ─────────────────────────────── statements ────────────────────────────────

func (p *parser) program() (*Program, error) {
	prog := &Program{}
	for {
		for p.match(NEWLINE, SEMI) {
		}
		if p.atEnd() {
			return prog, nil
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, s)
		if !p.atEnd() && !p.match(NEWLINE, SEMI) {
			return nil, p.errorAt(p.peek(), "invalid syntax")
		}
	}
}

func (p *parser) statement() (Node, error) {
	tok := p.peek()
	switch {
	case p.match(IMPORT):
		name, err := p.need(ID, "expected module name after 'import'")
		if err != nil {
			return nil, err
		}
		s := &ImportStmt{Line: tok.Line, Module: tokText(name), Alias: tokText(name)}
		if p.match(AS) {
			alias, err := p.need(ID, "expected name after 'as'")
			if err != nil {
				return nil, err
			}
			s.Alias = tokText(alias)
		}
		return s, nil

	case p.match(FROM):
		mod, err := p.need(ID, "expected module name after 'from'")
		if err != nil {
			return nil, err
		}
		if _, err := p.need(IMPORT, "expected 'import'"); err != nil {
			return nil, err
		}
		names, err := p.nameList("expected name to import")
		if err != nil {
			return nil, err
		}
		return &FromImportStmt{Line: tok.Line, Module: tokText(mod), Names: names}, nil

	case p.match(DEL):
		names, err := p.nameList("expected name after 'del'")
		if err != nil {
			return nil, err
		}
		return &DelStmt{Line: tok.Line, Names: names}, nil

	case p.match(ASSERT):
		test, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		s := &AssertStmt{Line: tok.Line, Test: test}
		if p.match(COMMA) {
			if s.Msg, err = p.expr(0); err != nil {
				return nil, err
			}
		}
		return s, nil

	case p.match(PASS):
		return &PassStmt{Line: tok.Line}, nil
	}

	x, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if !p.match(ASSIGN) {
		return &ExprStmt{Line: tok.Line, X: x}, nil
	}
	value, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	switch target := x.(type) {
	case *NameExpr:
		return &AssignStmt{Line: tok.Line, Name: target.Name, Value: value}, nil
	case *AttrExpr:
		return &SetAttrStmt{Line: tok.Line, Target: target.X, Attr: target.Name, Value: value}, nil
	}
	return nil, p.errorAt(tok, "cannot assign to expression")
}

func (p *parser) nameList(msg string) ([]string, error) {
	var names []string
	for {
		name, err := p.need(ID, msg)
		if err != nil {
			return nil, err
		}
		names = append(names, tokText(name))
		if !p.match(COMMA) {
			return names, nil
		}
	}
}

// ─────────────────────────────── expressions ───────────────────────────────

func (p *parser) expr(minBP int) (Node, error) {
	left, err := p.prefix()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		switch t.Type {
		case LROUND:
			p.i++
			args, err := p.exprList(RROUND)
			if err != nil {
				return nil, err
			}
			left = &CallExpr{Line: t.Line, Fn: left, Args: args}
			continue
		case PERIOD:
			p.i++
			name, err := p.need(ID, "expected attribute name after '.'")
			if err != nil {
				return nil, err
			}
			left = &AttrExpr{Line: t.Line, X: left, Name: tokText(name)}
			continue
		}

		bp, ok := lbp(t.Type)
		if !ok || bp <= minBP {
			return left, nil
		}
		p.i++
		negate := t.Type == IS && p.match(NOT)
		right, err := p.expr(bp)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Line: t.Line, Op: t.Type, Negate: negate, L: left, R: right}
	}
}

func (p *parser) prefix() (Node, error) {
	t := p.peek()
	switch t.Type {
	case INTEGER, STRING, NONE, TRUE, FALSE:
		p.i++
		return &ConstExpr{Line: t.Line, Kind: t.Type, Value: t.Literal}, nil
	case ID:
		p.i++
		return &NameExpr{Line: t.Line, Name: tokText(t)}, nil
	case LROUND:
		p.i++
		x, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RROUND, "expected ')'"); err != nil {
			return nil, err
		}
		return x, nil
	case LSQUARE:
		p.i++
		items, err := p.exprList(RSQUARE)
		if err != nil {
			return nil, err
		}
		return &ListExpr{Line: t.Line, Items: items}, nil
	case MINUS:
		p.i++
		x, err := p.expr(bpUnary)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Line: t.Line, Op: MINUS, X: x}, nil
	case NOT:
		p.i++
		x, err := p.expr(bpNot)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Line: t.Line, Op: NOT, X: x}, nil
	}
	return nil, p.errorAt(t, "invalid syntax")
}

// exprList parses comma separated expressions up to the closing token.
// A trailing comma is allowed.
func (p *parser) exprList(end TokenType) ([]Node, error) {
	var items []Node
	for !p.match(end) {
		x, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		items = append(items, x)
		if !p.match(COMMA) {
			if _, err := p.need(end, fmt.Sprintf("expected ',' or '%s'", closer(end))); err != nil {
				return nil, err
			}
			break
		}
	}
	return items, nil
}

func closer(t TokenType) string {
	if t == RSQUARE {
		return "]"
	}
	return ")"
}

func tokText(t Token) string {
	if s, ok := t.Literal.(string); ok {
		return s
	}
	return t.Lexeme
}
