package plume

import (
	"errors"
	"strconv"
	"strings"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	NEWLINE

	// Punctuation
	LROUND  // "("
	RROUND  // ")"
	LSQUARE // "["
	RSQUARE // "]"
	COMMA   // ","
	PERIOD  // "."
	SEMI    // ";"

	// Operators
	PLUS
	MINUS
	ASSIGN // "="
	EQ     // "=="
	NEQ    // "!="
	LESS
	LESS_EQ
	GREATER
	GREATER_EQ

	// Literals & identifiers
	ID
	STRING
	INTEGER

	// Keywords
	NONE
	TRUE
	FALSE
	AND
	OR
	NOT
	IS
	IMPORT
	FROM
	AS
	DEL
	ASSERT
	PASS
)

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string // raw text slice
	Literal any    // parsed value for literals
	Line    int
}

var keywords = map[string]TokenType{
	"None":   NONE,
	"True":   TRUE,
	"False":  FALSE,
	"and":    AND,
	"or":     OR,
	"not":    NOT,
	"is":     IS,
	"import": IMPORT,
	"from":   FROM,
	"as":     AS,
	"del":    DEL,
	"assert": ASSERT,
	"pass":   PASS,
}

// errIncomplete marks syntax errors caused by input ending too early.
var errIncomplete = errors.New("unexpected end of input")

// Lexer scans a script into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	depth  int // open brackets; newlines inside them are not tokens
	tokens []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
	}
	return ch
}

func (l *Lexer) addToken(tt TokenType, lit any, line int) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    line,
	})
}

func (l *Lexer) err(line int, format string, args ...any) error {
	e := Errorf(KindSyntaxError, format, args...)
	e.Line = line
	return e
}

func (l *Lexer) incomplete(line int, detail string) error {
	return &Error{Kind: KindSyntaxError, Detail: detail, Cause: errIncomplete, Line: line}
}

func isDigit(b byte) bool    { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool    { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool { return isAlpha(b) || isDigit(b) }

// Scan tokenizes the whole source. The result always ends with EOF.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		l.skipBlanks()
		l.start = l.cur
		if l.isAtEnd() {
			break
		}
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	if l.depth > 0 {
		return nil, l.incomplete(l.line, "unclosed bracket")
	}
	l.addToken(EOF, nil, l.line)
	return l.tokens, nil
}

// skipBlanks skips spaces, comments and line continuations.
func (l *Lexer) skipBlanks() {
	for !l.isAtEnd() {
		switch ch := l.peek(); {
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.advance()
		case ch == '\n' && l.depth > 0:
			l.advance()
		case ch == '#':
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanToken() error {
	line := l.line
	ch := l.advance()

	switch ch {
	case '\n':
		l.addToken(NEWLINE, nil, line)
	case ';':
		l.addToken(SEMI, nil, line)
	case '(':
		l.depth++
		l.addToken(LROUND, nil, line)
	case '[':
		l.depth++
		l.addToken(LSQUARE, nil, line)
	case ')', ']':
		if l.depth == 0 {
			return l.err(line, "unmatched '%c'", ch)
		}
		l.depth--
		if ch == ')' {
			l.addToken(RROUND, nil, line)
		} else {
			l.addToken(RSQUARE, nil, line)
		}
	case ',':
		l.addToken(COMMA, nil, line)
	case '.':
		l.addToken(PERIOD, nil, line)
	case '+':
		l.addToken(PLUS, nil, line)
	case '-':
		l.addToken(MINUS, nil, line)
	case '=':
		l.addToken(l.pick('=', EQ, ASSIGN), nil, line)
	case '<':
		l.addToken(l.pick('=', LESS_EQ, LESS), nil, line)
	case '>':
		l.addToken(l.pick('=', GREATER_EQ, GREATER), nil, line)
	case '!':
		if l.peek() != '=' {
			return l.err(line, "invalid syntax")
		}
		l.advance()
		l.addToken(NEQ, nil, line)
	case '"', '\'':
		s, err := l.scanString(ch)
		if err != nil {
			return err
		}
		l.addToken(STRING, s, line)
	default:
		switch {
		case isDigit(ch):
			for isDigit(l.peek()) {
				l.advance()
			}
			v, err := parseInt(l.src[l.start:l.cur])
			if err != nil {
				return l.err(line, "integer literal too large")
			}
			l.addToken(INTEGER, v, line)
		case isAlpha(ch):
			for isAlphaNum(l.peek()) {
				l.advance()
			}
			word := l.src[l.start:l.cur]
			if tt, ok := keywords[word]; ok {
				l.addToken(tt, nil, line)
			} else {
				l.addToken(ID, word, line)
			}
		default:
			return l.err(line, "invalid character '%c'", ch)
		}
	}
	return nil
}

// pick consumes next and returns yes if it follows, otherwise returns no.
func (l *Lexer) pick(next byte, yes, no TokenType) TokenType {
	if l.peek() == next {
		l.advance()
		return yes
	}
	return no
}

// scanString reads a quoted literal whose opening quote was consumed.
func (l *Lexer) scanString(quote byte) (string, error) {
	line := l.line
	var b strings.Builder
	for {
		if l.isAtEnd() {
			return "", l.incomplete(line, "unterminated string literal")
		}
		ch := l.advance()
		switch ch {
		case quote:
			return b.String(), nil
		case '\n':
			return "", l.err(line, "unterminated string literal")
		case '\\':
			if l.isAtEnd() {
				return "", l.incomplete(line, "unterminated string literal")
			}
			switch esc := l.advance(); esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\', '\'', '"':
				b.WriteByte(esc)
			case '\n':
			default:
				b.WriteByte('\\')
				b.WriteByte(esc)
			}
		default:
			b.WriteByte(ch)
		}
	}
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
