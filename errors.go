package plume

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names the script-visible exception class of an error.
type Kind string

const (
	KindTypeError      Kind = "TypeError"
	KindNameError      Kind = "NameError"
	KindAttributeError Kind = "AttributeError"
	KindImportError    Kind = "ImportError"
	KindAssertionError Kind = "AssertionError"
	KindSyntaxError    Kind = "SyntaxError"
	KindRecursionError Kind = "RecursionError"
	KindValueError     Kind = "ValueError"
	KindOverflowError  Kind = "OverflowError"
)

// ErrArity is the cause of every wrong-number-of-arguments error.
//
//	if errors.Is(err, plume.ErrArity) { ... }
var ErrArity = errors.New("wrong number of arguments")

// Error is a script-visible exception raised by the runtime or a host function.
type Error struct {
	Cause  error
	Kind   Kind
	Detail string
	Line   int // script line, 0 when raised outside Eval
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(string(e.Kind))
	detail := e.Detail
	if detail == "" && e.Cause != nil {
		detail = e.Cause.Error()
	}
	if detail != "" {
		b.WriteString(": ")
		b.WriteString(detail)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Errorf returns a formatted error of the given kind.
//
//	return nil, plume.Errorf(plume.KindValueError, "expected %d items, got %d", want, got)
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// arityError reports a call with the wrong number of positional arguments.
func arityError(fn string, want, got int) *Error {
	plural := "s"
	if want == 1 {
		plural = ""
	}
	return &Error{
		Kind:   KindTypeError,
		Detail: fmt.Sprintf("%s() takes exactly %d argument%s (%d given)", fn, want, plural, got),
		Cause:  ErrArity,
	}
}

// atLine attaches a script line to err if it is an *Error without one.
func atLine(err error, line int) error {
	var e *Error
	if errors.As(err, &e) && e.Line == 0 {
		e.Line = line
	}
	return err
}
