package plume

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Eval runs a script in the global namespace and returns the value of its
// last statement, or None when that statement is not an expression.
//
//	result, err := interp.Eval("x = 1\nx + 2")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.String()) // "3"
//
// Only the value of the statement just executed is held between
// statements, so objects dropped by the script are collectable immediately.
func (i *Interp) Eval(script string) (*Obj, error) {
	prog, err := ParseProgram(script)
	if err != nil {
		return nil, err
	}
	Logger().Debug("evaluating script", zap.Int("statements", len(prog.Stmts)))
	result := i.none
	for _, s := range prog.Stmts {
		v, err := i.exec(s)
		if err != nil {
			return nil, atLine(err, s.Pos())
		}
		result = v
	}
	return result, nil
}

// exec runs one statement. Only expression statements produce a value
// other than None.
func (i *Interp) exec(n Node) (*Obj, error) {
	switch s := n.(type) {
	case *ExprStmt:
		return i.eval(s.X)

	case *AssignStmt:
		v, err := i.eval(s.Value)
		if err != nil {
			return nil, err
		}
		i.scope().Set(s.Name, v)

	case *SetAttrStmt:
		target, err := i.eval(s.Target)
		if err != nil {
			return nil, err
		}
		v, err := i.eval(s.Value)
		if err != nil {
			return nil, err
		}
		if err := i.SetAttr(target, s.Attr, v); err != nil {
			return nil, err
		}

	case *ImportStmt:
		m, err := i.Import(s.Module)
		if err != nil {
			return nil, err
		}
		i.scope().Set(s.Alias, m)

	case *FromImportStmt:
		m, err := i.Import(s.Module)
		if err != nil {
			return nil, err
		}
		for _, name := range s.Names {
			v, err := i.GetAttr(m, name)
			if err != nil {
				return nil, Errorf(KindImportError, "cannot import name '%s' from '%s'", name, s.Module)
			}
			i.scope().Set(name, v)
		}

	case *DelStmt:
		for _, name := range s.Names {
			if !i.scope().Delete(name) {
				return nil, Errorf(KindNameError, "name '%s' is not defined", name)
			}
		}

	case *AssertStmt:
		v, err := i.eval(s.Test)
		if err != nil {
			return nil, err
		}
		if v.Truth() {
			break
		}
		if s.Msg == nil {
			return nil, &Error{Kind: KindAssertionError}
		}
		msg, err := i.eval(s.Msg)
		if err != nil {
			return nil, err
		}
		return nil, &Error{Kind: KindAssertionError, Detail: msg.String()}

	case *PassStmt:

	default:
		panic(fmt.Sprintf("plume: unknown statement %T", n))
	}
	return i.none, nil
}

func (i *Interp) eval(n Node) (*Obj, error) {
	switch e := n.(type) {
	case *ConstExpr:
		switch e.Kind {
		case INTEGER:
			return i.Int(e.Value.(int64)), nil
		case STRING:
			return i.Str(e.Value.(string)), nil
		case TRUE:
			return i.true_, nil
		case FALSE:
			return i.false_, nil
		}
		return i.none, nil

	case *NameExpr:
		return i.lookup(e.Name)

	case *ListExpr:
		items, err := i.evalAll(e.Items)
		if err != nil {
			return nil, err
		}
		return i.List(items...), nil

	case *AttrExpr:
		x, err := i.eval(e.X)
		if err != nil {
			return nil, err
		}
		return i.GetAttr(x, e.Name)

	case *CallExpr:
		fn, err := i.eval(e.Fn)
		if err != nil {
			return nil, err
		}
		args, err := i.evalAll(e.Args)
		if err != nil {
			return nil, err
		}
		return i.Call(fn, args...)

	case *UnaryExpr:
		x, err := i.eval(e.X)
		if err != nil {
			return nil, err
		}
		if e.Op == NOT {
			return i.Bool(!x.Truth()), nil
		}
		if v, ok := x.Payload().(IntType); ok {
			if v == math.MinInt64 {
				return nil, overflowError("unary -")
			}
			return i.Int(-int64(v)), nil
		}
		return nil, Errorf(KindTypeError, "bad operand type for unary -: '%s'", x.Type())

	case *BinaryExpr:
		return i.evalBinary(e)
	}
	panic(fmt.Sprintf("plume: unknown expression %T", n))
}

func (i *Interp) evalAll(nodes []Node) ([]*Obj, error) {
	out := make([]*Obj, len(nodes))
	for j, n := range nodes {
		v, err := i.eval(n)
		if err != nil {
			return nil, err
		}
		out[j] = v
	}
	return out, nil
}

func (i *Interp) evalBinary(e *BinaryExpr) (*Obj, error) {
	l, err := i.eval(e.L)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case AND:
		if !l.Truth() {
			return l, nil
		}
		return i.eval(e.R)
	case OR:
		if l.Truth() {
			return l, nil
		}
		return i.eval(e.R)
	}

	r, err := i.eval(e.R)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case IS:
		return i.Bool((l == r) != e.Negate), nil
	case EQ:
		return i.Bool(Equal(l, r)), nil
	case NEQ:
		return i.Bool(!Equal(l, r)), nil
	case PLUS:
		return i.add(l, r)
	case MINUS:
		a, aok := l.Payload().(IntType)
		b, bok := r.Payload().(IntType)
		if aok && bok {
			d := int64(a) - int64(b)
			if (d < int64(a)) != (b > 0) {
				return nil, overflowError("-")
			}
			return i.Int(d), nil
		}
		return nil, Errorf(KindTypeError, "unsupported operand type(s) for -: '%s' and '%s'", l.Type(), r.Type())
	}
	return i.order(e.Op, l, r)
}

func (i *Interp) add(l, r *Obj) (*Obj, error) {
	switch a := l.Payload().(type) {
	case IntType:
		if b, ok := r.Payload().(IntType); ok {
			sum := int64(a) + int64(b)
			if (sum > int64(a)) != (b > 0) {
				return nil, overflowError("+")
			}
			return i.Int(sum), nil
		}
	case StrType:
		if b, ok := r.Payload().(StrType); ok {
			return i.Str(string(a) + string(b)), nil
		}
	case ListType:
		if b, ok := r.Payload().(ListType); ok {
			items := make([]*Obj, 0, len(a)+len(b))
			items = append(items, a...)
			return i.List(append(items, b...)...), nil
		}
	}
	return nil, Errorf(KindTypeError, "unsupported operand type(s) for +: '%s' and '%s'", l.Type(), r.Type())
}

// order evaluates <, <=, > and >= on two ints or two strings.
func (i *Interp) order(op TokenType, l, r *Obj) (*Obj, error) {
	var c int
	switch a := l.Payload().(type) {
	case IntType:
		b, ok := r.Payload().(IntType)
		if !ok {
			return nil, unorderable(op, l, r)
		}
		c = compare(a, b)
	case StrType:
		b, ok := r.Payload().(StrType)
		if !ok {
			return nil, unorderable(op, l, r)
		}
		c = compare(a, b)
	default:
		return nil, unorderable(op, l, r)
	}
	switch op {
	case LESS:
		return i.Bool(c < 0), nil
	case LESS_EQ:
		return i.Bool(c <= 0), nil
	case GREATER:
		return i.Bool(c > 0), nil
	default:
		return i.Bool(c >= 0), nil
	}
}

func compare[T IntType | StrType](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

var opText = map[TokenType]string{LESS: "<", LESS_EQ: "<=", GREATER: ">", GREATER_EQ: ">="}

func unorderable(op TokenType, l, r *Obj) error {
	return Errorf(KindTypeError, "'%s' not supported between instances of '%s' and '%s'", opText[op], l.Type(), r.Type())
}

// Equal reports value equality: numbers (including bools), strings and lists
// compare by value, everything else by identity.
func Equal(l, r *Obj) bool {
	if l == r {
		return true
	}
	if a, ok := l.Payload().(IntoInt); ok {
		b, ok := r.Payload().(IntoInt)
		if !ok {
			return false
		}
		x, _ := a.IntoInt()
		y, _ := b.IntoInt()
		return x == y
	}
	switch a := l.Payload().(type) {
	case StrType:
		b, ok := r.Payload().(StrType)
		return ok && a == b
	case ListType:
		b, ok := r.Payload().(ListType)
		if !ok || len(a) != len(b) {
			return false
		}
		for j := range a {
			if !Equal(a[j], b[j]) {
				return false
			}
		}
		return true
	}
	return false
}

// overflowError reports an integer result outside the int64 range.
func overflowError(op string) *Error {
	return Errorf(KindOverflowError, "integer result of %s does not fit in 64 bits", op)
}
