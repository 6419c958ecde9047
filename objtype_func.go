package plume

import "fmt"

// BuiltinFunc is the signature of host-implemented callables.
//
// args holds every positional argument, including the receiver for methods
// and the class for __new__. Return an [*Error] for script-visible failures.
type BuiltinFunc func(i *Interp, args []*Obj) (*Obj, error)

// BuiltinType is the internal representation for host functions.
type BuiltinType struct {
	FuncName string
	Fn       BuiltinFunc
}

func (t *BuiltinType) Name() string     { return "builtin_function_or_method" }
func (t *BuiltinType) Repr(*Obj) string { return fmt.Sprintf("<built-in function %s>", t.FuncName) }

// MethodType binds a function found on a class to the instance it was read from.
type MethodType struct {
	Self *Obj
	Func *Obj
}

func (t *MethodType) Name() string { return "method" }

func (t *MethodType) Repr(*Obj) string {
	name := "?"
	if b, ok := t.Func.payload.(*BuiltinType); ok {
		name = b.FuncName
	}
	return fmt.Sprintf("<bound method %s of %s>", name, Repr(t.Self))
}
