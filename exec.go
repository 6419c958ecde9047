package plume

import (
	"fmt"

	"go.uber.org/zap"
)

// Exec runs script with explicit namespaces and discards its value.
//
// A nil globals selects the namespaces of the running code (the interpreter
// globals at top level). A nil locals selects globals. Names are looked up
// in locals, then globals, then builtins; statements bind names in locals.
//
//	ns := plume.NewDict()
//	if err := interp.Exec("x = 1", ns, nil); err != nil {
//	    return err
//	}
//	x, _ := ns.Get("x")
func (i *Interp) Exec(script string, globals, locals *DictType) error {
	savedGlobals, savedLocals := i.globals, i.locals
	defer func() { i.globals, i.locals = savedGlobals, savedLocals }()

	switch {
	case globals == nil && locals == nil:
		// keep the running namespaces
	case globals == nil:
		i.locals = locals
	default:
		i.globals = globals
		i.locals = locals
	}
	if i.locals == i.globals {
		i.locals = nil
	}
	Logger().Debug("exec", zap.Bool("own_globals", globals != nil), zap.Bool("own_locals", locals != nil))
	_, err := i.Eval(script)
	return err
}

// builtinExec implements exec(source[, globals[, locals]]).
func (i *Interp) builtinExec(source string, scopes ...*Obj) error {
	if len(scopes) > 2 {
		return &Error{
			Kind:   KindTypeError,
			Detail: fmt.Sprintf("exec() takes at most 3 arguments (%d given)", len(scopes)+1),
			Cause:  ErrArity,
		}
	}
	var globals, locals *DictType
	if len(scopes) > 0 {
		d, err := i.namespaceArg(scopes[0], "globals")
		if err != nil {
			return err
		}
		globals = d
	}
	if len(scopes) > 1 {
		d, err := i.namespaceArg(scopes[1], "locals")
		if err != nil {
			return err
		}
		locals = d
	}
	return i.Exec(source, globals, locals)
}

// namespaceArg accepts a dict or None for an exec() namespace argument.
func (i *Interp) namespaceArg(o *Obj, role string) (*DictType, error) {
	if o == i.none {
		return nil, nil
	}
	if d, ok := o.payload.(*DictType); ok {
		return d, nil
	}
	return nil, Errorf(KindTypeError, "exec() %s must be a dict or None, not %s", role, o.Type())
}
