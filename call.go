package plume

// Call invokes callable with positional arguments.
//
// Dispatch order:
//   - host functions are called directly
//   - bound methods prepend their instance
//   - classes construct an instance through __new__, then __init__
//   - any other object is called through its class's __call__
//
// A dead weak reference is not an error: calling it returns None.
func (i *Interp) Call(callable *Obj, args ...*Obj) (*Obj, error) {
	if i.depth >= i.cfg.RecursionLimit {
		return nil, Errorf(KindRecursionError, "maximum recursion depth exceeded")
	}
	i.depth++
	defer func() { i.depth-- }()

	switch p := callable.Payload().(type) {
	case *BuiltinType:
		return p.Fn(i, args)
	case *MethodType:
		return i.Call(p.Func, prepend(p.Self, args)...)
	case *ClassType:
		return i.construct(callable, args)
	}
	if fn := LookupAttr(callable.Class(), "__call__"); fn != nil {
		return i.Call(fn, prepend(callable, args)...)
	}
	return nil, Errorf(KindTypeError, "'%s' object is not callable", callable.Type())
}

// construct creates an instance of cls.
func (i *Interp) construct(cls *Obj, args []*Obj) (*Obj, error) {
	newFn := LookupAttr(cls, "__new__")
	obj, err := i.Call(newFn, prepend(cls, args)...)
	if err != nil {
		return nil, err
	}
	if init := LookupAttr(cls, "__init__"); init != nil && IsInstance(obj, cls) {
		if _, err := i.Call(init, prepend(obj, args)...); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// IsCallable reports whether Call would dispatch o rather than fail.
func IsCallable(o *Obj) bool {
	switch o.Payload().(type) {
	case *BuiltinType, *MethodType, *ClassType:
		return true
	}
	return LookupAttr(o.Class(), "__call__") != nil
}

// GetAttr reads attribute name of o.
//
// Modules resolve names in their namespace. Classes resolve along their
// bases. Other objects look at their own attributes first, then their class;
// host functions found on the class come back bound to o.
func (i *Interp) GetAttr(o *Obj, name string) (*Obj, error) {
	switch p := o.Payload().(type) {
	case *ModuleType:
		if v, ok := p.Dict.Get(name); ok {
			return v, nil
		}
		if name == "__name__" {
			return i.Str(p.ModuleName), nil
		}
		return nil, Errorf(KindAttributeError, "module '%s' has no attribute '%s'", p.ModuleName, name)
	case *ClassType:
		switch name {
		case "__name__":
			return i.Str(p.ClassName), nil
		case "__base__":
			if p.Base == nil {
				return i.none, nil
			}
			return p.Base, nil
		case "__class__":
			return o.class, nil
		}
		if v := LookupAttr(o, name); v != nil {
			return v, nil
		}
		return nil, Errorf(KindAttributeError, "type object '%s' has no attribute '%s'", p.ClassName, name)
	}
	if v, ok := o.attrs.Get(name); ok {
		return v, nil
	}
	if name == "__class__" {
		return o.class, nil
	}
	if v := LookupAttr(o.class, name); v != nil {
		if _, ok := v.payload.(*BuiltinType); ok {
			return &Obj{class: i.classes.method, payload: &MethodType{Self: o, Func: v}}, nil
		}
		return v, nil
	}
	return nil, Errorf(KindAttributeError, "'%s' object has no attribute '%s'", o.Type(), name)
}

// SetAttr assigns attribute name of o.
// Only plain instances and modules accept new attributes.
func (i *Interp) SetAttr(o *Obj, name string, v *Obj) error {
	switch p := o.Payload().(type) {
	case *ModuleType:
		p.Dict.Set(name, v)
		return nil
	case nil:
		if o.attrs == nil {
			o.attrs = NewDict()
		}
		o.attrs.Set(name, v)
		return nil
	}
	return Errorf(KindAttributeError, "'%s' object attribute '%s' is read-only", o.Type(), name)
}

// HasAttr reports whether GetAttr would succeed.
func (i *Interp) HasAttr(o *Obj, name string) bool {
	_, err := i.GetAttr(o, name)
	return err == nil
}

func prepend(first *Obj, rest []*Obj) []*Obj {
	args := make([]*Obj, 0, len(rest)+1)
	args = append(args, first)
	return append(args, rest...)
}
