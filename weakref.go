package plume

import (
	"fmt"
	"weak"
)

// WeakrefModuleName is the import name of the weak reference module.
const WeakrefModuleName = "_weakref"

// weakrefModule builds the _weakref module: a namespace holding the ref class.
func weakrefModule(i *Interp) *Obj {
	var ref *Obj
	ref = i.NewClass(ClassDef{
		Name: "ref",
		Base: i.ObjectClass(),
		Methods: map[string]BuiltinFunc{
			"__new__": func(i *Interp, args []*Obj) (*Obj, error) {
				return refNew(i, ref, args)
			},
			"__call__": func(i *Interp, args []*Obj) (*Obj, error) {
				return refCall(i, ref, args)
			},
		},
	})
	return i.NewModule(WeakrefModuleName, map[string]*Obj{"ref": ref})
}

// refNew implements ref.__new__(cls, referent). The referent is not inspected.
func refNew(i *Interp, ref *Obj, args []*Obj) (*Obj, error) {
	if err := i.CheckArgs("ref.__new__", args, i.TypeClass(), nil); err != nil {
		return nil, err
	}
	cls, referent := args[0], args[1]
	if !IsSubclass(cls, ref) {
		return nil, Errorf(KindTypeError, "ref.__new__(%s): %s is not a subtype of ref", cls.className(), cls.className())
	}
	return i.NewObj(cls, WeakRefType{referent: weak.Make(referent)}), nil
}

// refCall implements ref.__call__(self): the referent while it is alive, None after.
func refCall(i *Interp, ref *Obj, args []*Obj) (*Obj, error) {
	if err := i.CheckArgs("ref.__call__", args, ref); err != nil {
		return nil, err
	}
	if o := weakRefOf(args[0]).Value(); o != nil {
		return o, nil
	}
	return i.None(), nil
}

// weakRefOf returns the observer stored in o. Callers have already checked
// that o is an instance of ref, so any other payload is an interpreter bug.
func weakRefOf(o *Obj) weak.Pointer[Obj] {
	if w, ok := o.payload.(WeakRefType); ok {
		return w.referent
	}
	panic(fmt.Sprintf("plume: inner error getting weak ref from %s object at %p", o.Type(), o))
}
