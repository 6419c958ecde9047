package plume

import (
	"sort"

	"go.uber.org/zap"
)

// ClassDef describes a class to create with [Interp.NewClass].
//
//	cls := interp.NewClass(plume.ClassDef{
//	    Name: "Counter",
//	    Methods: map[string]plume.BuiltinFunc{
//	        "__call__": func(i *plume.Interp, args []*plume.Obj) (*plume.Obj, error) {
//	            return i.Int(1), nil
//	        },
//	    },
//	})
type ClassDef struct {
	// Name is the class name shown by repr and error messages. Required.
	Name string

	// Base is the parent class. Nil selects object.
	Base *Obj

	// Methods maps method names to host functions. Methods receive the
	// instance (or, for __new__, the class) as their first argument.
	Methods map[string]BuiltinFunc

	// Attrs holds additional class attributes.
	Attrs map[string]*Obj
}

// NewClass creates a class object from def.
func (i *Interp) NewClass(def ClassDef) *Obj {
	base := def.Base
	if base == nil {
		base = i.classes.object
	}
	cls := &Obj{
		class:   i.classes.typ,
		payload: &ClassType{ClassName: def.Name, Base: base, Dict: NewDict()},
	}
	for _, name := range sortedKeys(def.Methods) {
		i.addMethod(cls, name, def.Methods[name])
	}
	for _, name := range sortedKeys(def.Attrs) {
		cls.payload.(*ClassType).Dict.Set(name, def.Attrs[name])
	}
	Logger().Debug("class created",
		zap.String("class", def.Name),
		zap.String("base", base.className()),
		zap.Int("methods", len(def.Methods)))
	return cls
}

func (i *Interp) addMethod(cls *Obj, name string, fn BuiltinFunc) {
	qualified := cls.className() + "." + name
	cls.payload.(*ClassType).Dict.Set(name, i.NewBuiltin(qualified, fn))
}

// LookupAttr finds name on cls or its bases. Returns nil if absent.
func LookupAttr(cls *Obj, name string) *Obj {
	for c := cls; c != nil; {
		ct, ok := c.payload.(*ClassType)
		if !ok {
			return nil
		}
		if v, ok := ct.Dict.Get(name); ok {
			return v
		}
		c = ct.Base
	}
	return nil
}

// IsClass reports whether o is a class object.
func IsClass(o *Obj) bool {
	_, ok := o.Payload().(*ClassType)
	return ok
}

// IsSubclass reports whether cls is base or derives from it.
func IsSubclass(cls, base *Obj) bool {
	for c := cls; c != nil; {
		if c == base {
			return true
		}
		ct, ok := c.payload.(*ClassType)
		if !ok {
			return false
		}
		c = ct.Base
	}
	return false
}

// IsInstance reports whether o's class is cls or a subclass of it.
func IsInstance(o, cls *Obj) bool {
	return o != nil && IsSubclass(o.class, cls)
}

// className returns the name of a class object, or the type name otherwise.
func (o *Obj) className() string {
	if c, ok := o.Payload().(*ClassType); ok {
		return c.ClassName
	}
	return o.Type()
}

// classNames lists every attribute name visible on cls, sorted.
func classNames(cls *Obj) []string {
	seen := make(map[string]bool)
	for c := cls; c != nil; {
		ct, ok := c.payload.(*ClassType)
		if !ok {
			break
		}
		for _, k := range ct.Dict.Order {
			seen[k] = true
		}
		c = ct.Base
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// -----------------------------------------------------------------------------
// Constructors of the builtin classes
// -----------------------------------------------------------------------------

// objectNew creates a plain instance. Extra arguments are only accepted when
// the class defines __init__ to consume them.
func objectNew(i *Interp, args []*Obj) (*Obj, error) {
	if len(args) == 0 {
		return nil, arityError("object.__new__", 1, 0)
	}
	cls := args[0]
	if !IsClass(cls) {
		return nil, Errorf(KindTypeError, "object.__new__(X): X is not a type object (%s)", cls.Type())
	}
	if len(args) > 1 && LookupAttr(cls, "__init__") == nil {
		return nil, Errorf(KindTypeError, "%s() takes no arguments", cls.className())
	}
	return &Obj{class: cls}, nil
}

// typeNew implements type(o), which returns the class of o.
func typeNew(i *Interp, args []*Obj) (*Obj, error) {
	if err := i.CheckArgs("type.__new__", args, i.classes.typ, nil); err != nil {
		return nil, err
	}
	return args[1].class, nil
}

func boolNew(i *Interp, args []*Obj) (*Obj, error) {
	if err := i.CheckArgs("bool.__new__", args, i.classes.typ, nil); err != nil {
		return nil, err
	}
	return i.Bool(args[1].Truth()), nil
}

func intNew(i *Interp, args []*Obj) (*Obj, error) {
	if err := i.CheckArgs("int.__new__", args, i.classes.typ, nil); err != nil {
		return nil, err
	}
	if s, ok := args[1].payload.(StrType); ok {
		v, err := parseInt(string(s))
		if err != nil {
			return nil, Errorf(KindValueError, "invalid literal for int(): %s", s.Repr(nil))
		}
		return i.Int(v), nil
	}
	v, err := AsInt(args[1])
	if err != nil {
		return nil, err
	}
	return i.Int(v), nil
}

func strNew(i *Interp, args []*Obj) (*Obj, error) {
	if err := i.CheckArgs("str.__new__", args, i.classes.typ, nil); err != nil {
		return nil, err
	}
	return i.Str(args[1].String()), nil
}

func listNew(i *Interp, args []*Obj) (*Obj, error) {
	if err := i.CheckArgs("list.__new__", args, i.classes.typ, nil); err != nil {
		return nil, err
	}
	items, err := AsList(args[1])
	if err != nil {
		return nil, err
	}
	return i.List(append([]*Obj(nil), items...)...), nil
}

// dictNew implements dict() and dict(d), which copies d.
func dictNew(i *Interp, args []*Obj) (*Obj, error) {
	d := NewDict()
	if len(args) == 1 {
		return i.Dict(d), nil
	}
	if err := i.CheckArgs("dict.__new__", args, i.classes.typ, i.classes.dict); err != nil {
		return nil, err
	}
	src := args[1].payload.(*DictType)
	for _, k := range src.Order {
		d.Set(k, src.Items[k])
	}
	return i.Dict(d), nil
}

// noNew returns a method table whose __new__ refuses to create instances.
func noNew(name string) map[string]BuiltinFunc {
	return map[string]BuiltinFunc{
		"__new__": func(i *Interp, args []*Obj) (*Obj, error) {
			return nil, Errorf(KindTypeError, "cannot create '%s' instances", name)
		},
	}
}
