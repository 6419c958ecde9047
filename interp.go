package plume

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// Interp is an interpreter instance: the builtin classes, the None/True/False
// singletons, the global namespace and the loaded modules.
//
// Create one with [New] and call [Interp.Close] when done.
// An interpreter is not safe for concurrent use from multiple goroutines.
//
//	interp := plume.New()
//	defer interp.Close()
//	result, err := interp.Eval("1 + 2")
type Interp struct {
	cfg   Config
	out   io.Writer
	depth int // current call nesting

	classes builtinClasses
	none    *Obj
	true_   *Obj
	false_  *Obj

	globals  *DictType
	locals   *DictType // exec() local namespace, nil outside exec
	builtins *DictType
	modules  map[string]*Obj       // imported modules, by name
	inits    map[string]ModuleInit // registered module initializers
}

type builtinClasses struct {
	object   *Obj
	typ      *Obj
	none     *Obj
	boolean  *Obj
	integer  *Obj
	str      *Obj
	list     *Obj
	dict     *Obj
	module   *Obj
	function *Obj
	method   *Obj
}

// New creates an interpreter with the default configuration.
//
//	interp := plume.New()
//	defer interp.Close()
func New() *Interp {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an interpreter with the given settings.
// Zero fields of cfg take their defaults.
func NewWithConfig(cfg Config) *Interp {
	i := &Interp{
		cfg:      cfg.withDefaults(),
		out:      os.Stdout,
		globals:  NewDict(),
		builtins: NewDict(),
		modules:  make(map[string]*Obj),
		inits:    make(map[string]ModuleInit),
	}
	i.bootstrap()
	i.installBuiltins()
	i.RegisterModule(WeakrefModuleName, weakrefModule)
	i.RegisterModule(GCModuleName, gcModule)
	Logger().Debug("interpreter created",
		zap.Int("recursion_limit", i.cfg.RecursionLimit),
		zap.Int("collect_cycles", i.cfg.CollectCycles))
	return i
}

// bootstrap creates object and type, which refer to each other, then the
// remaining builtin classes and the singletons.
func (i *Interp) bootstrap() {
	typ := &Obj{}
	object := &Obj{class: typ, payload: &ClassType{ClassName: "object", Dict: NewDict()}}
	typ.class = typ
	typ.payload = &ClassType{ClassName: "type", Base: object, Dict: NewDict()}
	i.classes.object = object
	i.classes.typ = typ
	i.addMethod(object, "__new__", objectNew)
	i.addMethod(typ, "__new__", typeNew)

	i.classes.none = i.NewClass(ClassDef{Name: "NoneType", Methods: noNew("NoneType")})
	i.classes.boolean = i.NewClass(ClassDef{Name: "bool", Methods: map[string]BuiltinFunc{"__new__": boolNew}})
	i.classes.integer = i.NewClass(ClassDef{Name: "int", Methods: map[string]BuiltinFunc{"__new__": intNew}})
	i.classes.str = i.NewClass(ClassDef{Name: "str", Methods: map[string]BuiltinFunc{"__new__": strNew}})
	i.classes.list = i.NewClass(ClassDef{Name: "list", Methods: map[string]BuiltinFunc{"__new__": listNew}})
	i.classes.dict = i.NewClass(ClassDef{Name: "dict", Methods: map[string]BuiltinFunc{"__new__": dictNew}})
	i.classes.module = i.NewClass(ClassDef{Name: "module", Methods: noNew("module")})
	i.classes.function = i.NewClass(ClassDef{Name: "builtin_function_or_method", Methods: noNew("builtin_function_or_method")})
	i.classes.method = i.NewClass(ClassDef{Name: "method", Methods: noNew("method")})

	i.none = &Obj{class: i.classes.none, payload: NoneType{}}
	i.true_ = &Obj{class: i.classes.boolean, payload: BoolType(true)}
	i.false_ = &Obj{class: i.classes.boolean, payload: BoolType(false)}
}

// Close drops the interpreter's strong handles to globals and imported modules.
//
// Objects referenced only from the interpreter become collectable.
// The interpreter may not be used after Close.
func (i *Interp) Close() {
	i.globals = NewDict()
	i.modules = make(map[string]*Obj)
}

// Config returns the effective configuration.
func (i *Interp) Config() Config {
	return i.cfg
}

// SetOutput redirects print() output. The default is os.Stdout.
func (i *Interp) SetOutput(w io.Writer) {
	i.out = w
}

// -----------------------------------------------------------------------------
// Builtin classes and singletons
// -----------------------------------------------------------------------------

// ObjectClass returns the root class.
func (i *Interp) ObjectClass() *Obj { return i.classes.object }

// TypeClass returns the class of classes.
func (i *Interp) TypeClass() *Obj { return i.classes.typ }

// None returns the None singleton.
func (i *Interp) None() *Obj { return i.none }

// True returns the True singleton.
func (i *Interp) True() *Obj { return i.true_ }

// False returns the False singleton.
func (i *Interp) False() *Obj { return i.false_ }

// -----------------------------------------------------------------------------
// Object Creation
// -----------------------------------------------------------------------------

// Bool returns True or False.
func (i *Interp) Bool(v bool) *Obj {
	if v {
		return i.true_
	}
	return i.false_
}

// Int creates an integer object.
//
//	n := interp.Int(42)
//	n.Type()   // "int"
//	n.String() // "42"
func (i *Interp) Int(v int64) *Obj {
	return &Obj{class: i.classes.integer, payload: IntType(v)}
}

// Str creates a string object.
func (i *Interp) Str(s string) *Obj {
	return &Obj{class: i.classes.str, payload: StrType(s)}
}

// List creates a list object from the given items.
func (i *Interp) List(items ...*Obj) *Obj {
	return &Obj{class: i.classes.list, payload: ListType(items)}
}

// StrList creates a list of string objects.
func (i *Interp) StrList(items []string) *Obj {
	objs := make([]*Obj, len(items))
	for j, s := range items {
		objs[j] = i.Str(s)
	}
	return i.List(objs...)
}

// Dict creates a dict object wrapping d.
func (i *Interp) Dict(d *DictType) *Obj {
	return &Obj{class: i.classes.dict, payload: d}
}

// NewObject creates a fresh plain instance of object.
func (i *Interp) NewObject() *Obj {
	return &Obj{class: i.classes.object}
}

// NewObj creates an object of class cls carrying payload p.
func (i *Interp) NewObj(cls *Obj, p Payload) *Obj {
	return &Obj{class: cls, payload: p}
}

// NewBuiltin wraps a host function as a callable object.
func (i *Interp) NewBuiltin(name string, fn BuiltinFunc) *Obj {
	return &Obj{class: i.classes.function, payload: &BuiltinType{FuncName: name, Fn: fn}}
}

// -----------------------------------------------------------------------------
// Variables
// -----------------------------------------------------------------------------

// Var returns a global variable.
func (i *Interp) Var(name string) (*Obj, bool) {
	return i.globals.Get(name)
}

// SetVar binds a global variable.
func (i *Interp) SetVar(name string, v *Obj) {
	i.globals.Set(name, v)
}

// DelVar removes a global variable. It reports whether the name was bound.
func (i *Interp) DelVar(name string) bool {
	return i.globals.Delete(name)
}

// scope returns the namespace that statements bind names in.
func (i *Interp) scope() *DictType {
	if i.locals != nil {
		return i.locals
	}
	return i.globals
}

// lookup resolves a name against the exec() locals, globals, then builtins.
func (i *Interp) lookup(name string) (*Obj, error) {
	if v, ok := i.locals.Get(name); ok {
		return v, nil
	}
	if v, ok := i.globals.Get(name); ok {
		return v, nil
	}
	if v, ok := i.builtins.Get(name); ok {
		return v, nil
	}
	return nil, Errorf(KindNameError, "name '%s' is not defined", name)
}
