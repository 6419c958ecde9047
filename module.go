package plume

import (
	"sort"

	"go.uber.org/zap"
)

// ModuleInit builds a module object. It runs at most once per interpreter,
// on the first import of the module.
type ModuleInit func(i *Interp) *Obj

// RegisterModule makes a builtin module importable under name.
// Registering a name again replaces the initializer; an already imported
// module stays cached.
//
//	interp.RegisterModule("greeting", func(i *plume.Interp) *plume.Obj {
//	    return i.NewModule("greeting", map[string]*plume.Obj{
//	        "text": i.Str("hello"),
//	    })
//	})
func (i *Interp) RegisterModule(name string, init ModuleInit) {
	i.inits[name] = init
}

// Import returns the module registered under name, initializing it on first use.
func (i *Interp) Import(name string) (*Obj, error) {
	if m, ok := i.modules[name]; ok {
		return m, nil
	}
	init, ok := i.inits[name]
	if !ok {
		return nil, Errorf(KindImportError, "No module named '%s'", name)
	}
	m := init(i)
	i.modules[name] = m
	Logger().Debug("module imported", zap.String("module", name))
	return m, nil
}

// Modules returns the names of all importable modules, sorted.
func (i *Interp) Modules() []string {
	return sortedKeys(i.inits)
}

// NewModule creates a module object whose namespace holds attrs.
// Names are inserted in sorted order.
func (i *Interp) NewModule(name string, attrs map[string]*Obj) *Obj {
	dict := NewDict()
	for _, k := range sortedKeys(attrs) {
		dict.Set(k, attrs[k])
	}
	return &Obj{class: i.classes.module, payload: &ModuleType{ModuleName: name, Dict: dict}}
}

// publicNames returns the namespace names that do not start with an underscore.
func publicNames(d *DictType) []string {
	var names []string
	for _, k := range d.Keys() {
		if len(k) > 0 && k[0] != '_' {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
