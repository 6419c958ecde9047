package plume

import "fmt"

// ClassType is the internal representation for class objects.
// Classes form a single-inheritance chain rooted at object.
type ClassType struct {
	ClassName string
	Base      *Obj // nil only for object
	Dict      *DictType
}

func (t *ClassType) Name() string     { return "type" }
func (t *ClassType) Repr(*Obj) string { return fmt.Sprintf("<class '%s'>", t.ClassName) }

// ModuleType is the internal representation for module namespaces.
type ModuleType struct {
	ModuleName string
	Dict       *DictType
}

func (t *ModuleType) Name() string     { return "module" }
func (t *ModuleType) Repr(*Obj) string { return fmt.Sprintf("<module '%s' (built-in)>", t.ModuleName) }
