package plume

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"
)

// installBuiltins populates the builtin namespace shared by every script.
func (i *Interp) installBuiltins() {
	classes := map[string]*Obj{
		"object": i.classes.object,
		"type":   i.classes.typ,
		"bool":   i.classes.boolean,
		"int":    i.classes.integer,
		"str":    i.classes.str,
		"list":   i.classes.list,
		"dict":   i.classes.dict,
	}
	for _, name := range sortedKeys(classes) {
		i.builtins.Set(name, classes[name])
	}

	i.Register("print", i.builtinPrint)
	i.Register("repr", func(o *Obj) string { return Repr(o) })
	i.Register("len", builtinLen)
	i.Register("dir", i.builtinDir)
	i.Register("isinstance", builtinIsInstance)
	i.Register("issubclass", builtinIsSubclass)
	i.Register("id", func(o *Obj) int64 { return int64(reflect.ValueOf(o).Pointer()) })
	i.Register("callable", IsCallable)
	i.Register("hasattr", i.HasAttr)
	i.Register("exec", i.builtinExec)
}

func (i *Interp) builtinPrint(args ...*Obj) error {
	parts := make([]string, len(args))
	for j, a := range args {
		parts[j] = a.String()
	}
	_, err := fmt.Fprintln(i.out, strings.Join(parts, " "))
	return err
}

func builtinLen(o *Obj) (int, error) {
	switch p := o.Payload().(type) {
	case StrType:
		return utf8.RuneCountInString(string(p)), nil
	case ListType:
		return len(p), nil
	case *DictType:
		return len(p.Items), nil
	}
	return 0, Errorf(KindTypeError, "object of type '%s' has no len()", o.Type())
}

// builtinDir lists the attribute names of o, sorted. Modules list only their
// public names.
func (i *Interp) builtinDir(o *Obj) []string {
	switch p := o.Payload().(type) {
	case *ModuleType:
		return publicNames(p.Dict)
	case *ClassType:
		return classNames(o)
	}
	names := classNames(o.Class())
	for _, k := range o.Attrs().Keys() {
		names = append(names, k)
	}
	return dedupSorted(names)
}

func builtinIsInstance(o, cls *Obj) (bool, error) {
	if !IsClass(cls) {
		return false, Errorf(KindTypeError, "isinstance() arg 2 must be a type")
	}
	return IsInstance(o, cls), nil
}

func builtinIsSubclass(a, b *Obj) (bool, error) {
	if !IsClass(a) {
		return false, Errorf(KindTypeError, "issubclass() arg 1 must be a class")
	}
	if !IsClass(b) {
		return false, Errorf(KindTypeError, "issubclass() arg 2 must be a class")
	}
	return IsSubclass(a, b), nil
}

func dedupSorted(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
