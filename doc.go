// Package plume provides a small embeddable object runtime for Go
// applications, with weak references as a first-class primitive.
//
// # Overview
//
// plume hosts a Python-flavoured object model on top of the Go heap.
// It provides:
//
//   - Objects with a class and an internal payload, collected by the Go GC
//   - Declarative class registration with host-implemented methods
//   - Automatic type conversion for registered Go functions
//   - A module registry with the builtin _weakref and gc modules
//   - A small statement language for scripts and the REPL
//
// # Quick Start
//
//	import "github.com/feather-lang/plume"
//
//	func main() {
//	    interp := plume.New()
//	    defer interp.Close()
//
//	    result, _ := interp.Eval("1 + 2")
//	    fmt.Println(result.String()) // "3"
//
//	    // Register Go functions
//	    interp.Register("double", func(x int) int { return x * 2 })
//	    result, _ = interp.Eval("double(21)") // 42
//	}
//
// # Weak References
//
// The _weakref module exports one class, ref. Calling ref(x) creates a
// handle that observes x without keeping it alive. Calling the handle
// returns x while x is alive and None afterwards:
//
//	import _weakref
//	import gc
//	o = object()
//	w = _weakref.ref(o)
//	assert w() is o
//	del o
//	gc.collect()
//	assert w() is None
//
// Liveness is decided by the Go collector. [Interp.Collect] (gc.collect()
// in scripts) runs enough collection cycles for unreachable objects to be
// reclaimed. A dead reference never becomes live again.
//
// # Classes
//
// Host classes are described with a [ClassDef]:
//
//	counter := interp.NewClass(plume.ClassDef{
//	    Name: "Counter",
//	    Methods: map[string]plume.BuiltinFunc{
//	        "__call__": func(i *plume.Interp, args []*plume.Obj) (*plume.Obj, error) {
//	            if err := i.CheckArgs("Counter.__call__", args, nil); err != nil {
//	                return nil, err
//	            }
//	            return i.Int(1), nil
//	        },
//	    },
//	})
//	interp.SetVar("Counter", counter)
//
// Calling a class runs its __new__ and, when defined, its __init__.
// Calling an instance runs its class's __call__.
//
// # Supported Type Conversions
//
// Script to Go, for registered functions:
//   - str → string
//   - int, bool → int, int64
//   - any object → bool (truth value), *Obj
//
// Go to script:
//   - string → str
//   - integer types → int
//   - bool → True or False
//   - []T → list
//   - nil *Obj → None
package plume
