package plume_test

import (
	"fmt"

	"github.com/feather-lang/plume"
)

// Example_weakref shows a reference observing an object until it is collected.
func Example_weakref() {
	interp := plume.New()
	defer interp.Close()

	result, err := interp.Eval(`
import _weakref
import gc
o = object()
w = _weakref.ref(o)
print(w() is o)
del o
gc.collect()
w()
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(plume.Repr(result))
	// Output:
	// True
	// None
}

// ExampleInterp_Register shows a Go function called from a script.
func ExampleInterp_Register() {
	interp := plume.New()
	defer interp.Close()

	interp.Register("greet", func(name string) string {
		return "Hello, " + name + "!"
	})
	result, _ := interp.Eval(`greet("World")`)
	fmt.Println(result.String())
	// Output: Hello, World!
}

// ExampleInterp_NewClass shows a host class whose instances are callable.
func ExampleInterp_NewClass() {
	interp := plume.New()
	defer interp.Close()

	answer := interp.NewClass(plume.ClassDef{
		Name: "Answer",
		Methods: map[string]plume.BuiltinFunc{
			"__call__": func(i *plume.Interp, args []*plume.Obj) (*plume.Obj, error) {
				if err := i.CheckArgs("Answer.__call__", args, nil); err != nil {
					return nil, err
				}
				return i.Int(42), nil
			},
		},
	})
	interp.SetVar("Answer", answer)

	result, _ := interp.Eval("a = Answer()\n[a(), type(a)]")
	fmt.Println(plume.Repr(result))
	// Output: [42, <class 'Answer'>]
}
