package plume_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/feather-lang/plume"
)

func TestNew(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	result, err := interp.Eval("2 + 2")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "4" {
		t.Errorf("expected '4', got %q", result.String())
	}
}

func TestSetVar(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	interp.SetVar("name", interp.Str("World"))
	result, err := interp.Eval(`greeting = "Hello, " + name + "!"
greeting`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "Hello, World!" {
		t.Errorf("expected 'Hello, World!', got %q", result.String())
	}
}

func TestVar(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	if _, err := interp.Eval("x = 42"); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	v, ok := interp.Var("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	n, err := v.Int()
	if err != nil {
		t.Fatalf("Int() failed: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}

	if !interp.DelVar("x") {
		t.Error("expected DelVar to report a bound name")
	}
	if _, ok := interp.Var("x"); ok {
		t.Error("expected x to be unbound")
	}
}

func TestRegisterSimple(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	interp.Register("double", func(x int) int {
		return x * 2
	})

	result, err := interp.Eval("double(21)")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "42" {
		t.Errorf("expected '42', got %q", result.String())
	}
}

func TestRegisterWithError(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	interp.Register("divide", func(a, b int) (int, error) {
		if b == 0 {
			return 0, plume.Errorf(plume.KindValueError, "division by zero")
		}
		return a / b, nil
	})

	result, err := interp.Eval("divide(10, 2)")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "5" {
		t.Errorf("expected '5', got %q", result.String())
	}

	_, err = interp.Eval("divide(1, 0)")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "line 1: ValueError: division by zero" {
		t.Errorf("unexpected error %q", err.Error())
	}
}

func TestRegisterVariadic(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	interp.Register("count", func(items ...*plume.Obj) int { return len(items) })
	interp.Register("names", func(prefix string, n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = prefix + strings.Repeat("!", i)
		}
		return out
	})

	result, err := interp.Eval("[count(), count(1, 2, 3), names('a', 2)]")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if got := plume.Repr(result); got != "[0, 3, ['a', 'a!']]" {
		t.Errorf("expected [0, 3, ['a', 'a!']], got %s", got)
	}

	_, err = interp.Eval("names('a')")
	if !errors.Is(err, plume.ErrArity) {
		t.Errorf("expected arity error, got %v", err)
	}
	_, err = interp.Eval("names(1, 2)")
	if err == nil || !strings.Contains(err.Error(), "names() argument 1") {
		t.Errorf("expected conversion error, got %v", err)
	}
}

func TestPrintOutput(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	var buf bytes.Buffer
	interp.SetOutput(&buf)
	if _, err := interp.Eval(`print("a", 1, [None])`); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if buf.String() != "a 1 [None]\n" {
		t.Errorf("expected 'a 1 [None]\\n', got %q", buf.String())
	}
}

func TestNewClassCallable(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	calls := 0
	counter := interp.NewClass(plume.ClassDef{
		Name: "Counter",
		Methods: map[string]plume.BuiltinFunc{
			"__call__": func(i *plume.Interp, args []*plume.Obj) (*plume.Obj, error) {
				if err := i.CheckArgs("Counter.__call__", args, nil); err != nil {
					return nil, err
				}
				calls++
				return i.Int(int64(calls)), nil
			},
		},
		Attrs: map[string]*plume.Obj{"start": interp.Int(0)},
	})
	interp.SetVar("Counter", counter)

	result, err := interp.Eval("c = Counter()\nc(); c()\n[c(), Counter.start, c.start, isinstance(c, Counter)]")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if got := plume.Repr(result); got != "[3, 0, 0, True]" {
		t.Errorf("expected [3, 0, 0, True], got %s", got)
	}
	if got := plume.Repr(counter); got != "<class 'Counter'>" {
		t.Errorf("expected <class 'Counter'>, got %s", got)
	}
}

func TestInitReceivesArguments(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	point := interp.NewClass(plume.ClassDef{
		Name: "Point",
		Methods: map[string]plume.BuiltinFunc{
			"__init__": func(i *plume.Interp, args []*plume.Obj) (*plume.Obj, error) {
				if err := i.CheckArgs("Point.__init__", args, nil, nil, nil); err != nil {
					return nil, err
				}
				if err := i.SetAttr(args[0], "x", args[1]); err != nil {
					return nil, err
				}
				return i.None(), i.SetAttr(args[0], "y", args[2])
			},
		},
	})
	interp.SetVar("Point", point)

	result, err := interp.Eval("p = Point(1, 2)\np.x + p.y")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "3" {
		t.Errorf("expected '3', got %q", result.String())
	}

	_, err = interp.Eval("Point(1)")
	if !errors.Is(err, plume.ErrArity) {
		t.Errorf("expected arity error, got %v", err)
	}
}

func TestGetAttrBindsMethods(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	greeter := interp.NewClass(plume.ClassDef{
		Name: "Greeter",
		Methods: map[string]plume.BuiltinFunc{
			"greet": func(i *plume.Interp, args []*plume.Obj) (*plume.Obj, error) {
				if err := i.CheckArgs("Greeter.greet", args, nil, nil); err != nil {
					return nil, err
				}
				return i.Str("hello " + args[1].String()), nil
			},
		},
	})
	g, err := interp.Call(greeter)
	if err != nil {
		t.Fatalf("Greeter() failed: %v", err)
	}
	m, err := interp.GetAttr(g, "greet")
	if err != nil {
		t.Fatalf("GetAttr failed: %v", err)
	}
	if _, ok := m.Payload().(*plume.MethodType); !ok {
		t.Fatalf("expected bound method, got %T", m.Payload())
	}
	result, err := interp.Call(m, interp.Str("world"))
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if result.String() != "hello world" {
		t.Errorf("expected 'hello world', got %q", result.String())
	}
}

func TestSetAttrReadOnly(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	err := interp.SetAttr(interp.Int(1), "x", interp.None())
	var perr *plume.Error
	if !errors.As(err, &perr) || perr.Kind != plume.KindAttributeError {
		t.Errorf("expected AttributeError, got %v", err)
	}
	if !interp.HasAttr(interp.ObjectClass(), "__new__") {
		t.Error("expected object to have __new__")
	}
}

func TestRecursionLimit(t *testing.T) {
	interp := plume.NewWithConfig(plume.Config{RecursionLimit: 5})
	defer interp.Close()

	var loop *plume.Obj
	loop = interp.NewBuiltin("loop", func(i *plume.Interp, args []*plume.Obj) (*plume.Obj, error) {
		return i.Call(loop)
	})
	_, err := interp.Call(loop)
	if !errors.Is(err, &plume.Error{Kind: plume.KindRecursionError}) {
		t.Errorf("expected RecursionError, got %v", err)
	}

	// The depth counter unwinds after the failure.
	if _, err := interp.Eval("1"); err != nil {
		t.Errorf("Eval after recursion error failed: %v", err)
	}
}

func TestCheckArgs(t *testing.T) {
	interp := plume.New()
	defer interp.Close()
	intClass, err := interp.Eval("int")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}

	if err := interp.CheckArgs("f", []*plume.Obj{interp.Int(1), interp.None()}, intClass, nil); err != nil {
		t.Errorf("expected success, got %v", err)
	}
	err = interp.CheckArgs("f", []*plume.Obj{interp.Str("x")}, intClass)
	if err == nil || err.Error() != "TypeError: f() argument 1 must be int, not str" {
		t.Errorf("unexpected error %v", err)
	}
	err = interp.CheckArgs("f", nil, nil)
	if err == nil || err.Error() != "TypeError: f() takes exactly 1 argument (0 given)" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestModules(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	inits := 0
	interp.RegisterModule("greeting", func(i *plume.Interp) *plume.Obj {
		inits++
		return i.NewModule("greeting", map[string]*plume.Obj{
			"text":    i.Str("hello"),
			"_hidden": i.None(),
		})
	})

	result, err := interp.Eval("import greeting\nfrom greeting import text\nimport greeting\n[text, dir(greeting), greeting.__name__]")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if got := plume.Repr(result); got != "['hello', ['text'], 'greeting']" {
		t.Errorf("unexpected result %s", got)
	}
	if inits != 1 {
		t.Errorf("expected one initialization, got %d", inits)
	}

	names := interp.Modules()
	if strings.Join(names, ",") != "_weakref,gc,greeting" {
		t.Errorf("unexpected module list %v", names)
	}

	_, err = interp.Import("missing")
	if !errors.Is(err, &plume.Error{Kind: plume.KindImportError}) {
		t.Errorf("expected ImportError, got %v", err)
	}
}

func TestCollectCycles(t *testing.T) {
	interp := plume.NewWithConfig(plume.Config{CollectCycles: 3})
	defer interp.Close()

	if n := interp.Collect(); n != 3 {
		t.Errorf("expected 3 cycles, got %d", n)
	}
	result, err := interp.Eval("import gc\ngc.collect()")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if result.String() != "3" {
		t.Errorf("expected '3', got %q", result.String())
	}
}

func TestErrorFormatting(t *testing.T) {
	err := &plume.Error{Kind: plume.KindNameError, Detail: "name 'x' is not defined", Line: 3}
	if err.Error() != "line 3: NameError: name 'x' is not defined" {
		t.Errorf("unexpected text %q", err.Error())
	}

	wrapped := &plume.Error{Kind: plume.KindTypeError, Cause: plume.ErrArity}
	if wrapped.Error() != "TypeError: wrong number of arguments" {
		t.Errorf("unexpected text %q", wrapped.Error())
	}
	if !errors.Is(wrapped, plume.ErrArity) {
		t.Error("expected wrapped error to match ErrArity")
	}
	if errors.Is(wrapped, &plume.Error{Kind: plume.KindValueError}) {
		t.Error("expected kinds to differ")
	}
}

func TestConfig(t *testing.T) {
	cfg, err := plume.ParseConfig([]byte("recursion_limit: 50\nlog_level: debug\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.RecursionLimit != 50 {
		t.Errorf("expected 50, got %d", cfg.RecursionLimit)
	}
	if cfg.CollectCycles != plume.DefaultConfig().CollectCycles {
		t.Errorf("expected default collect cycles, got %d", cfg.CollectCycles)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected 'debug', got %q", cfg.LogLevel)
	}

	if _, err := plume.ParseConfig([]byte("recursion_limit: [")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := plume.LoadConfig("testdata/does-not-exist.yaml"); err == nil {
		t.Error("expected read error")
	}
}

func TestSetLoggerNil(t *testing.T) {
	plume.Logger()
	plume.SetLogger(nil)
	defer plume.SetLogger(nil)

	if plume.Logger() == nil {
		t.Fatal("expected a no-op logger, got nil")
	}
	interp := plume.New()
	defer interp.Close()
	if _, err := interp.Eval("import _weakref"); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
}

func TestExec(t *testing.T) {
	interp := plume.New()
	defer interp.Close()

	globals := plume.NewDict()
	globals.Set("x", interp.Int(2))
	locals := plume.NewDict()

	if err := interp.Exec("y = x + 1", globals, locals); err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if y, ok := locals.Get("y"); !ok || y.String() != "3" {
		t.Errorf("expected y = 3 in locals, got %v", y)
	}
	if _, ok := globals.Get("y"); ok {
		t.Error("expected y to stay out of globals")
	}
	if _, ok := interp.Var("y"); ok {
		t.Error("expected y to stay out of the interpreter globals")
	}

	if err := interp.Exec("z = 1", nil, nil); err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if _, ok := interp.Var("z"); !ok {
		t.Error("expected z in the interpreter globals")
	}

	err := interp.Exec("x", plume.NewDict(), nil)
	if !errors.Is(err, &plume.Error{Kind: plume.KindNameError}) {
		t.Errorf("expected NameError, got %v", err)
	}

	// namespaces are restored after a failure
	if _, err := interp.Eval("z"); err != nil {
		t.Errorf("expected z after failed Exec, got %v", err)
	}

	_, err = interp.Eval("exec('', 1)")
	if !errors.Is(err, &plume.Error{Kind: plume.KindTypeError}) {
		t.Errorf("expected TypeError, got %v", err)
	}
	_, err = interp.Eval("exec('', None, None, None)")
	if !errors.Is(err, plume.ErrArity) {
		t.Errorf("expected arity error, got %v", err)
	}
}
