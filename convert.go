package plume

import (
	"fmt"
	"reflect"
)

var (
	objType   = reflect.TypeOf((*Obj)(nil))
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// Register binds a Go function as a builtin visible to every script.
//
// Supported parameter types: string, int, int64, bool, *Obj, and a trailing
// variadic ...*Obj. Supported results: nothing, one value, or a value
// followed by an error. Go values convert to objects the same way.
//
//	interp.Register("double", func(n int) int { return n * 2 })
//	interp.Register("greet", func(name string) string { return "hello " + name })
//	interp.Register("first", func(items ...*plume.Obj) (*plume.Obj, error) { ... })
func (i *Interp) Register(name string, fn any) {
	i.builtins.Set(name, i.NewFunc(name, fn))
}

// NewFunc wraps a Go function as a callable object without binding it to a name.
func (i *Interp) NewFunc(name string, fn any) *Obj {
	return i.NewBuiltin(name, wrapFunc(name, fn))
}

// wrapFunc adapts a Go function to the BuiltinFunc calling convention.
func wrapFunc(name string, fn any) BuiltinFunc {
	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()

	if fnType.Kind() != reflect.Func {
		panic(fmt.Sprintf("Register: expected function, got %T", fn))
	}

	return func(i *Interp, args []*Obj) (*Obj, error) {
		numIn := fnType.NumIn()
		isVariadic := fnType.IsVariadic()

		if isVariadic {
			if len(args) < numIn-1 {
				return nil, &Error{
					Kind:   KindTypeError,
					Detail: fmt.Sprintf("%s() takes at least %d arguments (%d given)", name, numIn-1, len(args)),
					Cause:  ErrArity,
				}
			}
		} else if len(args) != numIn {
			return nil, arityError(name, numIn, len(args))
		}

		callArgs := make([]reflect.Value, len(args))
		for j, arg := range args {
			var paramType reflect.Type
			if isVariadic && j >= numIn-1 {
				paramType = fnType.In(numIn - 1).Elem()
			} else {
				paramType = fnType.In(j)
			}
			converted, err := convertArg(arg, paramType)
			if err != nil {
				return nil, Errorf(KindTypeError, "%s() argument %d: %v", name, j+1, err)
			}
			callArgs[j] = converted
		}

		return processResults(i, fnVal.Call(callArgs), fnType)
	}
}

// convertArg converts an object to a Go value of the target type.
func convertArg(arg *Obj, targetType reflect.Type) (reflect.Value, error) {
	if targetType == objType {
		return reflect.ValueOf(arg), nil
	}
	switch targetType.Kind() {
	case reflect.String:
		s, err := AsStr(arg)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(s), nil

	case reflect.Int:
		v, err := AsInt(arg)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(int(v)), nil

	case reflect.Int64:
		v, err := AsInt(arg)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(v), nil

	case reflect.Bool:
		return reflect.ValueOf(arg.Truth()), nil

	default:
		return reflect.Value{}, fmt.Errorf("unsupported parameter type: %v", targetType)
	}
}

// processResults handles the return values from a function call.
func processResults(i *Interp, results []reflect.Value, fnType reflect.Type) (*Obj, error) {
	if n := fnType.NumOut(); n > 0 && fnType.Out(n-1).Implements(errorType) {
		last := results[len(results)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		results = results[:len(results)-1]
	}
	if len(results) == 0 {
		return i.none, nil
	}
	return i.convertResult(results[0]), nil
}

// convertResult converts a Go value to an object.
func (i *Interp) convertResult(result reflect.Value) *Obj {
	if !result.IsValid() {
		return i.none
	}
	if result.Type() == objType {
		if result.IsNil() {
			return i.none
		}
		return result.Interface().(*Obj)
	}

	switch result.Kind() {
	case reflect.String:
		return i.Str(result.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return i.Int(result.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return i.Int(int64(result.Uint()))

	case reflect.Bool:
		return i.Bool(result.Bool())

	case reflect.Slice:
		items := make([]*Obj, result.Len())
		for j := range items {
			items[j] = i.convertResult(result.Index(j))
		}
		return i.List(items...)

	case reflect.Ptr, reflect.Interface:
		if result.IsNil() {
			return i.none
		}
		return i.Str(fmt.Sprintf("%v", result.Interface()))

	default:
		return i.Str(fmt.Sprintf("%v", result.Interface()))
	}
}
