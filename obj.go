package plume

import "fmt"

// Obj is a runtime object.
//
// Every object has a class and at most one payload. The payload is the
// internal representation the host uses to give an object meaning (an int,
// a module namespace, a weak reference, ...). Plain instances of object
// carry no payload and keep their attributes in attrs.
//
// A *Obj is a strong handle: while any *Obj pointing at an object is
// reachable, the Go collector does not reclaim it.
type Obj struct {
	class   *Obj
	payload Payload
	attrs   *DictType // instance attributes (nil until first assignment)
}

// Payload is one variant of the internal representations an object may carry.
type Payload interface {
	// Name returns the payload kind (e.g., "int", "weakref").
	Name() string
}

// IntoInt can convert directly to int64.
type IntoInt interface {
	IntoInt() (int64, bool)
}

// IntoBool reports the truth value of a payload.
type IntoBool interface {
	IntoBool() (bool, bool)
}

// IntoList can convert directly to a list of objects.
type IntoList interface {
	IntoList() ([]*Obj, bool)
}

// Representer renders the payload for repr(). self is the object that carries it.
type Representer interface {
	Repr(self *Obj) string
}

// Class returns the class object of o.
func (o *Obj) Class() *Obj {
	if o == nil {
		return nil
	}
	return o.class
}

// Payload returns the internal representation of the object.
// Returns nil for plain instances.
//
// Use a type assertion to access a specific variant:
//
//	if m, ok := obj.Payload().(*plume.ModuleType); ok {
//	    // use m
//	}
func (o *Obj) Payload() Payload {
	if o == nil {
		return nil
	}
	return o.payload
}

// Type returns the name of the object's class.
func (o *Obj) Type() string {
	if o == nil || o.class == nil {
		return "object"
	}
	if c, ok := o.class.payload.(*ClassType); ok {
		return c.ClassName
	}
	return "object"
}

// String returns the str() form of the object: the raw text for strings,
// the repr for everything else.
func (o *Obj) String() string {
	if s, ok := o.Payload().(StrType); ok {
		return string(s)
	}
	return Repr(o)
}

// Truth returns the truth value of the object.
// Objects without a boolean-capable payload are true.
func (o *Obj) Truth() bool {
	if o == nil {
		return false
	}
	if c, ok := o.payload.(IntoBool); ok {
		if v, ok := c.IntoBool(); ok {
			return v
		}
	}
	return true
}

// Int returns the integer value of the object.
func (o *Obj) Int() (int64, error) {
	return AsInt(o)
}

// List returns the elements of a list object.
func (o *Obj) List() ([]*Obj, error) {
	return AsList(o)
}

// Attrs returns the instance attribute dictionary, or nil if none was assigned.
func (o *Obj) Attrs() *DictType {
	if o == nil {
		return nil
	}
	return o.attrs
}

// AsInt converts o to int64.
func AsInt(o *Obj) (int64, error) {
	if c, ok := o.Payload().(IntoInt); ok {
		if v, ok := c.IntoInt(); ok {
			return v, nil
		}
	}
	return 0, Errorf(KindTypeError, "'%s' object cannot be interpreted as an integer", o.Type())
}

// AsStr returns the text of a str object.
func AsStr(o *Obj) (string, error) {
	if s, ok := o.Payload().(StrType); ok {
		return string(s), nil
	}
	return "", Errorf(KindTypeError, "expected str, got '%s'", o.Type())
}

// AsList returns the elements of o if it has a list-compatible payload.
func AsList(o *Obj) ([]*Obj, error) {
	if c, ok := o.Payload().(IntoList); ok {
		if v, ok := c.IntoList(); ok {
			return v, nil
		}
	}
	return nil, Errorf(KindTypeError, "'%s' object is not a list", o.Type())
}

// Repr returns the repr() form of o.
func Repr(o *Obj) string {
	if o == nil {
		return "<nil>"
	}
	if r, ok := o.payload.(Representer); ok {
		return r.Repr(o)
	}
	return fmt.Sprintf("<%s object at %p>", o.Type(), o)
}
