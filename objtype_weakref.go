package plume

import (
	"fmt"
	"weak"
)

// WeakRefType is the internal representation for weak references.
//
// It holds a single observer of the referent. The observer is installed at
// construction and never replaced; copying the payload copies the observer
// with identical liveness.
type WeakRefType struct {
	referent weak.Pointer[Obj]
}

func (t WeakRefType) Name() string { return "weakref" }

// Value promotes the observer. It returns nil once the referent is gone.
func (t WeakRefType) Value() *Obj { return t.referent.Value() }

func (t WeakRefType) Repr(self *Obj) string {
	if o := t.referent.Value(); o != nil {
		return fmt.Sprintf("<weakref at %p; to '%s' at %p>", self, o.Type(), o)
	}
	return fmt.Sprintf("<weakref at %p; dead>", self)
}
