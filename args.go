package plume

// CheckArgs validates the positional arguments of a host function.
//
// There must be exactly len(required) arguments. A non-nil required[n] is
// the class argument n must be an instance of; nil accepts any object.
//
//	func refCall(i *plume.Interp, args []*plume.Obj) (*plume.Obj, error) {
//	    if err := i.CheckArgs("ref.__call__", args, refClass); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
//
// A count mismatch returns a TypeError wrapping [ErrArity].
func (i *Interp) CheckArgs(fn string, args []*Obj, required ...*Obj) error {
	if len(args) != len(required) {
		return arityError(fn, len(required), len(args))
	}
	for n, want := range required {
		if want == nil || IsInstance(args[n], want) {
			continue
		}
		return Errorf(KindTypeError, "%s() argument %d must be %s, not %s",
			fn, n+1, want.className(), args[n].Type())
	}
	return nil
}
