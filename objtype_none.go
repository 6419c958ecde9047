package plume

// NoneType is the payload of the interpreter's None singleton.
type NoneType struct{}

func (NoneType) Name() string           { return "NoneType" }
func (NoneType) Repr(*Obj) string       { return "None" }
func (NoneType) IntoBool() (bool, bool) { return false, true }
