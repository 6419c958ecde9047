package plume

import "strconv"

// IntType is the internal representation for integer values.
type IntType int64

func (t IntType) Name() string           { return "int" }
func (t IntType) Repr(*Obj) string       { return strconv.FormatInt(int64(t), 10) }
func (t IntType) IntoInt() (int64, bool) { return int64(t), true }
func (t IntType) IntoBool() (bool, bool) { return t != 0, true }

// BoolType is the internal representation for True and False.
type BoolType bool

func (t BoolType) Name() string           { return "bool" }
func (t BoolType) IntoBool() (bool, bool) { return bool(t), true }

func (t BoolType) IntoInt() (int64, bool) {
	if t {
		return 1, true
	}
	return 0, true
}

func (t BoolType) Repr(*Obj) string {
	if t {
		return "True"
	}
	return "False"
}
