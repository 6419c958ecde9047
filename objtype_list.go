package plume

import "strings"

// ListType is the internal representation for list values.
type ListType []*Obj

func (t ListType) Name() string             { return "list" }
func (t ListType) IntoList() ([]*Obj, bool) { return t, true }
func (t ListType) IntoBool() (bool, bool)   { return len(t) > 0, true }

func (t ListType) Repr(*Obj) string {
	var result strings.Builder
	result.WriteByte('[')
	for i, item := range t {
		if i > 0 {
			result.WriteString(", ")
		}
		result.WriteString(Repr(item))
	}
	result.WriteByte(']')
	return result.String()
}
