package plume

import "strings"

// StrType is the internal representation for string values.
type StrType string

func (t StrType) Name() string           { return "str" }
func (t StrType) IntoBool() (bool, bool) { return t != "", true }

// Repr quotes the string with single quotes unless it contains one and no
// double quote.
func (t StrType) Repr(*Obj) string {
	s := string(t)
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}
	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == q || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}
