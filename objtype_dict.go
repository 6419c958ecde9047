package plume

import "strings"

// DictType is the internal representation for string-keyed dictionaries.
// It also backs module namespaces, class bodies and instance attributes.
// Order records insertion order so listings are stable.
type DictType struct {
	Items map[string]*Obj
	Order []string
}

// NewDict returns an empty dictionary.
func NewDict() *DictType {
	return &DictType{Items: make(map[string]*Obj)}
}

func (t *DictType) Name() string { return "dict" }

func (t *DictType) IntoBool() (bool, bool) { return len(t.Items) > 0, true }

// Get returns the value stored under key.
func (t *DictType) Get(key string) (*Obj, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.Items[key]
	return v, ok
}

// Set stores v under key, appending key to the order if it is new.
func (t *DictType) Set(key string, v *Obj) {
	if _, exists := t.Items[key]; !exists {
		t.Order = append(t.Order, key)
	}
	t.Items[key] = v
}

// Delete removes key. It reports whether the key was present.
func (t *DictType) Delete(key string) bool {
	if t == nil {
		return false
	}
	if _, ok := t.Items[key]; !ok {
		return false
	}
	delete(t.Items, key)
	for i, k := range t.Order {
		if k == key {
			t.Order = append(t.Order[:i], t.Order[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (t *DictType) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, len(t.Order))
	copy(keys, t.Order)
	return keys
}

func (t *DictType) Repr(*Obj) string {
	var result strings.Builder
	result.WriteByte('{')
	for i, key := range t.Order {
		if i > 0 {
			result.WriteString(", ")
		}
		result.WriteString(StrType(key).Repr(nil))
		result.WriteString(": ")
		result.WriteString(Repr(t.Items[key]))
	}
	result.WriteByte('}')
	return result.String()
}
