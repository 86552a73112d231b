package aura

import (
	"fmt"
	"strings"
)

// ValueKind identifies which variant a Value holds.
type ValueKind int8

const (
	KindNull ValueKind = iota
	KindNumber
	KindBool
	KindString
	KindMap
)

// Value is a small tagged union carried by effect instances and produced
// by reducers. The zero Value is the null value.
type Value struct {
	kind ValueKind
	num  float64
	b    bool
	str  string
	m    *Fields
}

// Number returns a numeric Value.
func Number(v float64) Value { return Value{kind: KindNumber, num: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Map returns a Value wrapping a nested ordered mapping.
func Map(f *Fields) Value { return Value{kind: KindMap, m: f} }

// Kind returns the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Num returns the numeric payload, or 0 for other kinds.
func (v Value) Num() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.num
}

// Bool returns the boolean payload, or false for other kinds.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		return false
	}
	return v.b
}

// Str returns the string payload, or "" for other kinds.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Map returns the nested mapping, or nil for other kinds.
func (v Value) Map() *Fields {
	if v.kind != KindMap {
		return nil
	}
	return v.m
}

// String implements fmt.Stringer for logging.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindString:
		return v.str
	case KindMap:
		return v.m.String()
	default:
		return "null"
	}
}

// Fields is an ordered string→Value mapping. Iteration and folding follow
// insertion order; overwriting an existing key keeps its original position.
type Fields struct {
	keys []string
	vals map[string]Value
}

// NewFields creates an empty Fields mapping.
func NewFields() *Fields {
	return &Fields{vals: make(map[string]Value, 4)}
}

// Set inserts or overwrites a key. Returns f for chaining.
func (f *Fields) Set(key string, v Value) *Fields {
	if _, ok := f.vals[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.vals[key] = v
	return f
}

// Get returns the value for key and whether it is present.
func (f *Fields) Get(key string) (Value, bool) {
	if f == nil {
		return Value{}, false
	}
	v, ok := f.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (f *Fields) Has(key string) bool {
	if f == nil {
		return false
	}
	_, ok := f.vals[key]
	return ok
}

// Len returns the number of keys.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Keys returns the keys in insertion order.
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Range calls fn for each key in insertion order until fn returns false.
func (f *Fields) Range(fn func(key string, v Value) bool) {
	if f == nil {
		return
	}
	for _, k := range f.keys {
		if !fn(k, f.vals[k]) {
			return
		}
	}
}

// Clone returns a shallow copy preserving key order.
func (f *Fields) Clone() *Fields {
	out := NewFields()
	if f == nil {
		return out
	}
	for _, k := range f.keys {
		out.Set(k, f.vals[k])
	}
	return out
}

// String implements fmt.Stringer for logging.
func (f *Fields) String() string {
	if f == nil {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", k, f.vals[k])
	}
	sb.WriteByte('}')
	return sb.String()
}
