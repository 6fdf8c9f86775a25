package value

import "strings"

// Alternatives is a set of independently acceptable answers.
// Order is kept for display only.
type Alternatives struct {
	items []Value
}

// NewAlternatives creates an Alternatives value. The slice is copied.
func NewAlternatives(items ...Value) Alternatives {
	return Alternatives{items: append([]Value(nil), items...)}
}

// Kind returns KindAlternatives
func (a Alternatives) Kind() Kind { return KindAlternatives }

func (a Alternatives) sealed() {}

// Items returns a copy of the members in their original order
func (a Alternatives) Items() []Value {
	return append([]Value(nil), a.items...)
}

// Len returns the number of members
func (a Alternatives) Len() int { return len(a.items) }

// Any reports whether fn holds for some member, stopping at the first hit
func (a Alternatives) Any(fn func(Value) bool) bool {
	for _, v := range a.items {
		if fn(v) {
			return true
		}
	}
	return false
}

// String joins the members with semicolons
func (a Alternatives) String() string {
	parts := make([]string, len(a.items))
	for i, v := range a.items {
		parts[i] = v.String()
	}
	return strings.Join(parts, ";")
}
