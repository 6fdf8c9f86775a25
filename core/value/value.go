// Package value defines the canonical in-memory form of a parsed grid-in.
// A Value is one of Number, Interval, Alternatives or Unparseable.
// Values are immutable and carry no identity beyond their content.
package value

// Kind identifies the variant held by a Value
type Kind int

const (
	KindUnparseable Kind = iota
	KindNumber
	KindInterval
	KindAlternatives
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindInterval:
		return "interval"
	case KindAlternatives:
		return "alternatives"
	default:
		return "unparseable"
	}
}

// Value is a parsed grid-in. The set of implementations is closed:
// only the types in this package satisfy it.
type Value interface {
	Kind() Kind
	String() string

	sealed()
}

// Unparseable marks malformed or semantically empty input.
// It never compares equal to anything, including itself.
type Unparseable struct{}

// Kind returns KindUnparseable
func (Unparseable) Kind() Kind { return KindUnparseable }

// String returns a placeholder for logs
func (Unparseable) String() string { return "<unparseable>" }

func (Unparseable) sealed() {}

// IsUnparseable reports whether v is missing or Unparseable
func IsUnparseable(v Value) bool {
	return v == nil || v.Kind() == KindUnparseable
}
