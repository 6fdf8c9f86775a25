package value

import "strings"

// Interval is a range of acceptable answers with independently
// inclusive or exclusive ends. Lower <= Upper is not enforced.
type Interval struct {
	Lower          Number
	Upper          Number
	LowerInclusive bool
	UpperInclusive bool
}

// Kind returns KindInterval
func (iv Interval) Kind() Kind { return KindInterval }

func (iv Interval) sealed() {}

// String renders the interval in bracket notation
func (iv Interval) String() string {
	var b strings.Builder
	if iv.LowerInclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(iv.Lower.String())
	b.WriteByte(',')
	b.WriteString(iv.Upper.String())
	if iv.UpperInclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}
