package value

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Origin records how a Number was written, which decides how it is compared.
type Origin int

const (
	// OriginLiteral is an integer or decimal literal; compared exactly
	OriginLiteral Origin = iota

	// OriginRatio is a fraction; compared with rounding/truncation tolerance
	OriginRatio
)

// String returns the origin name
func (o Origin) String() string {
	if o == OriginRatio {
		return "ratio"
	}
	return "literal"
}

// Number is an exact rational together with its Origin.
// The zero Number is a literal zero.
type Number struct {
	rat    *big.Rat
	origin Origin
}

// NewLiteral creates a Number that came from an integer or decimal literal.
// The rational is copied.
func NewLiteral(r *big.Rat) Number {
	return Number{rat: new(big.Rat).Set(r), origin: OriginLiteral}
}

// NewRatio creates a Number that came from a fraction.
// The rational is copied.
func NewRatio(r *big.Rat) Number {
	return Number{rat: new(big.Rat).Set(r), origin: OriginRatio}
}

// Kind returns KindNumber
func (n Number) Kind() Kind { return KindNumber }

func (n Number) sealed() {}

// Origin returns how the number was written
func (n Number) Origin() Origin { return n.origin }

// Exact reports whether the number must be matched exactly
func (n Number) Exact() bool { return n.origin == OriginLiteral }

// Rat returns a copy of the rational value
func (n Number) Rat() *big.Rat {
	return new(big.Rat).Set(n.r())
}

// Cmp compares the number with x
func (n Number) Cmp(x *big.Rat) int {
	return n.r().Cmp(x)
}

// Equal reports numeric equality, ignoring origin
func (n Number) Equal(other Number) bool {
	return n.r().Cmp(other.r()) == 0
}

// IsZero reports whether the number is zero
func (n Number) IsZero() bool {
	return n.r().Sign() == 0
}

// IsInt reports whether the number is an integer
func (n Number) IsInt() bool {
	return n.r().IsInt()
}

// Float64 returns the nearest float64 (display and float arithmetic only)
func (n Number) Float64() float64 {
	f, _ := n.r().Float64()
	return f
}

// String renders integers plainly, literals as decimals and ratios as p/q
func (n Number) String() string {
	r := n.r()
	if r.IsInt() {
		return r.Num().String()
	}
	if n.origin == OriginLiteral {
		num := decimal.NewFromBigInt(r.Num(), 0)
		den := decimal.NewFromBigInt(r.Denom(), 0)
		return num.Div(den).String()
	}
	return r.String()
}

func (n Number) r() *big.Rat {
	if n.rat == nil {
		return new(big.Rat)
	}
	return n.rat
}
