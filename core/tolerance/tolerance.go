// Package tolerance implements the rounding rules used when a response is
// compared against a fraction. A grid-in holds four characters, so the
// number of decimal places a student can enter depends on where the
// decimal point falls; the rules here keep the accepted precision roughly
// constant across magnitudes.
package tolerance

import (
	"math/big"

	"github.com/shopspring/decimal"

	"gridin/core/value"
)

var (
	one     = big.NewRat(1, 1)
	ten     = big.NewRat(10, 1)
	hundred = big.NewRat(100, 1)
)

// DecimalPlaces returns how many decimal places a response of this
// magnitude is compared to
func DecimalPlaces(r *big.Rat) int32 {
	switch {
	case r.Sign() < 0:
		return 3
	case r.Cmp(one) < 0:
		return 3
	case r.Cmp(ten) < 0:
		return 2
	case r.Cmp(hundred) < 0:
		return 1
	default:
		return 3
	}
}

// Round rounds r to the given places, halves away from zero
func Round(r *big.Rat, places int32) decimal.Decimal {
	num, den := split(r)
	return num.DivRound(den, places)
}

// Truncate cuts r to the given places, toward zero
func Truncate(r *big.Rat, places int32) decimal.Decimal {
	num, den := split(r)
	q, _ := num.QuoRem(den, places)
	return q
}

// CloseEnough reports whether response, rounded to the places its
// magnitude allows, matches key.
//
// A fraction key accepts either the rounded or the truncated expansion,
// since students commonly truncate repeating decimals: 2/3 accepts .666
// and .667. A literal key (an interval bound such as 8.5) must equal the
// rounded response exactly.
func CloseEnough(key value.Number, response *big.Rat) bool {
	places := DecimalPlaces(response)
	got := Round(response, places)

	k := key.Rat()
	if key.Exact() {
		return got.Rat().Cmp(k) == 0
	}
	return got.Equal(Round(k, places)) || got.Equal(Truncate(k, places))
}

func split(r *big.Rat) (decimal.Decimal, decimal.Decimal) {
	return decimal.NewFromBigInt(r.Num(), 0), decimal.NewFromBigInt(r.Denom(), 0)
}
