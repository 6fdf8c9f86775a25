package grading

import (
	"math/big"

	"gridin/core/tolerance"
	"gridin/core/value"
)

// Covers reports whether candidate is an acceptable answer for the range.
//
// An inclusive end accepts anything that rounds or truncates to it, so
// .667 is inside (1/3,2/3]. An exclusive end rejects the bound itself
// but applies no tolerance, so .667 is outside (1/3,2/3) while .666,
// which is strictly below 2/3, is inside.
func Covers(iv value.Interval, candidate *big.Rat) bool {
	if iv.LowerInclusive && tolerance.CloseEnough(iv.Lower, candidate) {
		return true
	}
	if iv.UpperInclusive && tolerance.CloseEnough(iv.Upper, candidate) {
		return true
	}

	return iv.Lower.Cmp(candidate) < 0 && iv.Upper.Cmp(candidate) > 0
}
