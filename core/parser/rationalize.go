package parser

import (
	"math"
	"math/big"
)

// mantissaBits is the float64 significand width, including the hidden bit
const mantissaBits = 53

// Rationalize returns the simplest fraction whose float64 value is f.
//
// The search interval is f plus or minus half an ulp, so the result is
// the fraction with the smallest denominator that still rounds to f:
// 2/0.3 (6.666666666666667) becomes 20/3 and 0.333 becomes 333/1000.
// It returns false for NaN and infinities.
func Rationalize(f float64) (*big.Rat, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	if f == 0 {
		return new(big.Rat), true
	}

	neg := f < 0
	if neg {
		f = -f
	}

	frac, exp := math.Frexp(f)
	mant := new(big.Int).SetUint64(uint64(math.Ldexp(frac, mantissaBits)))
	exp -= mantissaBits

	var r *big.Rat
	if exp >= 0 {
		r = new(big.Rat).SetInt(mant.Lsh(mant, uint(exp)))
	} else {
		den := new(big.Int).Lsh(big.NewInt(1), uint(1-exp))
		twice := new(big.Int).Lsh(mant, 1)
		lo := new(big.Rat).SetFrac(new(big.Int).Sub(twice, big.NewInt(1)), den)
		hi := new(big.Rat).SetFrac(new(big.Int).Add(twice, big.NewInt(1)), den)
		r = simplestBetween(lo, hi)
	}

	if neg {
		r.Neg(r)
	}
	return r, true
}

// simplestBetween walks the continued-fraction expansion of lo and hi
// (0 < lo < hi) until they diverge, and returns the convergent with the
// smallest denominator in between.
func simplestBetween(lo, hi *big.Rat) *big.Rat {
	a := new(big.Rat).Set(lo)
	b := new(big.Rat).Set(hi)

	p0, p1 := big.NewInt(0), big.NewInt(1)
	q0, q1 := big.NewInt(1), big.NewInt(0)

	for {
		c := ceil(a)
		if new(big.Rat).SetInt(c).Cmp(b) < 0 {
			p := new(big.Int).Add(new(big.Int).Mul(c, p1), p0)
			q := new(big.Int).Add(new(big.Int).Mul(c, q1), q0)
			return new(big.Rat).SetFrac(p, q)
		}

		k := new(big.Int).Sub(c, big.NewInt(1))
		kr := new(big.Rat).SetInt(k)

		p2 := new(big.Int).Add(new(big.Int).Mul(k, p1), p0)
		q2 := new(big.Int).Add(new(big.Int).Mul(k, q1), q0)

		t := new(big.Rat).Inv(new(big.Rat).Sub(b, kr))
		b = new(big.Rat).Inv(new(big.Rat).Sub(a, kr))
		a = t

		p0, p1 = p1, p2
		q0, q1 = q1, q2
	}
}

func ceil(r *big.Rat) *big.Int {
	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}
