package parser

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// literalPattern matches the numeric prefix of a plain grid-in:
// digits with an optional fraction part, or a bare fraction part.
var literalPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)`)

// scanLiteral reads the leading decimal literal of s, skipping leading
// whitespace and ignoring whatever follows it. Text without a literal
// reads as zero; the caller's zero rule decides whether that is meaningful.
func scanLiteral(s string) *big.Rat {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	lit := literalPattern.FindString(s)
	if lit == "" {
		return new(big.Rat)
	}

	d, err := decimal.NewFromString(lit)
	if err != nil {
		return new(big.Rat)
	}
	return d.Rat()
}
