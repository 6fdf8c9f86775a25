// Package display renders grid-in answers for people to read.
package display

import (
	"fmt"
	"strings"

	"gridin/core/parser"
	"gridin/core/value"
)

const (
	lessThan      = "<"
	lessThanEqual = "≤"
)

// Display renders an answer key as written.
//
//	"2/3"          -> "2/3"
//	"[1,5)"        -> "1 ≤ x < 5"
//	"6;9;12"       -> "6, 9, or 12"
//
// Bounds and plain numbers keep their original text.
func Display(text string) string {
	if strings.Contains(text, ";") {
		segments := parser.SplitAlternatives(text)
		items := make([]string, len(segments))
		for i, s := range segments {
			items[i] = Display(s)
		}
		return List(items)
	}

	if iv, ok := parser.SplitInterval(text); ok {
		return inequality(iv.Lower, iv.Upper, iv.LowerInclusive, iv.UpperInclusive)
	}

	return text
}

// Value renders a parsed value canonically, with numbers reduced
func Value(v value.Value) string {
	switch v := v.(type) {
	case value.Number:
		return v.String()
	case value.Interval:
		return inequality(v.Lower.String(), v.Upper.String(), v.LowerInclusive, v.UpperInclusive)
	case value.Alternatives:
		items := v.Items()
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = Value(item)
		}
		return List(out)
	default:
		return ""
	}
}

// List joins items as an English list: "a", "a or b", "a, b, or c"
func List(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		last := len(items) - 1
		return strings.Join(items[:last], ", ") + ", or " + items[last]
	}
}

func inequality(lower, upper string, lowerInclusive, upperInclusive bool) string {
	return fmt.Sprintf("%s %s x %s %s", lower, operator(lowerInclusive), operator(upperInclusive), upper)
}

func operator(inclusive bool) string {
	if inclusive {
		return lessThanEqual
	}
	return lessThan
}
