package value

import (
	"math/big"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindNumber:       "number",
		KindInterval:     "interval",
		KindAlternatives: "alternatives",
		KindUnparseable:  "unparseable",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestNumberIsImmutable(t *testing.T) {
	src := big.NewRat(2, 3)
	n := NewRatio(src)

	src.SetInt64(5)
	if n.Cmp(big.NewRat(2, 3)) != 0 {
		t.Fatalf("constructor kept a reference to its argument: %s", n)
	}

	r := n.Rat()
	r.SetInt64(7)
	if n.Cmp(big.NewRat(2, 3)) != 0 {
		t.Fatalf("Rat exposed internal state: %s", n)
	}
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{NewLiteral(big.NewRat(3, 1)), "3"},
		{NewLiteral(big.NewRat(33, 50)), "0.66"},
		{NewLiteral(big.NewRat(-1, 8)), "-0.125"},
		{NewRatio(big.NewRat(2, 3)), "2/3"},
		{NewRatio(big.NewRat(22, 2)), "11"},
		{Number{}, "0"},
	}
	for _, tt := range tests {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNumberOrigin(t *testing.T) {
	if !NewLiteral(big.NewRat(1, 2)).Exact() {
		t.Error("literal should be exact")
	}
	if NewRatio(big.NewRat(1, 2)).Exact() {
		t.Error("ratio should not be exact")
	}
	if !NewLiteral(big.NewRat(1, 2)).Equal(NewRatio(big.NewRat(2, 4))) {
		t.Error("equal values with different origins should be Equal")
	}
}

func TestAlternatives(t *testing.T) {
	a := NewAlternatives(NewLiteral(big.NewRat(1, 1)), Unparseable{}, NewLiteral(big.NewRat(2, 1)))

	calls := 0
	hit := a.Any(func(v Value) bool {
		calls++
		return v.Kind() == KindUnparseable
	})
	if !hit || calls != 2 {
		t.Errorf("Any = %v after %d calls, want true after 2", hit, calls)
	}

	items := a.Items()
	items[0] = Unparseable{}
	if a.Items()[0].Kind() != KindNumber {
		t.Error("Items exposed internal slice")
	}
	if a.String() != "1;<unparseable>;2" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestIntervalString(t *testing.T) {
	iv := Interval{
		Lower:          NewRatio(big.NewRat(1, 3)),
		Upper:          NewLiteral(big.NewRat(3, 4)),
		LowerInclusive: true,
	}
	if got := iv.String(); got != "[1/3,0.75)" {
		t.Errorf("String() = %q", got)
	}
}

func TestIsUnparseable(t *testing.T) {
	if !IsUnparseable(nil) || !IsUnparseable(Unparseable{}) {
		t.Error("nil and Unparseable are unparseable")
	}
	if IsUnparseable(Number{}) {
		t.Error("zero Number is a number")
	}
}
