package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := Fixture("cases must be a list", stderrors.New("got string"))
	want := "[FIXTURE_ERROR] cases must be a list: got string"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if got := Input("key is required").Error(); got != "[INPUT_ERROR] key is required" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsTypeFollowsWrapping(t *testing.T) {
	inner := Storage("query failed", stderrors.New("connection reset"))
	outer := fmt.Errorf("case 12: %w", Wrap(TypeConformance, "engine error", inner))

	if !IsType(outer, TypeConformance) {
		t.Error("expected conformance error")
	}
	if !IsType(outer, TypeStorage) {
		t.Error("expected wrapped storage error")
	}
	if IsType(outer, TypeConfig) {
		t.Error("unexpected config error")
	}
	if TypeOf(outer) != TypeConformance {
		t.Errorf("TypeOf = %s", TypeOf(outer))
	}
	if TypeOf(stderrors.New("plain")) != TypeInternal {
		t.Error("plain errors are internal")
	}
}

func TestWithContext(t *testing.T) {
	err := Newf(TypeFixture, "bad row").WithContext("line", 12)
	if err.Context["line"] != 12 {
		t.Errorf("context = %v", err.Context)
	}
}
