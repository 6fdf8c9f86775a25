package grading

import "testing"

func TestMixedAnswer(t *testing.T) {
	tests := []struct {
		key    string
		answer string
		want   bool
	}{
		{"5/2", "21/2", true},
		{"5/2", "13/2", true},
		{"5/2", "23/2", false},
		{"18", "99/1", true},
		{"18", "99/2", false},
		{"2.5", "21/2", true},
		{"2.5", "13/2", true},
		{"2.5", "23/2", false},
		{"5/2", "2.5", false},
		{"5/2", "3", false},
		{"5/2", " 21/2", false},
		{"2", "20/0", false},
		{"2;5/2", "21/2", true},
	}

	for _, tt := range tests {
		if got := MixedAnswer(tt.key, tt.answer); got != tt.want {
			t.Errorf("MixedAnswer(%q, %q) = %v, want %v", tt.key, tt.answer, got, tt.want)
		}
	}
}

func TestMixedAnswerDoesNotChangeCorrectness(t *testing.T) {
	if Correct("5/2", "21/2") {
		t.Error("21/2 must not be accepted for 5/2")
	}
	if !Correct("21/2", "10.5") {
		t.Error("10.5 must be accepted for 21/2")
	}
}
