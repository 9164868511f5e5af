package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusAwaitingConfirmation, StatusProcessing, StatusCompleted, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "shipped", "AWAITING_CONFIRMATION", "done"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{StatusAwaitingConfirmation, StatusProcessing, true},
		{StatusAwaitingConfirmation, StatusCancelled, true},
		{StatusAwaitingConfirmation, StatusCompleted, false},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusAwaitingConfirmation, false},
		{StatusCompleted, StatusProcessing, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusProcessing, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tc := range cases {
		o := Order{Status: tc.from}
		if got := o.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []string{StatusCompleted, StatusCancelled} {
		o := Order{Status: s}
		if !o.IsTerminal() {
			t.Errorf("IsTerminal() = false for %s, want true", s)
		}
	}
	for _, s := range []string{StatusAwaitingConfirmation, StatusProcessing} {
		o := Order{Status: s}
		if o.IsTerminal() {
			t.Errorf("IsTerminal() = true for %s, want false", s)
		}
	}
}

func TestCodeSuffix(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"RB-ABCDEF12", "#ABCDEF12"},
		{"RB-12", "#RB-12"},
		{"", "#"},
	}

	for _, tc := range cases {
		o := Order{Code: tc.code}
		if got := o.CodeSuffix(); got != tc.want {
			t.Errorf("CodeSuffix(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
