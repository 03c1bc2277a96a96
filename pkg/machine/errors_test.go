package machine

import (
	"errors"
	"strings"
	"testing"
)

func TestDefinitionError_String(t *testing.T) {
	tests := []struct {
		err  *DefinitionError
		want string
	}{
		{
			&DefinitionError{Field: "states", Reason: "is empty"},
			"definition states: is empty",
		},
		{
			&DefinitionError{Field: "initial", Reason: "not a declared state", Value: State("q9")},
			"definition initial: not a declared state (q9)",
		},
	}

	for _, tt := range tests {
		got := tt.err.Error()
		if got != tt.want {
			t.Errorf("DefinitionError.Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestAggregateError_String(t *testing.T) {
	single := &AggregateError{Errors: []error{
		&DefinitionError{Field: "states", Reason: "is empty"},
	}}
	if got := single.Error(); got != "definition states: is empty" {
		t.Errorf("single error should not be numbered, got %q", got)
	}

	multi := &AggregateError{Errors: []error{
		&DefinitionError{Field: "states", Reason: "is empty"},
		&DefinitionError{Field: "alphabet", Reason: "is empty"},
	}}
	msg := multi.Error()
	if !strings.Contains(msg, "2 definition errors") {
		t.Errorf("AggregateError.Error() should mention the count, got: %s", msg)
	}
	if !strings.Contains(msg, "1.") || !strings.Contains(msg, "2.") {
		t.Errorf("AggregateError.Error() should number entries, got: %s", msg)
	}
}

func TestDefinitionErrors(t *testing.T) {
	aggr := &AggregateError{Errors: []error{
		&DefinitionError{Field: "states", Reason: "is empty"},
	}}
	if errs := DefinitionErrors(aggr); len(errs) != 1 {
		t.Errorf("DefinitionErrors() = %d errors, want 1", len(errs))
	}

	if errs := DefinitionErrors(errors.New("plain")); errs != nil {
		t.Errorf("DefinitionErrors() on non-aggregate = %v, want nil", errs)
	}
}

func TestInputError_Unwrap(t *testing.T) {
	err := &InputError{Symbol: "z", Position: 4}
	if !errors.Is(err, ErrInvalidInputSymbol) {
		t.Error("InputError should unwrap to ErrInvalidInputSymbol")
	}
	if !strings.Contains(err.Error(), `"z"`) || !strings.Contains(err.Error(), "position 4") {
		t.Errorf("InputError.Error() = %q", err.Error())
	}
}

func TestParseMove(t *testing.T) {
	if m, err := ParseMove("L"); err != nil || m != MoveLeft {
		t.Errorf("ParseMove(L) = %v, %v", m, err)
	}
	if m, err := ParseMove("R"); err != nil || m != MoveRight {
		t.Errorf("ParseMove(R) = %v, %v", m, err)
	}
	if _, err := ParseMove("S"); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("ParseMove(S) error = %v, want ErrInvalidMove", err)
	}
	if MoveLeft.Delta() != -1 || MoveRight.Delta() != 1 {
		t.Error("Move.Delta() should be -1 for L and +1 for R")
	}
}

func TestParseVerdict(t *testing.T) {
	for _, raw := range []string{"accepted", "rejected", "step_limit_exceeded"} {
		if _, err := ParseVerdict(raw); err != nil {
			t.Errorf("ParseVerdict(%q) error = %v", raw, err)
		}
	}
	if _, err := ParseVerdict("maybe"); err == nil {
		t.Error("ParseVerdict(maybe) should fail")
	}
}

func TestVerdict_Halting(t *testing.T) {
	if !VerdictAccepted.Halting() || !VerdictRejected.Halting() {
		t.Error("accepted and rejected are halting verdicts")
	}
	if VerdictStepLimitExceeded.Halting() {
		t.Error("the step limit verdict is not a halt")
	}
}
