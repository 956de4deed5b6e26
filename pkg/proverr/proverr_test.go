package proverr

import (
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	invalid := &InvalidFormulaError{Input: "x<", Pos: 2, Msg: "expected term"}
	if !strings.Contains(invalid.Error(), "expected term") {
		t.Fatalf("expected message to contain the reason, got %q", invalid.Error())
	}

	if !strings.Contains((&DivisionByZeroError{}).Error(), "zero") {
		t.Fatalf("expected division-by-zero message to mention zero")
	}

	arity := &ArityMismatchError{Expected: 2, Got: 3}
	if !strings.Contains(arity.Error(), "2") || !strings.Contains(arity.Error(), "3") {
		t.Fatalf("expected arity message to mention both counts, got %q", arity.Error())
	}

	exhausted := &ResourceExhaustedError{Limit: 10, Got: 20}
	if !strings.Contains(exhausted.Error(), "10") || !strings.Contains(exhausted.Error(), "20") {
		t.Fatalf("expected resource-exhausted message to mention both counts, got %q", exhausted.Error())
	}
}

func TestErrorsImplementErrorInterface(t *testing.T) {
	var errs = []error{
		&InvalidFormulaError{},
		&DivisionByZeroError{},
		&ArityMismatchError{},
		&ResourceExhaustedError{},
	}

	for _, e := range errs {
		if e.Error() == "" {
			t.Fatalf("expected a non-empty message from %T", e)
		}
	}
}
