package machine

import (
	"errors"
	"fmt"
)

// ErrInvalidInputSymbol is returned when an input string contains a symbol
// outside the machine's input alphabet. The run is refused before the first
// step; use errors.Is to detect it and *InputError to recover the detail.
var ErrInvalidInputSymbol = errors.New("input symbol not in alphabet")

// ErrInvalidMove is returned when a direction token is neither "L" nor "R".
var ErrInvalidMove = errors.New("invalid head move")

// ErrNoDefinition is returned by the engine facade when it is constructed
// without a machine definition and no loader can supply one.
var ErrNoDefinition = errors.New("no machine definition")

// ErrRunNotCached is returned by verdict caches when a (machine, input,
// bound) key has no stored result.
var ErrRunNotCached = errors.New("run not cached")

// DefinitionError represents a single defect found while compiling a
// Definition into a Table.
type DefinitionError struct {
	Field  string // Definition field the defect belongs to
	Reason string // Human-readable reason for failure
	Value  any    // The offending value, if any
}

func (e *DefinitionError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("definition %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("definition %s: %s (%v)", e.Field, e.Reason, e.Value)
}

// AggregateError collects every defect found in one compilation pass, so a
// broken definition reports all of its problems at once instead of one per
// attempt.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d definition errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// DefinitionErrors returns all compilation defects if err is an
// AggregateError. Otherwise returns nil.
func DefinitionErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

// InputError reports the first out-of-alphabet symbol in an input string.
type InputError struct {
	Symbol   Symbol
	Position int // rune offset in the raw input
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input symbol %q at position %d not in alphabet", e.Symbol, e.Position)
}

// Unwrap makes errors.Is(err, ErrInvalidInputSymbol) work.
func (e *InputError) Unwrap() error { return ErrInvalidInputSymbol }
