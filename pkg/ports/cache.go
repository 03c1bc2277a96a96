package ports

import (
	"context"
	"fmt"

	"github.com/aretw0/cinta/pkg/machine"
)

// RunKey identifies one deterministic run: a compiled table (by its
// fingerprint), an input word and a step bound. Two runs with equal keys
// produce equal results, which is what makes verdicts cacheable at all.
type RunKey struct {
	Fingerprint string
	Input       string
	MaxSteps    int
}

// String renders the key in a form usable as a storage key. The variable
// length input comes last so the encoding stays unambiguous.
func (k RunKey) String() string {
	return fmt.Sprintf("%s:%d:%s", k.Fingerprint, k.MaxSteps, k.Input)
}

// VerdictCache defines the interface for reusing terminal results across
// runs and processes.
type VerdictCache interface {
	// Probe retrieves the stored result for key.
	// Returns machine.ErrRunNotCached when the key has no entry.
	Probe(ctx context.Context, key RunKey) (*machine.RunResult, error)

	// Store persists the result for key.
	Store(ctx context.Context, key RunKey, result machine.RunResult) error
}
