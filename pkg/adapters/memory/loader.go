package memory

import (
	"github.com/aretw0/cinta/pkg/machine"
)

// Loader implements ports.DefinitionLoader and ports.CaseLoader from
// in-process values. It is the natural fixture source for tests and for
// consumers that build definitions programmatically.
type Loader struct {
	def      *machine.Definition
	cases    []machine.Case
	maxSteps int
}

// NewLoader creates a Loader serving only a definition.
func NewLoader(def *machine.Definition) *Loader {
	return &Loader{def: def}
}

// NewSuite creates a Loader serving a definition together with simulation
// cases and an optional step bound (0 means none).
func NewSuite(def *machine.Definition, maxSteps int, cases ...machine.Case) *Loader {
	return &Loader{def: def, cases: cases, maxSteps: maxSteps}
}

// Definition returns the held definition as-is.
func (l *Loader) Definition() (*machine.Definition, error) {
	if l.def == nil {
		return nil, machine.ErrNoDefinition
	}
	return l.def, nil
}

// Cases returns the held cases in insertion order.
func (l *Loader) Cases() ([]machine.Case, error) {
	out := make([]machine.Case, len(l.cases))
	copy(out, l.cases)
	return out, nil
}

// MaxSteps returns the configured step bound, or 0 when none was set.
func (l *Loader) MaxSteps() int {
	return l.maxSteps
}
