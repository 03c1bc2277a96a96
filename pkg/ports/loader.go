package ports

import "github.com/aretw0/cinta/pkg/machine"

// DefinitionLoader defines how the engine retrieves a machine definition.
// This allows the source format (YAML file, memory fixture) to be decoupled.
type DefinitionLoader interface {
	// Definition returns the parsed, not yet validated machine definition.
	// Validation happens when the engine compiles it into a Table.
	Definition() (*machine.Definition, error)
}

// CaseLoader defines how batch drivers retrieve simulation cases.
// Sources that bundle cases with the machine definition implement both.
type CaseLoader interface {
	// Cases returns the simulation inputs in source order, each with an
	// optional expected verdict.
	Cases() ([]machine.Case, error)
}

// StepBounded is implemented by loaders whose source carries its own step
// bound. The engine consults it when the caller does not set one explicitly.
type StepBounded interface {
	// MaxSteps returns the source's step bound, or 0 when it has none.
	MaxSteps() int
}
