package dsl

import (
	"fmt"

	"github.com/aretw0/cinta/pkg/adapters/memory"
	"github.com/aretw0/cinta/pkg/machine"
)

// Aliases for the head moves so call sites stay short.
const (
	Left  = machine.MoveLeft
	Right = machine.MoveRight
)

// Builder manages the machine construction.
type Builder struct {
	name     string
	kind     machine.Kind
	initial  machine.State
	final    machine.State
	alphabet []machine.Symbol
	rules    []machine.Rule
	maxSteps int
	cases    []machine.Case

	states map[machine.State]*StateBuilder
	order  []machine.State
}

// New creates a new machine builder.
func New(name string) *Builder {
	return &Builder{
		name:   name,
		states: make(map[machine.State]*StateBuilder),
	}
}

// Transformer marks the machine as a transformer, so runs are read for the
// tape they leave behind rather than for the verdict alone.
func (b *Builder) Transformer() *Builder {
	b.kind = machine.KindTransformer
	return b
}

// Symbols declares the input alphabet. The tape alphabet is derived from it,
// every symbol the rules read or write, and the blank.
func (b *Builder) Symbols(symbols ...string) *Builder {
	for _, s := range symbols {
		b.alphabet = append(b.alphabet, machine.Symbol(s))
	}
	return b
}

// MaxSteps sets the step bound reported by the built loader.
func (b *Builder) MaxSteps(n int) *Builder {
	b.maxSteps = n
	return b
}

// Accepts declares asserted simulation cases expecting acceptance.
func (b *Builder) Accepts(inputs ...string) *Builder {
	for _, in := range inputs {
		b.cases = append(b.cases, machine.Case{Input: in, Expect: machine.VerdictAccepted})
	}
	return b
}

// Rejects declares asserted simulation cases expecting rejection.
func (b *Builder) Rejects(inputs ...string) *Builder {
	for _, in := range inputs {
		b.cases = append(b.cases, machine.Case{Input: in, Expect: machine.VerdictRejected})
	}
	return b
}

// State creates a new control state.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(id string) *StateBuilder {
	s := machine.State(id)
	if sb, ok := b.states[s]; ok {
		return sb
	}
	sb := &StateBuilder{
		id:      s,
		builder: b,
	}
	b.states[s] = sb
	b.order = append(b.order, s)
	return sb
}

// Build compiles the machine into a memory loader. The definition goes
// through the same validation a YAML file would, so a builder mistake
// surfaces here instead of at run time.
func (b *Builder) Build() (*memory.Loader, error) {
	def := b.definition()
	if _, err := machine.NewTable(def); err != nil {
		return nil, fmt.Errorf("failed to build machine definition: %w", err)
	}
	return memory.NewSuite(def, b.maxSteps, b.cases...), nil
}

func (b *Builder) definition() *machine.Definition {
	def := &machine.Definition{
		Name:     b.name,
		Kind:     b.kind,
		Initial:  b.initial,
		Final:    b.final,
		States:   append([]machine.State(nil), b.order...),
		Alphabet: append([]machine.Symbol(nil), b.alphabet...),
		Rules:    append([]machine.Rule(nil), b.rules...),
	}
	def.TapeAlphabet = deriveTapeAlphabet(def)
	return def
}

// deriveTapeAlphabet collects the input alphabet, every symbol a rule touches
// and the blank, preserving first-seen order.
func deriveTapeAlphabet(def *machine.Definition) []machine.Symbol {
	seen := make(map[machine.Symbol]struct{}, len(def.Alphabet)+2)
	out := make([]machine.Symbol, 0, len(def.Alphabet)+2)
	add := func(sym machine.Symbol) {
		if _, ok := seen[sym]; ok {
			return
		}
		seen[sym] = struct{}{}
		out = append(out, sym)
	}
	for _, sym := range def.Alphabet {
		add(sym)
	}
	for _, r := range def.Rules {
		add(r.When.Symbol)
		add(r.Then.Write)
	}
	add(machine.Blank)
	return out
}
