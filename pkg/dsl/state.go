package dsl

import "github.com/aretw0/cinta/pkg/machine"

// StateBuilder provides a fluent API for configuring a control state.
type StateBuilder struct {
	id      machine.State
	builder *Builder
}

// Initial marks this state as the start state of every run.
func (s *StateBuilder) Initial() *StateBuilder {
	s.builder.initial = s.id
	return s
}

// Final marks this state as the accepting state.
func (s *StateBuilder) Final() *StateBuilder {
	s.builder.final = s.id
	return s
}

// On adds the transition fired when the head reads the given symbol: the
// machine writes write, moves the head and continues in next. Referencing an
// undeclared next state is caught by Build, not here.
func (s *StateBuilder) On(read, write string, move machine.Move, next string) *StateBuilder {
	s.builder.rules = append(s.builder.rules, machine.Rule{
		When: machine.RuleKey{State: s.id, Symbol: machine.Symbol(read)},
		Then: machine.Action{Next: machine.State(next), Write: machine.Symbol(write), Move: move},
	})
	return s
}

// Loop adds a self-transition that keeps the machine in this state.
func (s *StateBuilder) Loop(read, write string, move machine.Move) *StateBuilder {
	return s.On(read, write, move, string(s.id))
}
