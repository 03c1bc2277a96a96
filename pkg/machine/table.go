package machine

import (
	"sort"
)

// Table is the compiled, immutable transition function of a machine.
//
// A Table is built once by NewTable and never mutated afterwards, so it is
// safe to share across concurrent runs. It indexes the rules of a Definition
// by (state, symbol) and carries the validated alphabets for input checking.
type Table struct {
	name    string
	kind    Kind
	initial State
	final   State

	states map[State]struct{}
	input  map[Symbol]struct{}
	tape   map[Symbol]struct{}
	rules  map[RuleKey]Action
}

// NewTable validates def and compiles it into an immutable Table.
//
// Every defect found is reported: the returned error is an *AggregateError
// of *DefinitionError values, and the table is never built in a
// partially-valid state.
func NewTable(def *Definition) (*Table, error) {
	if def == nil {
		return nil, &DefinitionError{Field: "definition", Reason: "is nil"}
	}

	var errs []error

	if len(def.States) == 0 {
		errs = append(errs, &DefinitionError{Field: "states", Reason: "is empty"})
	}
	if len(def.Alphabet) == 0 {
		errs = append(errs, &DefinitionError{Field: "alphabet", Reason: "is empty"})
	}

	states := make(map[State]struct{}, len(def.States))
	for _, s := range def.States {
		states[s] = struct{}{}
	}
	input := make(map[Symbol]struct{}, len(def.Alphabet))
	for _, sym := range def.Alphabet {
		input[sym] = struct{}{}
	}
	tape := make(map[Symbol]struct{}, len(def.TapeAlphabet))
	for _, sym := range def.TapeAlphabet {
		tape[sym] = struct{}{}
	}

	if _, ok := states[def.Initial]; !ok {
		errs = append(errs, &DefinitionError{Field: "initial", Reason: "not a declared state", Value: def.Initial})
	}
	if _, ok := states[def.Final]; !ok {
		errs = append(errs, &DefinitionError{Field: "final", Reason: "not a declared state", Value: def.Final})
	}
	if _, ok := input[Blank]; ok {
		errs = append(errs, &DefinitionError{Field: "alphabet", Reason: "must not contain the blank symbol", Value: Blank})
	}
	if _, ok := tape[Blank]; !ok {
		errs = append(errs, &DefinitionError{Field: "tape_alphabet", Reason: "must contain the blank symbol", Value: Blank})
	}
	for _, sym := range def.Alphabet {
		if _, ok := tape[sym]; !ok {
			errs = append(errs, &DefinitionError{Field: "tape_alphabet", Reason: "missing input symbol", Value: sym})
		}
	}

	rules := make(map[RuleKey]Action, len(def.Rules))
	for _, r := range def.Rules {
		if _, ok := states[r.When.State]; !ok {
			errs = append(errs, &DefinitionError{Field: "rules", Reason: "unknown source state", Value: r.When.State})
		}
		if _, ok := tape[r.When.Symbol]; !ok {
			errs = append(errs, &DefinitionError{Field: "rules", Reason: "unknown read symbol", Value: r.When.Symbol})
		}
		if _, ok := states[r.Then.Next]; !ok {
			errs = append(errs, &DefinitionError{Field: "rules", Reason: "unknown target state", Value: r.Then.Next})
		}
		if _, ok := tape[r.Then.Write]; !ok {
			errs = append(errs, &DefinitionError{Field: "rules", Reason: "unknown write symbol", Value: r.Then.Write})
		}
		if r.Then.Move != MoveLeft && r.Then.Move != MoveRight {
			errs = append(errs, &DefinitionError{Field: "rules", Reason: "invalid head move", Value: r.Then.Move})
		}
		if _, dup := rules[r.When]; dup {
			errs = append(errs, &DefinitionError{Field: "rules", Reason: "duplicate transition key", Value: r.When.String()})
			continue
		}
		rules[r.When] = r.Then
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}

	return &Table{
		name:    def.Name,
		kind:    def.EffectiveKind(),
		initial: def.Initial,
		final:   def.Final,
		states:  states,
		input:   input,
		tape:    tape,
		rules:   rules,
	}, nil
}

// Lookup returns the action registered for the (state, symbol) pair. The
// second return is false when the pair has no transition, which makes the
// machine halt.
func (t *Table) Lookup(s State, sym Symbol) (Action, bool) {
	a, ok := t.rules[RuleKey{State: s, Symbol: sym}]
	return a, ok
}

// Name returns the machine label from the definition. May be empty.
func (t *Table) Name() string { return t.name }

// Kind returns the machine kind (recognizer or transformer).
func (t *Table) Kind() Kind { return t.kind }

// Initial returns the start state of every run.
func (t *Table) Initial() State { return t.initial }

// Final returns the unique accepting state.
func (t *Table) Final() State { return t.final }

// IsFinal reports whether s is the accepting state.
func (t *Table) IsFinal(s State) bool { return s == t.final }

// Len returns the number of compiled transitions.
func (t *Table) Len() int { return len(t.rules) }

// ParseInput validates raw against the input alphabet and splits it into
// symbols. See the package-level ParseInput for error semantics.
func (t *Table) ParseInput(raw string) ([]Symbol, error) {
	return ParseInput(raw, t.input)
}

// States returns the declared control states in deterministic order.
func (t *Table) States() []State {
	out := make([]State, 0, len(t.states))
	for s := range t.states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Alphabet returns the input alphabet in deterministic order.
func (t *Table) Alphabet() []Symbol {
	return sortedSymbols(t.input)
}

// TapeAlphabet returns the full tape alphabet in deterministic order.
func (t *Table) TapeAlphabet() []Symbol {
	return sortedSymbols(t.tape)
}

// Rules returns the compiled transitions in deterministic order, keyed first
// by state and then by symbol. Useful for exports and fingerprinting.
func (t *Table) Rules() []Rule {
	out := make([]Rule, 0, len(t.rules))
	for k, a := range t.rules {
		out = append(out, Rule{When: k, Then: a})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].When.State != out[j].When.State {
			return out[i].When.State < out[j].When.State
		}
		return out[i].When.Symbol < out[j].When.Symbol
	})
	return out
}

func sortedSymbols(set map[Symbol]struct{}) []Symbol {
	out := make([]Symbol, 0, len(set))
	for sym := range set {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
