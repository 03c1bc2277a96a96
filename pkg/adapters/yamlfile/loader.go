// Package yamlfile loads machine definitions and simulation cases from the
// YAML machine-file format.
//
// The format declares states under q_states, both alphabets, a delta list of
// params/output rules and optional simulation inputs. Rules may use the
// auxiliary cache register (mem_cache_value); the loader flattens each
// (state, cache) pair into a composite state of the form "q[x]", so the
// engine only ever runs plain states.
package yamlfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/cinta/pkg/machine"
)

// Loader implements ports.DefinitionLoader, ports.CaseLoader and
// ports.StepBounded for one machine file.
type Loader struct {
	path string
	doc  document
}

// New reads and decodes the machine file at path. The definition is not
// validated here; that happens when the engine compiles it.
func New(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine file: %w", err)
	}
	loader, err := NewFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	loader.path = path
	return loader, nil
}

// NewFromBytes decodes a machine document from raw YAML. Scalars are decoded
// weakly, so bare ints and nulls in state or symbol position are accepted
// the way machine authors expect.
func NewFromBytes(data []byte) (*Loader, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse machine yaml: %w", err)
	}

	var doc document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build document decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode machine document: %w", err)
	}

	return &Loader{doc: doc}, nil
}

// Path returns the source file path, or "" for in-memory documents.
func (l *Loader) Path() string { return l.path }

// Name returns the document's name field, falling back to the file name.
func (l *Loader) Name() string {
	if l.doc.Name != "" {
		return l.doc.Name
	}
	if l.path == "" {
		return ""
	}
	return filepath.Base(l.path)
}

// MaxSteps returns the document's step bound, or 0 when it has none.
func (l *Loader) MaxSteps() int { return l.doc.MaxSteps }

// Definition flattens the document into a machine definition.
//
// Every (state, cache) pair used by a delta rule becomes a composite state
// "q[x]"; rules with a blank cache keep the plain state name. Defects found
// during flattening are reported together as an *machine.AggregateError.
func (l *Loader) Definition() (*machine.Definition, error) {
	doc := l.doc

	kind := machine.KindRecognizer
	switch doc.Kind {
	case "", string(machine.KindRecognizer):
	case string(machine.KindTransformer):
		kind = machine.KindTransformer
	default:
		return nil, &machine.DefinitionError{Field: "kind", Reason: "unknown machine kind", Value: doc.Kind}
	}

	declared := make(map[string]struct{}, len(doc.QStates.QList))
	states := make([]machine.State, 0, len(doc.QStates.QList))
	seen := make(map[machine.State]struct{})
	addState := func(s machine.State) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			states = append(states, s)
		}
	}
	for _, base := range doc.QStates.QList {
		declared[base] = struct{}{}
		addState(machine.State(base))
	}

	var errs []error
	finalBase := doc.QStates.Final

	rules := make([]machine.Rule, 0, len(doc.Delta))
	for i, d := range doc.Delta {
		bad := false
		if _, ok := declared[d.Params.InitialState]; !ok {
			errs = append(errs, &machine.DefinitionError{
				Field: "delta", Reason: fmt.Sprintf("rule %d: undeclared state", i), Value: d.Params.InitialState,
			})
			bad = true
		}
		if _, ok := declared[d.Output.FinalState]; !ok {
			errs = append(errs, &machine.DefinitionError{
				Field: "delta", Reason: fmt.Sprintf("rule %d: undeclared state", i), Value: d.Output.FinalState,
			})
			bad = true
		}

		dstCache := normalize(d.Output.MemCacheValue)
		if d.Output.FinalState == finalBase && dstCache != "_" {
			errs = append(errs, &machine.DefinitionError{
				Field: "delta", Reason: fmt.Sprintf("rule %d: the final state cannot hold a cache value", i), Value: dstCache,
			})
			bad = true
		}

		move, err := machine.ParseMove(d.Output.TapeDisplacement)
		if err != nil {
			errs = append(errs, &machine.DefinitionError{
				Field: "delta", Reason: fmt.Sprintf("rule %d: %v", i, err), Value: d.Output.TapeDisplacement,
			})
			bad = true
		}
		if bad {
			continue
		}

		src := compose(d.Params.InitialState, normalize(d.Params.MemCacheValue))
		dst := compose(d.Output.FinalState, dstCache)
		addState(src)
		addState(dst)

		rules = append(rules, machine.Rule{
			When: machine.RuleKey{State: src, Symbol: machine.Symbol(normalize(d.Params.TapeInput))},
			Then: machine.Action{Next: dst, Write: machine.Symbol(normalize(d.Output.TapeOutput)), Move: move},
		})
	}

	if len(errs) > 0 {
		return nil, &machine.AggregateError{Errors: errs}
	}

	alphabet := make([]machine.Symbol, 0, len(doc.Alphabet))
	for _, s := range doc.Alphabet {
		alphabet = append(alphabet, machine.Symbol(normalize(s)))
	}
	tapeAlphabet := make([]machine.Symbol, 0, len(doc.TapeAlphabet))
	for _, s := range doc.TapeAlphabet {
		tapeAlphabet = append(tapeAlphabet, machine.Symbol(normalize(s)))
	}

	return &machine.Definition{
		Name:         doc.Name,
		Kind:         kind,
		States:       states,
		Initial:      machine.State(doc.QStates.Initial),
		Final:        machine.State(finalBase),
		Alphabet:     alphabet,
		TapeAlphabet: tapeAlphabet,
		Rules:        rules,
	}, nil
}

// Cases returns the simulation inputs declared in the document:
// simulation_strings entries first, then simulation_cases with their
// expected verdicts.
func (l *Loader) Cases() ([]machine.Case, error) {
	cases := make([]machine.Case, 0, len(l.doc.SimulationStrings)+len(l.doc.SimulationCases))
	for _, s := range l.doc.SimulationStrings {
		cases = append(cases, machine.Case{Input: s})
	}
	for i, c := range l.doc.SimulationCases {
		if c.Expect == "" {
			cases = append(cases, machine.Case{Input: c.Input})
			continue
		}
		verdict, err := machine.ParseVerdict(c.Expect)
		if err != nil {
			return nil, fmt.Errorf("simulation case %d: %w", i, err)
		}
		cases = append(cases, machine.Case{Input: c.Input, Expect: verdict})
	}
	return cases, nil
}

// compose builds the flattened identifier for a base state holding a cache
// symbol. A blank cache keeps the plain name, so machines that never touch
// the register are unaffected by flattening.
func compose(base, cache string) machine.State {
	if cache == "_" {
		return machine.State(base)
	}
	return machine.State(base + "[" + cache + "]")
}
