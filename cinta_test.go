package cinta_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cinta"
	"github.com/aretw0/cinta/pkg/adapters/memory"
	"github.com/aretw0/cinta/pkg/machine"
)

func evenADefinition() *machine.Definition {
	return &machine.Definition{
		Name:         "even-a",
		States:       []machine.State{"q0", "q1", "qf"},
		Initial:      "q0",
		Final:        "qf",
		Alphabet:     []machine.Symbol{"a", "b"},
		TapeAlphabet: []machine.Symbol{"a", "b", "_"},
		Rules: []machine.Rule{
			{When: machine.RuleKey{State: "q0", Symbol: "a"}, Then: machine.Action{Next: "q1", Write: "a", Move: machine.MoveRight}},
			{When: machine.RuleKey{State: "q0", Symbol: "b"}, Then: machine.Action{Next: "q0", Write: "b", Move: machine.MoveRight}},
			{When: machine.RuleKey{State: "q1", Symbol: "a"}, Then: machine.Action{Next: "q0", Write: "a", Move: machine.MoveRight}},
			{When: machine.RuleKey{State: "q1", Symbol: "b"}, Then: machine.Action{Next: "q1", Write: "b", Move: machine.MoveRight}},
			{When: machine.RuleKey{State: "q0", Symbol: "_"}, Then: machine.Action{Next: "qf", Write: "_", Move: machine.MoveRight}},
		},
	}
}

func TestNew(t *testing.T) {
	engine, err := cinta.New(evenADefinition())
	require.NoError(t, err)

	assert.Equal(t, "even-a", engine.Name)
	assert.Equal(t, machine.DefaultMaxSteps, engine.MaxSteps())
	assert.Equal(t, 5, engine.Table().Len())

	result, err := engine.Run(context.Background(), "abba")
	require.NoError(t, err)
	assert.Equal(t, machine.VerdictAccepted, result.Verdict)
	assert.Equal(t, 5, result.Steps)
}

func TestNew_NilDefinition(t *testing.T) {
	_, err := cinta.New(nil)
	assert.True(t, errors.Is(err, machine.ErrNoDefinition))
}

func TestNew_DefinitionErrors(t *testing.T) {
	def := evenADefinition()
	def.Rules = append(def.Rules, def.Rules[0])

	_, err := cinta.New(def)
	require.Error(t, err)
	require.Len(t, machine.DefinitionErrors(err), 1)
	assert.Contains(t, err.Error(), "duplicate transition key")
}

func TestLoad_File(t *testing.T) {
	engine, err := cinta.Load("examples/balance/machine.yaml")
	require.NoError(t, err)

	assert.Equal(t, "balance", engine.Name)
	assert.Equal(t, 400, engine.MaxSteps(), "step bound comes from the file")

	cases, err := engine.Cases()
	require.NoError(t, err)
	assert.NotEmpty(t, cases)

	result, err := engine.Run(context.Background(), "ababab")
	require.NoError(t, err)
	assert.Equal(t, machine.VerdictAccepted, result.Verdict)
}

func TestLoad_RequiresPathOrLoader(t *testing.T) {
	_, err := cinta.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path is required")
}

func TestLoad_MemoryLoader(t *testing.T) {
	loader := memory.NewSuite(evenADefinition(), 64, machine.Case{Input: "aa", Expect: machine.VerdictAccepted})
	engine, err := cinta.Load("", cinta.WithLoader(loader))
	require.NoError(t, err)

	assert.Equal(t, 64, engine.MaxSteps(), "step bound comes from the loader")

	cases, err := engine.Cases()
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "aa", cases[0].Input)
}

func TestWithMaxSteps(t *testing.T) {
	engine, err := cinta.New(evenADefinition(), cinta.WithMaxSteps(3))
	require.NoError(t, err)

	result, err := engine.Run(context.Background(), "abba")
	require.NoError(t, err)
	assert.Equal(t, machine.VerdictStepLimitExceeded, result.Verdict)
	assert.Equal(t, 3, result.Steps)
}

func TestRun_InvalidInput(t *testing.T) {
	engine, err := cinta.New(evenADefinition())
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), "abc")
	assert.True(t, errors.Is(err, machine.ErrInvalidInputSymbol))
}

func TestRun_Concurrent(t *testing.T) {
	engine, err := cinta.New(evenADefinition())
	require.NoError(t, err)

	inputs := []string{"", "a", "aa", "ab", "ba", "abba", "babb", "aabaa"}
	want := []machine.Verdict{
		machine.VerdictAccepted,
		machine.VerdictRejected,
		machine.VerdictAccepted,
		machine.VerdictRejected,
		machine.VerdictRejected,
		machine.VerdictAccepted,
		machine.VerdictRejected,
		machine.VerdictAccepted,
	}

	var wg sync.WaitGroup
	got := make([]machine.Verdict, len(inputs))
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			result, err := engine.Run(context.Background(), input)
			if err != nil {
				return
			}
			got[i] = result.Verdict
		}(i, input)
	}
	wg.Wait()

	assert.Equal(t, want, got, "the shared table serves concurrent runs")
}

func TestWithLifecycleHooks(t *testing.T) {
	var mu sync.Mutex
	steps := 0
	hooks := &machine.LifecycleHooks{
		OnStep: func(context.Context, *machine.StepEvent) {
			mu.Lock()
			steps++
			mu.Unlock()
		},
	}

	engine, err := cinta.New(evenADefinition(), cinta.WithLifecycleHooks(hooks))
	require.NoError(t, err)

	result, err := engine.Run(context.Background(), "abba")
	require.NoError(t, err)
	assert.Equal(t, result.Steps, steps)
}
