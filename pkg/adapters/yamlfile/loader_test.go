package yamlfile_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cinta/internal/runtime"
	"github.com/aretw0/cinta/pkg/adapters/yamlfile"
	"github.com/aretw0/cinta/pkg/machine"
)

func TestNew_BalanceFile(t *testing.T) {
	loader, err := yamlfile.New(filepath.Join("testdata", "balance.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "balance", loader.Name())
	assert.Equal(t, 500, loader.MaxSteps())

	def, err := loader.Definition()
	require.NoError(t, err)
	assert.Equal(t, "balance", def.Name)
	assert.Equal(t, machine.KindRecognizer, def.Kind)
	assert.Equal(t, machine.State("q0"), def.Initial)
	assert.Equal(t, machine.State("qf"), def.Final)
	assert.Len(t, def.States, 6)
	assert.Len(t, def.Rules, 20)

	cases, err := loader.Cases()
	require.NoError(t, err)
	require.Len(t, cases, 7)
	assert.Equal(t, "abbaab", cases[0].Input)
	assert.False(t, cases[0].Asserted())
	assert.Equal(t, machine.Case{Input: "", Expect: machine.VerdictAccepted}, cases[4])
	assert.Equal(t, machine.Case{Input: "aab", Expect: machine.VerdictRejected}, cases[6])
}

func TestNew_MissingFile(t *testing.T) {
	_, err := yamlfile.New(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read machine file")
}

func TestDefinition_CompilesAndRuns(t *testing.T) {
	loader, err := yamlfile.New(filepath.Join("testdata", "balance.yaml"))
	require.NoError(t, err)
	def, err := loader.Definition()
	require.NoError(t, err)
	table, err := machine.NewTable(def)
	require.NoError(t, err)

	for input, want := range map[string]machine.Verdict{
		"abbaab": machine.VerdictAccepted,
		"ababab": machine.VerdictAccepted,
		"abbba":  machine.VerdictRejected,
		"aabbb":  machine.VerdictRejected,
	} {
		exec, err := runtime.NewExecution(table, input, runtime.Config{MaxSteps: loader.MaxSteps()})
		require.NoError(t, err)
		result, err := exec.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, result.Verdict, "input %q", input)
	}
}

func TestDefinition_CacheFlattening(t *testing.T) {
	loader, err := yamlfile.New(filepath.Join("testdata", "rotate.yaml"))
	require.NoError(t, err)

	def, err := loader.Definition()
	require.NoError(t, err)
	assert.Equal(t, machine.KindTransformer, def.Kind)

	// Declared bases plus the composite states used by the register.
	assert.ElementsMatch(t, []machine.State{"t0", "t1", "t2", "tf", "t1[a]", "t1[b]"}, def.States)

	table, err := machine.NewTable(def)
	require.NoError(t, err)

	action, ok := table.Lookup("t0", "a")
	require.True(t, ok)
	assert.Equal(t, machine.State("t1[a]"), action.Next)
	assert.Equal(t, machine.Blank, action.Write, "lifting into the cache blanks the cell")

	for input, want := range map[string]string{
		"ab":  "ba",
		"ba":  "ab",
		"a":   "a",
		"":    "",
		"abb": "bba",
	} {
		exec, err := runtime.NewExecution(table, input, runtime.Config{})
		require.NoError(t, err)
		result, err := exec.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, machine.VerdictAccepted, result.Verdict, "input %q", input)
		assert.Equal(t, want, result.Tape, "input %q", input)
	}
}

func TestNewFromBytes_WeakScalars(t *testing.T) {
	// States and symbols written as bare ints are decoded as their string
	// spelling, the way machine authors expect.
	doc := []byte(`
q_states:
  q_list: [0, 1]
  initial: 0
  final: 1
alphabet: [7]
tape_alphabet: [7, _]
max_steps: 42
delta:
  - params: {initial_state: 0, tape_input: 7}
    output: {final_state: 1, tape_output: 7, tape_displacement: R}
simulation_strings: [777]
`)
	loader, err := yamlfile.NewFromBytes(doc)
	require.NoError(t, err)
	assert.Equal(t, 42, loader.MaxSteps())
	assert.Equal(t, "", loader.Name())

	def, err := loader.Definition()
	require.NoError(t, err)
	assert.Equal(t, machine.State("0"), def.Initial)
	assert.Equal(t, []machine.Symbol{"7"}, def.Alphabet)
	require.Len(t, def.Rules, 1)
	assert.Equal(t, machine.Symbol("7"), def.Rules[0].When.Symbol)

	cases, err := loader.Cases()
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "777", cases[0].Input)
}

func TestNewFromBytes_Invalid(t *testing.T) {
	t.Run("Broken Yaml", func(t *testing.T) {
		_, err := yamlfile.NewFromBytes([]byte("q_states: ["))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse machine yaml")
	})

	t.Run("Unknown Kind", func(t *testing.T) {
		loader, err := yamlfile.NewFromBytes([]byte("kind: oracle"))
		require.NoError(t, err)
		_, err = loader.Definition()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown machine kind")
	})

	t.Run("Undeclared State In Delta", func(t *testing.T) {
		doc := []byte(`
q_states:
  q_list: [q0, qf]
  initial: q0
  final: qf
alphabet: [a]
tape_alphabet: [a, _]
delta:
  - params: {initial_state: q9, tape_input: a}
    output: {final_state: qf, tape_output: a, tape_displacement: R}
`)
		loader, err := yamlfile.NewFromBytes(doc)
		require.NoError(t, err)
		_, err = loader.Definition()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "undeclared state")
	})

	t.Run("Cache Held In Final State", func(t *testing.T) {
		doc := []byte(`
q_states:
  q_list: [q0, qf]
  initial: q0
  final: qf
alphabet: [a]
tape_alphabet: [a, _]
delta:
  - params: {initial_state: q0, tape_input: a}
    output: {final_state: qf, mem_cache_value: a, tape_output: a, tape_displacement: R}
`)
		loader, err := yamlfile.NewFromBytes(doc)
		require.NoError(t, err)
		_, err = loader.Definition()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "final state cannot hold a cache value")
	})

	t.Run("Invalid Displacement", func(t *testing.T) {
		doc := []byte(`
q_states:
  q_list: [q0, qf]
  initial: q0
  final: qf
alphabet: [a]
tape_alphabet: [a, _]
delta:
  - params: {initial_state: q0, tape_input: a}
    output: {final_state: qf, tape_output: a, tape_displacement: S}
`)
		loader, err := yamlfile.NewFromBytes(doc)
		require.NoError(t, err)
		_, err = loader.Definition()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid head move")
	})

	t.Run("Bad Expected Verdict", func(t *testing.T) {
		loader, err := yamlfile.NewFromBytes([]byte(`
simulation_cases:
  - {input: ab, expect: maybe}
`))
		require.NoError(t, err)
		_, err = loader.Cases()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown verdict")
	})
}
