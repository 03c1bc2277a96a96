package machine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cinta/pkg/machine"
)

func parityDefinition() *machine.Definition {
	// Accepts words with an even number of "a" (including the empty word).
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

func TestNewTable_Valid(t *testing.T) {
	table, err := machine.NewTable(parityDefinition())
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Equal(t, "even-a", table.Name())
	assert.Equal(t, machine.KindRecognizer, table.Kind())
	assert.Equal(t, machine.State("q0"), table.Initial())
	assert.Equal(t, machine.State("qf"), table.Final())
	assert.True(t, table.IsFinal("qf"))
	assert.False(t, table.IsFinal("q0"))
	assert.Equal(t, 5, table.Len())

	action, ok := table.Lookup("q0", "a")
	require.True(t, ok)
	assert.Equal(t, machine.State("q1"), action.Next)
	assert.Equal(t, machine.Symbol("a"), action.Write)
	assert.Equal(t, machine.MoveRight, action.Move)

	_, ok = table.Lookup("qf", "a")
	assert.False(t, ok, "final state has no outgoing transitions")
}

func TestNewTable_DeterministicAccessors(t *testing.T) {
	table, err := machine.NewTable(parityDefinition())
	require.NoError(t, err)

	assert.Equal(t, []machine.State{"q0", "q1", "qf"}, table.States())
	assert.Equal(t, []machine.Symbol{"a", "b"}, table.Alphabet())
	assert.Equal(t, []machine.Symbol{"_", "a", "b"}, table.TapeAlphabet())

	rules := table.Rules()
	require.Len(t, rules, 5)
	// Sorted by state, then symbol.
	assert.Equal(t, machine.RuleKey{State: "q0", Symbol: "_"}, rules[0].When)
	assert.Equal(t, machine.RuleKey{State: "q1", Symbol: "b"}, rules[4].When)
}

func TestNewTable_DuplicateKey(t *testing.T) {
	def := parityDefinition()
	def.Rules = append(def.Rules, machine.Rule{
		When: machine.RuleKey{State: "q0", Symbol: "a"},
		Then: machine.Action{Next: "q0", Write: "a", Move: machine.MoveLeft},
	})

	table, err := machine.NewTable(def)
	assert.Nil(t, table)
	require.Error(t, err)

	defErrs := machine.DefinitionErrors(err)
	require.Len(t, defErrs, 1)
	assert.Contains(t, defErrs[0].Error(), "duplicate transition key")
	assert.Contains(t, defErrs[0].Error(), "(q0, a)")
}

func TestNewTable_UnknownReferences(t *testing.T) {
	t.Run("Unknown Source State", func(t *testing.T) {
		def := parityDefinition()
		def.Rules[0].When.State = "q9"
		_, err := machine.NewTable(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown source state")
	})

	t.Run("Unknown Target State", func(t *testing.T) {
		def := parityDefinition()
		def.Rules[0].Then.Next = "q9"
		_, err := machine.NewTable(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown target state")
	})

	t.Run("Unknown Read Symbol", func(t *testing.T) {
		def := parityDefinition()
		def.Rules[0].When.Symbol = "z"
		_, err := machine.NewTable(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown read symbol")
	})

	t.Run("Unknown Write Symbol", func(t *testing.T) {
		def := parityDefinition()
		def.Rules[0].Then.Write = "z"
		_, err := machine.NewTable(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown write symbol")
	})

	t.Run("Invalid Move", func(t *testing.T) {
		def := parityDefinition()
		def.Rules[0].Then.Move = "S"
		_, err := machine.NewTable(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid head move")
	})
}

func TestNewTable_DistinguishedStates(t *testing.T) {
	t.Run("Initial Not Declared", func(t *testing.T) {
		def := parityDefinition()
		def.Initial = "missing"
		_, err := machine.NewTable(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `initial`)
	})

	t.Run("Final Not Declared", func(t *testing.T) {
		def := parityDefinition()
		def.Final = "missing"
		_, err := machine.NewTable(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `final`)
	})
}

func TestNewTable_AlphabetInvariants(t *testing.T) {
	t.Run("Blank In Input Alphabet", func(t *testing.T) {
		def := parityDefinition()
		def.Alphabet = append(def.Alphabet, machine.Blank)
		_, err := machine.NewTable(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not contain the blank symbol")
	})

	t.Run("Blank Missing From Tape Alphabet", func(t *testing.T) {
		def := parityDefinition()
		def.TapeAlphabet = []machine.Symbol{"a", "b"}
		_, err := machine.NewTable(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must contain the blank symbol")
	})

	t.Run("Input Symbol Missing From Tape Alphabet", func(t *testing.T) {
		def := parityDefinition()
		def.TapeAlphabet = []machine.Symbol{"a", "_"}
		_, err := machine.NewTable(def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing input symbol")
	})
}

func TestNewTable_ReportsAllDefects(t *testing.T) {
	def := parityDefinition()
	def.Initial = "missing"
	def.Rules[0].Then.Write = "z"
	def.Rules = append(def.Rules, def.Rules[1])

	_, err := machine.NewTable(def)
	require.Error(t, err)

	defErrs := machine.DefinitionErrors(err)
	assert.Len(t, defErrs, 3, "one pass reports every defect")
}

func TestNewTable_NilDefinition(t *testing.T) {
	_, err := machine.NewTable(nil)
	require.Error(t, err)
}

func TestTable_ParseInput(t *testing.T) {
	table, err := machine.NewTable(parityDefinition())
	require.NoError(t, err)

	t.Run("Valid Word", func(t *testing.T) {
		symbols, err := table.ParseInput("abba")
		require.NoError(t, err)
		assert.Equal(t, []machine.Symbol{"a", "b", "b", "a"}, symbols)
	})

	t.Run("Empty Word", func(t *testing.T) {
		symbols, err := table.ParseInput("")
		require.NoError(t, err)
		assert.Empty(t, symbols)
	})

	t.Run("Foreign Symbol", func(t *testing.T) {
		_, err := table.ParseInput("abca")
		require.Error(t, err)
		assert.True(t, errors.Is(err, machine.ErrInvalidInputSymbol))

		var inputErr *machine.InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, machine.Symbol("c"), inputErr.Symbol)
		assert.Equal(t, 2, inputErr.Position)
	})

	t.Run("Blank Is Not Input", func(t *testing.T) {
		_, err := table.ParseInput("a_b")
		assert.True(t, errors.Is(err, machine.ErrInvalidInputSymbol))
	})
}
