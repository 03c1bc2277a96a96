package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orphanStateDoc = `name: orphan
q_states:
  q_list: [q0, island, qf]
  initial: q0
  final: qf
alphabet: [a]
tape_alphabet: [a, _]
delta:
  - params: {initial_state: q0, tape_input: a}
    output: {final_state: qf, tape_output: a, tape_displacement: R}
`

const duplicateRuleDoc = `name: twice
q_states:
  q_list: [q0, qf]
  initial: q0
  final: qf
alphabet: [a]
tape_alphabet: [a, _]
delta:
  - params: {initial_state: q0, tape_input: a}
    output: {final_state: qf, tape_output: a, tape_displacement: R}
  - params: {initial_state: q0, tape_input: a}
    output: {final_state: q0, tape_output: a, tape_displacement: L}
`

func TestRunValidate(t *testing.T) {
	t.Run("Valid Machine", func(t *testing.T) {
		err := RunValidate(Options{FilePath: writeMachineFile(t)})
		assert.NoError(t, err)
	})

	t.Run("Valid Machine With Lint Findings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "machine.yaml")
		require.NoError(t, os.WriteFile(path, []byte(orphanStateDoc), 0o644))

		// Lint findings are warnings, not failures.
		err := RunValidate(Options{FilePath: path})
		assert.NoError(t, err)
	})

	t.Run("Duplicate Rule", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "machine.yaml")
		require.NoError(t, os.WriteFile(path, []byte(duplicateRuleDoc), 0o644))

		err := RunValidate(Options{FilePath: path})
		assert.ErrorContains(t, err, "definition error")
	})

	t.Run("Missing File", func(t *testing.T) {
		err := RunValidate(Options{FilePath: filepath.Join(t.TempDir(), "absent.yaml")})
		assert.Error(t, err)
	})
}
