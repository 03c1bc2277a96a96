package cli

import (
	"fmt"
	"os"
	"path/filepath"
)

// starterDoc is the scaffold written by 'cinta init': a small recognizer for
// words with an even number of a's, with a few bundled simulation cases.
const starterDoc = `name: even-a
kind: recognizer
q_states:
  q_list: [q0, q1, qf]
  initial: q0
  final: qf
alphabet: [a, b]
tape_alphabet: [a, b, _]
max_steps: 500
delta:
  - params: {initial_state: q0, tape_input: a}
    output: {final_state: q1, tape_output: a, tape_displacement: R}
  - params: {initial_state: q0, tape_input: b}
    output: {final_state: q0, tape_output: b, tape_displacement: R}
  - params: {initial_state: q1, tape_input: a}
    output: {final_state: q0, tape_output: a, tape_displacement: R}
  - params: {initial_state: q1, tape_input: b}
    output: {final_state: q1, tape_output: b, tape_displacement: R}
  - params: {initial_state: q0, tape_input: null}
    output: {final_state: qf, tape_output: null, tape_displacement: R}
simulation_cases:
  - {input: "", expect: accepted}
  - {input: aa, expect: accepted}
  - {input: aba, expect: rejected}
  - {input: abba, expect: accepted}
`

// InitOptions contains the configuration for the 'init' command.
type InitOptions struct {
	Dir string
}

// RunInit scaffolds a runnable machine file so 'cinta run' works right away.
// It refuses to overwrite an existing file.
func RunInit(opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, "machine.yaml")

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(starterDoc), 0o644); err != nil {
		return fmt.Errorf("failed to write scaffold: %w", err)
	}

	printSystemMessage("Machine scaffold written to %s", path)
	printSystemMessage("Try: cinta run -f %s", path)
	return nil
}
