package machine

import "fmt"

// Verdict is the terminal outcome of a single run.
type Verdict string

const (
	// VerdictAccepted means the machine reached the final state.
	VerdictAccepted Verdict = "accepted"
	// VerdictRejected means the machine halted in a non-final state because
	// no transition matched the observed (state, symbol) pair.
	VerdictRejected Verdict = "rejected"
	// VerdictStepLimitExceeded means the run was abandoned after the step
	// bound without halting. It carries no information about membership.
	VerdictStepLimitExceeded Verdict = "step_limit_exceeded"
)

// ParseVerdict converts a raw verdict token, as found in case files and
// journals, into a Verdict.
func ParseVerdict(raw string) (Verdict, error) {
	switch Verdict(raw) {
	case VerdictAccepted, VerdictRejected, VerdictStepLimitExceeded:
		return Verdict(raw), nil
	default:
		return "", fmt.Errorf("unknown verdict %q", raw)
	}
}

// Halting reports whether the verdict comes from an actual halt. The step
// limit verdict is a refusal to keep running, not a halt.
func (v Verdict) Halting() bool {
	return v == VerdictAccepted || v == VerdictRejected
}

// RunResult is the outcome of executing one input against a table.
type RunResult struct {
	// Verdict is the terminal outcome.
	Verdict Verdict `json:"verdict"`

	// Steps is the number of transitions applied before halting or giving
	// up. Reaching the final state costs no step of its own.
	Steps int `json:"steps"`

	// State is the control state the run ended in.
	State State `json:"state"`

	// Tape is the trimmed snapshot of the written tape region at the end
	// of the run. For transformer machines this is the program's output.
	Tape string `json:"tape"`

	// Head is the final head position relative to the first input cell.
	Head int `json:"head"`
}

// Case pairs an input string with an optional expected verdict, as supplied
// by batch case loaders.
type Case struct {
	// Input is the raw word to simulate.
	Input string `json:"input" yaml:"input"`

	// Expect is the verdict the author of the case anticipates. Empty means
	// unasserted; the driver then reports the observed verdict only.
	Expect Verdict `json:"expect,omitempty" yaml:"expect,omitempty"`
}

// Asserted reports whether the case carries an expectation to check.
func (c Case) Asserted() bool { return c.Expect != "" }
