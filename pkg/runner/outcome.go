package runner

import "github.com/aretw0/cinta/pkg/machine"

// Outcome pairs a simulation case with its terminal result.
type Outcome struct {
	Case   machine.Case      `json:"case"`
	Result machine.RunResult `json:"result"`

	// Cached marks a result served from the verdict cache instead of a
	// fresh run.
	Cached bool `json:"cached,omitempty"`

	// Err is set when the case could not be executed at all, typically
	// because the input contains a symbol outside the input alphabet.
	Err error `json:"-"`
}

// Mismatched reports whether an asserted case finished with a verdict other
// than the expected one. Unasserted and failed cases never mismatch.
func (o Outcome) Mismatched() bool {
	return o.Err == nil && o.Case.Asserted() && o.Result.Verdict != o.Case.Expect
}

// Summary aggregates the outcomes of a finished batch.
type Summary struct {
	Total       int `json:"total"`
	Accepted    int `json:"accepted"`
	Rejected    int `json:"rejected"`
	StepLimited int `json:"step_limit_exceeded"`
	Mismatched  int `json:"mismatched"`
	Failed      int `json:"failed"`
	Cached      int `json:"cached"`
}

// Clean reports whether every case ran and every assertion held.
func (s Summary) Clean() bool {
	return s.Failed == 0 && s.Mismatched == 0
}

// Summarize folds a batch of outcomes into aggregate counts.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Err != nil {
			s.Failed++
			continue
		}
		switch o.Result.Verdict {
		case machine.VerdictAccepted:
			s.Accepted++
		case machine.VerdictRejected:
			s.Rejected++
		case machine.VerdictStepLimitExceeded:
			s.StepLimited++
		}
		if o.Cached {
			s.Cached++
		}
		if o.Mismatched() {
			s.Mismatched++
		}
	}
	return s
}
