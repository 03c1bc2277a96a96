package machine

import "time"

// RunRecord is the journal entry persisted for one completed run. Journals
// keep them for history inspection; the engine itself never reads them back.
type RunRecord struct {
	ID          int64     `json:"id,omitempty"`
	Machine     string    `json:"machine,omitempty"`
	Fingerprint string    `json:"fingerprint"`
	Input       string    `json:"input"`
	Verdict     Verdict   `json:"verdict"`
	Steps       int       `json:"steps"`
	Tape        string    `json:"tape"`
	MaxSteps    int       `json:"max_steps"`
	CreatedAt   time.Time `json:"created_at"`
}
