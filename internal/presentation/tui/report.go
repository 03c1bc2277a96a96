package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/cinta/pkg/machine"
	"github.com/aretw0/cinta/pkg/runner"
)

// FormatVerdict colors a verdict for terminal output.
func FormatVerdict(v machine.Verdict) string {
	p := termenv.ColorProfile()
	switch v {
	case machine.VerdictAccepted:
		return termenv.String("ACCEPTED").Foreground(p.Color("#22c55e")).Bold().String()
	case machine.VerdictRejected:
		return termenv.String("REJECTED").Foreground(p.Color("#ef4444")).Bold().String()
	case machine.VerdictStepLimitExceeded:
		return termenv.String("STEP LIMIT").Foreground(p.Color("#eab308")).Bold().String()
	default:
		return string(v)
	}
}

// FormatOutcome renders one report line for a finished case.
// The final tape is shown only when the run changed it.
func FormatOutcome(o runner.Outcome) string {
	if o.Err != nil {
		p := termenv.ColorProfile()
		tag := termenv.String("ERROR").Foreground(p.Color("#ef4444")).Bold().String()
		return fmt.Sprintf("%10q  %s %v", o.Case.Input, tag, o.Err)
	}

	line := fmt.Sprintf("%10q  %s (steps=%d)", o.Case.Input, FormatVerdict(o.Result.Verdict), o.Result.Steps)
	if o.Result.Tape != o.Case.Input {
		line += fmt.Sprintf(" tape=%q", o.Result.Tape)
	}
	if o.Cached {
		line += " [cached]"
	}
	if o.Mismatched() {
		line += fmt.Sprintf("  expected %s", o.Case.Expect)
	}
	return line
}

// FormatSummary renders the aggregate footer of a batch report.
// Zero-valued failure counters are left out to keep the happy path short.
func FormatSummary(s runner.Summary) string {
	parts := []string{
		fmt.Sprintf("total=%d", s.Total),
		fmt.Sprintf("accepted=%d", s.Accepted),
		fmt.Sprintf("rejected=%d", s.Rejected),
	}
	if s.StepLimited > 0 {
		parts = append(parts, fmt.Sprintf("step_limit=%d", s.StepLimited))
	}
	if s.Cached > 0 {
		parts = append(parts, fmt.Sprintf("cached=%d", s.Cached))
	}
	if s.Mismatched > 0 {
		parts = append(parts, fmt.Sprintf("mismatched=%d", s.Mismatched))
	}
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("failed=%d", s.Failed))
	}
	return strings.Join(parts, " ")
}
