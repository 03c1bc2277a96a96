package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/aretw0/cinta/pkg/machine"
)

// TraceHooks returns lifecycle hooks that print one instant description per
// step: the tape left of the head, the bracketed control state, the head
// symbol and the tape to its right. A nil writer disables tracing.
func TraceHooks(w io.Writer) *machine.LifecycleHooks {
	if w == nil {
		return nil
	}
	p := termenv.ColorProfile()
	return &machine.LifecycleHooks{
		OnRunStart: func(_ context.Context, e *machine.RunEvent) {
			fmt.Fprintln(w, termenv.String("Input String: "+e.Input).Foreground(p.Color("#3b82f6")).String())
		},
		OnStep: func(_ context.Context, e *machine.StepEvent) {
			fmt.Fprintln(w, formatStep(p, e))
		},
	}
}

func formatStep(p termenv.Profile, e *machine.StepEvent) string {
	left, head, right := splitTape(e.Tape, e.Head-e.TapeLo)
	state := termenv.String("[").Foreground(p.Color("#eab308")).Bold().String() +
		termenv.String(string(e.State)).Foreground(p.Color("#d946ef")).String() +
		termenv.String("]").Foreground(p.Color("#eab308")).Bold().String()
	return fmt.Sprintf("\t꜔  %s %s %s, %s", left, state, head, right)
}

// splitTape cuts the rendered window at the head cell. An out-of-window
// index means the head sits on an unwritten cell; render it as blank.
func splitTape(tape string, idx int) (left, head, right string) {
	cells := []rune(tape)
	if idx < 0 || idx >= len(cells) {
		return tape, string(machine.Blank), ""
	}
	return string(cells[:idx]), string(cells[idx]), string(cells[idx+1:])
}
