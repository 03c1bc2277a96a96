package machine

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart EventType = "run_start"
	EventStep     EventType = "step"
	EventHalt     EventType = "halt"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Machine   string    `json:"machine,omitempty"`
}

// RunEvent marks the start or end of a single run.
type RunEvent struct {
	EventBase
	Input   string  `json:"input"`
	Verdict Verdict `json:"verdict,omitempty"` // set on halt only
	Steps   int     `json:"steps"`
}

// StepEvent is an instant description: the full configuration of the machine
// before one transition fires.
//
// Tape renders the written region widened to include the head, so the head
// cell is always present. TapeLo is the absolute position of Tape's first
// cell; the head symbol sits at Tape[Head-TapeLo].
type StepEvent struct {
	EventBase
	Step   int    `json:"step"`
	State  State  `json:"state"`
	Read   Symbol `json:"read"`
	Action Action `json:"action"`
	Head   int    `json:"head"`
	Tape   string `json:"tape"`
	TapeLo int    `json:"tape_lo"`
}

// LifecycleHooks defines callbacks for engine observability.
//
// Hooks run synchronously inside the step loop; keep them cheap. A nil hook
// is skipped, and a nil *LifecycleHooks disables tracing entirely.
type LifecycleHooks struct {
	OnRunStart func(context.Context, *RunEvent)
	OnStep     func(context.Context, *StepEvent)
	OnHalt     func(context.Context, *RunEvent)
}

// JoinHooks fans events out to several hook sets in declaration order.
// Nil sets are dropped; joining zero sets yields nil and a single set is
// returned as is.
func JoinHooks(hooks ...*LifecycleHooks) *LifecycleHooks {
	live := make([]*LifecycleHooks, 0, len(hooks))
	for _, h := range hooks {
		if h != nil {
			live = append(live, h)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}

	return &LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *RunEvent) {
			for _, h := range live {
				if h.OnRunStart != nil {
					h.OnRunStart(ctx, e)
				}
			}
		},
		OnStep: func(ctx context.Context, e *StepEvent) {
			for _, h := range live {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnHalt: func(ctx context.Context, e *RunEvent) {
			for _, h := range live {
				if h.OnHalt != nil {
					h.OnHalt(ctx, e)
				}
			}
		},
	}
}
