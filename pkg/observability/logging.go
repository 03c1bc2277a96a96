package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/cinta/pkg/machine"
)

// LoggingHooks emits one log line per lifecycle event.
//
// Runs log at info level, individual steps at debug so a full trace can be
// switched on without recompiling anything.
func LoggingHooks(logger *slog.Logger) *machine.LifecycleHooks {
	if logger == nil {
		return nil
	}

	return &machine.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *machine.RunEvent) {
			logger.InfoContext(ctx, "run_start",
				"machine", e.Machine,
				"input", e.Input,
			)
		},
		OnStep: func(ctx context.Context, e *machine.StepEvent) {
			logger.DebugContext(ctx, "step",
				"machine", e.Machine,
				"step", e.Step,
				"state", e.State,
				"read", e.Read,
				"next", e.Action.Next,
				"write", e.Action.Write,
				"move", e.Action.Move,
				"head", e.Head,
			)
		},
		OnHalt: func(ctx context.Context, e *machine.RunEvent) {
			logger.InfoContext(ctx, "halt",
				"machine", e.Machine,
				"input", e.Input,
				"verdict", e.Verdict,
				"steps", e.Steps,
			)
		},
	}
}
