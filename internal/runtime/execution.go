// Package runtime drives a compiled machine over a tape until it halts.
package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/cinta/pkg/machine"
	"github.com/aretw0/cinta/pkg/tape"
)

// Config carries the optional knobs of one execution. The zero value uses
// the default step bound, no hooks and a silent logger.
type Config struct {
	// MaxSteps bounds the number of applied transitions. Zero or negative
	// falls back to machine.DefaultMaxSteps.
	MaxSteps int

	// Hooks receives lifecycle events synchronously. Nil disables tracing.
	Hooks *machine.LifecycleHooks

	// Logger receives debug lines for run boundaries. Nil discards.
	Logger *slog.Logger
}

// Execution is the mutable state of a single run: tape, head, control state
// and step counter. It is owned by exactly one goroutine; the compiled table
// it references is immutable and may be shared freely.
type Execution struct {
	table *machine.Table
	tape  *tape.Tape
	head  int
	state machine.State
	steps int
	input string

	maxSteps int
	hooks    *machine.LifecycleHooks
	logger   *slog.Logger
}

// NewExecution validates input against the table's alphabet and prepares a
// run positioned on the first input cell.
//
// An out-of-alphabet symbol fails here with an error matching
// machine.ErrInvalidInputSymbol; no partial run is ever attempted.
func NewExecution(table *machine.Table, input string, cfg Config) (*Execution, error) {
	if table == nil {
		return nil, fmt.Errorf("new execution: %w", machine.ErrNoDefinition)
	}
	symbols, err := table.ParseInput(input)
	if err != nil {
		return nil, err
	}

	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = machine.DefaultMaxSteps
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return &Execution{
		table:    table,
		tape:     tape.Load(symbols),
		state:    table.Initial(),
		input:    input,
		maxSteps: maxSteps,
		hooks:    cfg.Hooks,
		logger:   logger,
	}, nil
}

// Run executes the machine until it halts, exhausts the step bound or the
// context is canceled.
//
// The loop checks acceptance before consuming a step, so reaching the final
// state by any path is enough and costs no step of its own. A missing
// transition halts with VerdictRejected. The error is non-nil only on
// cancellation; verdicts, including the step limit, are results.
func (x *Execution) Run(ctx context.Context) (machine.RunResult, error) {
	x.logger.DebugContext(ctx, "run starting",
		"machine", x.table.Name(),
		"input", x.input,
		"max_steps", x.maxSteps,
	)
	x.fireRunStart(ctx)

	for {
		select {
		case <-ctx.Done():
			return machine.RunResult{}, fmt.Errorf("run aborted after %d steps: %w", x.steps, ctx.Err())
		default:
		}

		if x.table.IsFinal(x.state) {
			return x.halt(ctx, machine.VerdictAccepted), nil
		}
		if x.steps >= x.maxSteps {
			return x.halt(ctx, machine.VerdictStepLimitExceeded), nil
		}

		read := x.tape.Read(x.head)
		action, ok := x.table.Lookup(x.state, read)
		if !ok {
			return x.halt(ctx, machine.VerdictRejected), nil
		}

		x.fireStep(ctx, read, action)

		x.tape.Write(x.head, action.Write)
		x.head += action.Move.Delta()
		x.state = action.Next
		x.steps++
	}
}

// State returns the current control state.
func (x *Execution) State() machine.State { return x.state }

// Steps returns the number of transitions applied so far.
func (x *Execution) Steps() int { return x.steps }

func (x *Execution) halt(ctx context.Context, v machine.Verdict) machine.RunResult {
	result := machine.RunResult{
		Verdict: v,
		Steps:   x.steps,
		State:   x.state,
		Tape:    x.tape.Snapshot(),
		Head:    x.head,
	}
	x.logger.DebugContext(ctx, "run halted",
		"machine", x.table.Name(),
		"input", x.input,
		"verdict", string(v),
		"steps", x.steps,
	)
	x.fireHalt(ctx, result)
	return result
}

func (x *Execution) fireRunStart(ctx context.Context) {
	if x.hooks == nil || x.hooks.OnRunStart == nil {
		return
	}
	x.hooks.OnRunStart(ctx, &machine.RunEvent{
		EventBase: machine.EventBase{Timestamp: time.Now(), Type: machine.EventRunStart, Machine: x.table.Name()},
		Input:     x.input,
	})
}

func (x *Execution) fireStep(ctx context.Context, read machine.Symbol, action machine.Action) {
	if x.hooks == nil || x.hooks.OnStep == nil {
		return
	}
	lo, hi, ok := x.tape.Extent()
	if !ok {
		lo, hi = x.head, x.head
	}
	if x.head < lo {
		lo = x.head
	}
	if x.head > hi {
		hi = x.head
	}
	x.hooks.OnStep(ctx, &machine.StepEvent{
		EventBase: machine.EventBase{Timestamp: time.Now(), Type: machine.EventStep, Machine: x.table.Name()},
		Step:      x.steps,
		State:     x.state,
		Read:      read,
		Action:    action,
		Head:      x.head,
		Tape:      x.tape.Window(lo, hi),
		TapeLo:    lo,
	})
}

func (x *Execution) fireHalt(ctx context.Context, result machine.RunResult) {
	if x.hooks == nil || x.hooks.OnHalt == nil {
		return
	}
	x.hooks.OnHalt(ctx, &machine.RunEvent{
		EventBase: machine.EventBase{Timestamp: time.Now(), Type: machine.EventHalt, Machine: x.table.Name()},
		Input:     x.input,
		Verdict:   result.Verdict,
		Steps:     result.Steps,
	})
}
