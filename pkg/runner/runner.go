package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/cinta/pkg/machine"
	"github.com/aretw0/cinta/pkg/ports"
)

// Engine is the slice of the simulation facade the runner depends on.
// *cinta.Engine satisfies it.
type Engine interface {
	Run(ctx context.Context, input string) (machine.RunResult, error)
	Table() *machine.Table
	MaxSteps() int
}

// Runner fans a batch of cases out across a bounded worker pool.
// Every run shares the same immutable table, so cases are independent and
// their order of execution does not matter; the outcomes are still handed
// back in input order.
type Runner struct {
	// Workers is the number of concurrent executions. Values below 1 fall
	// back to DefaultWorkers.
	Workers int

	// Logger is used for internal debug logging. If nil, a no-op logger
	// is used.
	Logger *slog.Logger

	// Cache is consulted before running a case and updated after a fresh
	// run. If nil, every case is executed. Cache failures degrade to a
	// fresh run and never fail the case.
	Cache ports.VerdictCache

	// Journal records fresh runs after they halt. If nil, runs are not
	// recorded. Journal failures never fail the case.
	Journal ports.RunJournal

	engine Engine
}

// New creates a Runner around an engine.
func New(engine Engine, opts ...Option) *Runner {
	r := &Runner{
		Workers: DefaultWorkers,
		engine:  engine,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Workers < 1 {
		r.Workers = DefaultWorkers
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return r
}

// RunStrings is a convenience wrapper around Run for unasserted inputs.
func (r *Runner) RunStrings(ctx context.Context, inputs []string) ([]Outcome, error) {
	cases := make([]machine.Case, len(inputs))
	for i, in := range inputs {
		cases[i] = machine.Case{Input: in}
	}
	return r.Run(ctx, cases)
}

// Run executes every case and returns the outcomes in input order.
//
// A per-case failure, such as an input outside the machine's alphabet,
// never aborts the batch; it is reported on that case's outcome. Run
// itself returns an error only when the context is canceled, and the
// returned slice then still holds whatever finished before the abort,
// with the unfinished cases marked failed.
func (r *Runner) Run(ctx context.Context, cases []machine.Case) ([]Outcome, error) {
	if r.engine == nil {
		return nil, errors.New("an engine is required")
	}

	outcomes := make([]Outcome, len(cases))
	for i := range cases {
		outcomes[i] = Outcome{Case: cases[i]}
	}
	if len(cases) == 0 {
		return outcomes, nil
	}

	workers := r.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}
	if workers > len(cases) {
		workers = len(cases)
	}

	table := r.engine.Table()
	fingerprint := table.Fingerprint()
	name := table.Name()

	// Each worker owns the outcome slots it drains from the jobs channel,
	// so results land in input order without a collector.
	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					outcomes[i] = r.runCase(ctx, name, fingerprint, cases[i])
				}
			}
		}()
	}

feed:
	for i := range cases {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i := range outcomes {
			if outcomes[i].Err == nil && outcomes[i].Result.Verdict == "" {
				outcomes[i].Err = err
			}
		}
		return outcomes, err
	}

	s := Summarize(outcomes)
	r.Logger.DebugContext(ctx, "batch finished",
		"machine", name,
		"total", s.Total,
		"accepted", s.Accepted,
		"rejected", s.Rejected,
		"step_limit", s.StepLimited,
		"cached", s.Cached,
		"mismatched", s.Mismatched,
		"failed", s.Failed,
	)
	return outcomes, nil
}

func (r *Runner) runCase(ctx context.Context, name, fingerprint string, c machine.Case) Outcome {
	out := Outcome{Case: c}
	key := ports.RunKey{
		Fingerprint: fingerprint,
		Input:       c.Input,
		MaxSteps:    r.engine.MaxSteps(),
	}

	if r.Cache != nil {
		hit, err := r.Cache.Probe(ctx, key)
		switch {
		case err == nil:
			out.Result = *hit
			out.Cached = true
			r.Logger.DebugContext(ctx, "verdict served from cache",
				"input", c.Input, "verdict", hit.Verdict)
			return out
		case !errors.Is(err, machine.ErrRunNotCached):
			r.Logger.WarnContext(ctx, "verdict cache probe failed",
				"input", c.Input, "err", err)
		}
	}

	result, err := r.engine.Run(ctx, c.Input)
	if err != nil {
		out.Err = err
		return out
	}
	out.Result = result

	if r.Cache != nil {
		if err := r.Cache.Store(ctx, key, result); err != nil {
			r.Logger.WarnContext(ctx, "verdict cache store failed",
				"input", c.Input, "err", err)
		}
	}
	if r.Journal != nil {
		rec := machine.RunRecord{
			Machine:     name,
			Fingerprint: fingerprint,
			Input:       c.Input,
			Verdict:     result.Verdict,
			Steps:       result.Steps,
			Tape:        result.Tape,
			MaxSteps:    key.MaxSteps,
			CreatedAt:   time.Now().UTC(),
		}
		if err := r.Journal.Record(ctx, rec); err != nil {
			r.Logger.WarnContext(ctx, "run journal record failed",
				"input", c.Input, "err", err)
		}
	}
	return out
}
