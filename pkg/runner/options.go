package runner

import (
	"log/slog"

	"github.com/aretw0/cinta/pkg/ports"
)

// DefaultWorkers is the default number of concurrent executions per batch.
// One worker means serial execution, which keeps side effects (journal
// appends, trace output) in input order. Callers opt in to parallelism
// with WithWorkers.
const DefaultWorkers = 1

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithWorkers sets the number of concurrent executions.
// Values below 1 fall back to DefaultWorkers.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.Workers = n
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithCache configures the verdict cache consulted before each run.
func WithCache(cache ports.VerdictCache) Option {
	return func(r *Runner) {
		r.Cache = cache
	}
}

// WithJournal configures the journal that records fresh runs.
func WithJournal(journal ports.RunJournal) Option {
	return func(r *Runner) {
		r.Journal = journal
	}
}
