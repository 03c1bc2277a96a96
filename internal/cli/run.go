package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/cinta/internal/presentation/tui"
	"github.com/aretw0/cinta/pkg/adapters/redis"
	"github.com/aretw0/cinta/pkg/adapters/sqlite"
	"github.com/aretw0/cinta/pkg/machine"
	"github.com/aretw0/cinta/pkg/runner"
)

// RunOptions contains all the configuration for the 'run' command.
type RunOptions struct {
	Options
	Inputs      []string // words from the command line; empty uses the file's cases
	Workers     int
	Trace       bool
	JSON        bool
	RedisAddr   string // verdict cache address; empty disables caching
	JournalPath string // sqlite journal path; empty disables history
}

// batchReport is the JSON shape of one finished batch.
type batchReport struct {
	Outcomes []caseReport   `json:"outcomes"`
	Summary  runner.Summary `json:"summary"`
}

type caseReport struct {
	runner.Outcome
	Mismatched bool   `json:"mismatched,omitempty"`
	Error      string `json:"error,omitempty"`
}

// RunBatch executes the machine over a batch of inputs and reports per-case
// verdicts plus a summary. A mismatch or failure makes the command fail.
func RunBatch(opts RunOptions) error {
	logger, closer, err := createLogger(opts.Options)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	if !opts.JSON {
		tui.PrintBanner()
	}

	// Tracing writes one instant description per step to stdout, so the
	// batch must run serially to keep descriptions grouped per case.
	var hooks []*machine.LifecycleHooks
	if opts.Trace {
		hooks = append(hooks, tui.TraceHooks(os.Stdout))
		opts.Workers = 1
	}

	engine, err := createEngine(opts.Options, logger, hooks...)
	if err != nil {
		return err
	}

	cases, err := resolveCases(engine, opts.Inputs)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		return fmt.Errorf("no inputs: pass words as arguments or declare simulation_strings in %s", opts.FilePath)
	}

	runnerOpts := []runner.Option{runner.WithLogger(logger)}
	if opts.Workers > 0 {
		runnerOpts = append(runnerOpts, runner.WithWorkers(opts.Workers))
	}
	if opts.RedisAddr != "" {
		cache := redis.New(opts.RedisAddr, "", 0)
		defer cache.Close()
		runnerOpts = append(runnerOpts, runner.WithCache(cache))
	}
	if opts.JournalPath != "" {
		journal, err := sqlite.Open(opts.JournalPath)
		if err != nil {
			return err
		}
		defer journal.Close()
		runnerOpts = append(runnerOpts, runner.WithJournal(journal))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcomes, runErr := runner.New(engine, runnerOpts...).Run(ctx, cases)
	summary := runner.Summarize(outcomes)

	if err := report(os.Stdout, outcomes, summary, opts.JSON); err != nil {
		return err
	}

	if runErr != nil {
		if isInterrupted(runErr) && !opts.JSON {
			printSystemMessage("Interrupted after %d of %d cases.", summary.Total-summary.Failed, summary.Total)
		}
		return handleExecutionError(runErr)
	}
	if !summary.Clean() {
		return fmt.Errorf("%d of %d cases failed", summary.Mismatched+summary.Failed, summary.Total)
	}
	return nil
}

func report(w io.Writer, outcomes []runner.Outcome, summary runner.Summary, asJSON bool) error {
	if asJSON {
		rep := batchReport{Outcomes: make([]caseReport, len(outcomes)), Summary: summary}
		for i, o := range outcomes {
			rep.Outcomes[i] = caseReport{Outcome: o, Mismatched: o.Mismatched()}
			if o.Err != nil {
				rep.Outcomes[i].Error = o.Err.Error()
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	for _, o := range outcomes {
		fmt.Fprintln(w, tui.FormatOutcome(o))
	}
	fmt.Fprintln(w, tui.FormatSummary(summary))
	return nil
}
