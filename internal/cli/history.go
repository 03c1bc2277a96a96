package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/cinta/internal/logging"
	"github.com/aretw0/cinta/internal/presentation/tui"
	"github.com/aretw0/cinta/pkg/adapters/sqlite"
	"github.com/aretw0/cinta/pkg/machine"
)

// DefaultJournalPath is the conventional journal location shared by the
// 'run --journal' and 'history' commands.
const DefaultJournalPath = ".cinta/history.db"

// HistoryOptions contains the configuration for the 'history' command.
type HistoryOptions struct {
	Options
	JournalPath string
	Limit       int
	All         bool // list every machine instead of only the loaded one
}

// RunHistory lists recorded runs from the journal, newest first. By default
// it shows only runs of the machine file at hand; --all lifts the filter.
func RunHistory(opts HistoryOptions) error {
	journal, err := sqlite.Open(opts.JournalPath)
	if err != nil {
		return err
	}
	defer journal.Close()

	ctx := context.Background()
	var records []machine.RunRecord
	if opts.All {
		records, err = journal.Recent(ctx, opts.Limit)
	} else {
		engine, engErr := createEngine(opts.Options, logging.NewNop())
		if engErr != nil {
			return engErr
		}
		records, err = journal.RecentFor(ctx, engine.Table().Fingerprint(), opts.Limit)
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		printSystemMessage("No recorded runs.")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%s  %-12s %10q  %s (steps=%d)\n",
			rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Machine,
			rec.Input,
			tui.FormatVerdict(rec.Verdict),
			rec.Steps,
		)
	}
	return nil
}
