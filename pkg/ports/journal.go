package ports

import (
	"context"

	"github.com/aretw0/cinta/pkg/machine"
)

// RunJournal defines the interface for appending completed runs to a durable
// history. Journals are write-mostly; Recent exists for inspection tools.
type RunJournal interface {
	// Record appends one completed run.
	Record(ctx context.Context, rec machine.RunRecord) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]machine.RunRecord, error)
}
