package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/cinta/pkg/machine"
	"github.com/aretw0/cinta/pkg/ports"
)

// VerdictCacheContractTest is a reusable test suite that verifies if an adapter complies with ports.VerdictCache.
// It expects an empty cache.
func VerdictCacheContractTest(t *testing.T, cache ports.VerdictCache) {
	t.Helper()

	ctx := context.Background()
	key := ports.RunKey{Fingerprint: "c0ffee", Input: "abba", MaxSteps: 500}
	result := machine.RunResult{
		Verdict: machine.VerdictAccepted,
		Steps:   5,
		State:   "qf",
		Tape:    "abba",
		Head:    5,
	}

	// 1. Test Probe (Miss)
	t.Run("Probe_Miss", func(t *testing.T) {
		if _, err := cache.Probe(ctx, key); !errors.Is(err, machine.ErrRunNotCached) {
			t.Fatalf("expected ErrRunNotCached for an empty cache, got %v", err)
		}
	})

	// 2. Test Store then Probe (Hit)
	t.Run("Store_Then_Probe", func(t *testing.T) {
		if err := cache.Store(ctx, key, result); err != nil {
			t.Fatalf("unexpected error storing result: %v", err)
		}

		got, err := cache.Probe(ctx, key)
		if err != nil {
			t.Fatalf("unexpected error probing stored key: %v", err)
		}
		if *got != result {
			t.Errorf("result mismatch. got %+v, want %+v", *got, result)
		}
	})

	// 3. Test key separation
	t.Run("Distinct_Bound_Misses", func(t *testing.T) {
		// The same input under a different step bound is a different run.
		other := key
		other.MaxSteps = 100

		if _, err := cache.Probe(ctx, other); !errors.Is(err, machine.ErrRunNotCached) {
			t.Errorf("expected ErrRunNotCached for a different bound, got %v", err)
		}
	})
}

// RunJournalContractTest is a reusable test suite that verifies if an adapter complies with ports.RunJournal.
// It expects an empty journal.
func RunJournalContractTest(t *testing.T, journal ports.RunJournal) {
	t.Helper()

	ctx := context.Background()
	records := []machine.RunRecord{
		{Machine: "even-a", Fingerprint: "c0ffee", Input: "aa", Verdict: machine.VerdictAccepted, Steps: 3, Tape: "aa", MaxSteps: 500, CreatedAt: time.Now().Add(-time.Minute)},
		{Machine: "even-a", Fingerprint: "c0ffee", Input: "a", Verdict: machine.VerdictRejected, Steps: 2, Tape: "a", MaxSteps: 500, CreatedAt: time.Now()},
	}

	// 1. Test Record
	t.Run("Record", func(t *testing.T) {
		for _, rec := range records {
			if err := journal.Record(ctx, rec); err != nil {
				t.Fatalf("unexpected error recording run %q: %v", rec.Input, err)
			}
		}
	})

	// 2. Test Recent ordering
	t.Run("Recent_Newest_First", func(t *testing.T) {
		got, err := journal.Recent(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error reading recent runs: %v", err)
		}
		if len(got) != len(records) {
			t.Fatalf("expected %d records, got %d", len(records), len(got))
		}
		if got[0].Input != "a" || got[1].Input != "aa" {
			t.Errorf("expected newest first ordering, got %q then %q", got[0].Input, got[1].Input)
		}
		if got[0].Verdict != machine.VerdictRejected {
			t.Errorf("expected verdict to round-trip, got %q", got[0].Verdict)
		}
	})

	// 3. Test Recent limit
	t.Run("Recent_Honors_Limit", func(t *testing.T) {
		got, err := journal.Recent(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error reading recent runs: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 record, got %d", len(got))
		}
	})
}
