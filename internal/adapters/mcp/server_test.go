package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aretw0/cinta"
	"github.com/aretw0/cinta/pkg/machine"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	def := &machine.Definition{
		Name:         "even-a",
		States:       []machine.State{"q0", "q1", "qf"},
		Initial:      "q0",
		Final:        "qf",
		Alphabet:     []machine.Symbol{"a", "b"},
		TapeAlphabet: []machine.Symbol{"a", "b", "_"},
		Rules: []machine.Rule{
			{When: machine.RuleKey{State: "q0", Symbol: "a"}, Then: machine.Action{Next: "q1", Write: "a", Move: machine.MoveRight}},
			{When: machine.RuleKey{State: "q0", Symbol: "b"}, Then: machine.Action{Next: "q0", Write: "b", Move: machine.MoveRight}},
			{When: machine.RuleKey{State: "q1", Symbol: "a"}, Then: machine.Action{Next: "q0", Write: "a", Move: machine.MoveRight}},
			{When: machine.RuleKey{State: "q1", Symbol: "b"}, Then: machine.Action{Next: "q1", Write: "b", Move: machine.MoveRight}},
			{When: machine.RuleKey{State: "q0", Symbol: "_"}, Then: machine.Action{Next: "qf", Write: "_", Move: machine.MoveRight}},
		},
	}

	eng, err := cinta.New(def)
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}
	return NewServer(eng)
}

func TestHandleRunInput(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleRunInput(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"input": "abba"})
	if err != nil {
		t.Fatalf("handleRunInput failed: %v", err)
	}
	if result.Verdict != machine.VerdictAccepted {
		t.Errorf("expected accepted, got %q", result.Verdict)
	}
	if result.Steps != 5 {
		t.Errorf("expected 5 steps, got %d", result.Steps)
	}
}

func TestHandleRunInput_InvalidSymbol(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleRunInput(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"input": "ax"})
	if !errors.Is(err, machine.ErrInvalidInputSymbol) {
		t.Fatalf("expected ErrInvalidInputSymbol, got %v", err)
	}
}

func TestHandleMachineSummary(t *testing.T) {
	s := newTestServer(t)

	summary, err := s.handleMachineSummary(context.Background(), mcp.CallToolRequest{}, nil)
	if err != nil {
		t.Fatalf("handleMachineSummary failed: %v", err)
	}
	if summary.Name != "even-a" {
		t.Errorf("expected machine name even-a, got %q", summary.Name)
	}
	if summary.Rules != 5 {
		t.Errorf("expected 5 rules, got %d", summary.Rules)
	}
	if len(summary.Fingerprint) != 64 {
		t.Errorf("expected a sha256 hex fingerprint, got %q", summary.Fingerprint)
	}
	if summary.MaxSteps != machine.DefaultMaxSteps {
		t.Errorf("expected default step bound, got %d", summary.MaxSteps)
	}
}

func TestSummaryKindDefaultsToRecognizer(t *testing.T) {
	s := newTestServer(t)

	if got := s.summary().Kind; got != machine.KindRecognizer {
		t.Errorf("expected recognizer kind, got %q", got)
	}
}
