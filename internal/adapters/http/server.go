// Package http exposes the simulation engine over a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/cinta"
	"github.com/aretw0/cinta/internal/presentation/graph"
	"github.com/aretw0/cinta/pkg/machine"
	"github.com/aretw0/cinta/pkg/runner"
)

// Engine defines the interface for the simulation core.
type Engine interface {
	Run(ctx context.Context, input string) (machine.RunResult, error)
	Table() *machine.Table
	MaxSteps() int
}

// Server exposes one compiled machine.
type Server struct {
	Engine Engine
	Batch  *runner.Runner
}

// NewHandler creates a new HTTP handler for the engine.
// A nil batch runner falls back to a default pool around the same engine.
func NewHandler(engine Engine, batch *runner.Runner) http.Handler {
	if batch == nil {
		batch = runner.New(engine)
	}
	server := &Server{Engine: engine, Batch: batch}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/machine", server.GetMachine)
	r.Get("/graph", server.GetGraph)
	r.Post("/run", server.Run)
	r.Post("/batch", server.RunBatch)
	r.Handle("/metrics", promhttp.Handler())

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RunRequest is the body of POST /run.
type RunRequest struct {
	Input string `json:"input"`
}

// BatchRequest is the body of POST /batch. Either asserted cases or raw
// inputs can be supplied; cases win when both are present.
type BatchRequest struct {
	Cases  []machine.Case `json:"cases,omitempty"`
	Inputs []string       `json:"inputs,omitempty"`
}

// BatchOutcome is the wire form of one finished case.
type BatchOutcome struct {
	Case       machine.Case       `json:"case"`
	Result     *machine.RunResult `json:"result,omitempty"`
	Cached     bool               `json:"cached,omitempty"`
	Mismatched bool               `json:"mismatched,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// BatchResponse is the body returned by POST /batch.
type BatchResponse struct {
	Outcomes []BatchOutcome `json:"outcomes"`
	Summary  runner.Summary `json:"summary"`
}

// MachineSummary describes the loaded machine.
type MachineSummary struct {
	Name         string           `json:"name"`
	Kind         machine.Kind     `json:"kind"`
	Fingerprint  string           `json:"fingerprint"`
	Initial      machine.State    `json:"initial"`
	Final        machine.State    `json:"final"`
	States       []machine.State  `json:"states"`
	Alphabet     []machine.Symbol `json:"alphabet"`
	TapeAlphabet []machine.Symbol `json:"tape_alphabet"`
	Rules        int              `json:"rules"`
	MaxSteps     int              `json:"max_steps"`
}

// Run handles the POST /run request.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Run: Invalid request body", "error", err)
		return
	}

	result, err := s.Engine.Run(r.Context(), body.Input)
	if err != nil {
		if errors.Is(err, machine.ErrInvalidInputSymbol) {
			http.Error(w, fmt.Sprintf("Invalid input: %v", err), http.StatusUnprocessableEntity)
			slog.Warn("Run: Input rejected", "error", err, "input", body.Input)
			return
		}
		http.Error(w, fmt.Sprintf("Run error: %v", err), http.StatusInternalServerError)
		slog.Error("Run failed", "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("Run response encode failed", "error", err)
	}
}

// RunBatch handles the POST /batch request.
func (s *Server) RunBatch(w http.ResponseWriter, r *http.Request) {
	var body BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("RunBatch: Invalid request body", "error", err)
		return
	}

	cases := body.Cases
	if len(cases) == 0 {
		for _, input := range body.Inputs {
			cases = append(cases, machine.Case{Input: input})
		}
	}

	outcomes, err := s.Batch.Run(r.Context(), cases)
	if err != nil {
		http.Error(w, fmt.Sprintf("Batch error: %v", err), http.StatusInternalServerError)
		slog.Error("RunBatch failed", "error", err)
		return
	}

	resp := BatchResponse{
		Outcomes: make([]BatchOutcome, len(outcomes)),
		Summary:  runner.Summarize(outcomes),
	}
	for i, o := range outcomes {
		wire := BatchOutcome{
			Case:       o.Case,
			Cached:     o.Cached,
			Mismatched: o.Mismatched(),
		}
		if o.Err != nil {
			wire.Error = o.Err.Error()
		} else {
			result := o.Result
			wire.Result = &result
		}
		resp.Outcomes[i] = wire
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("RunBatch response encode failed", "error", err)
	}
}

// GetMachine handles the GET /machine request.
func (s *Server) GetMachine(w http.ResponseWriter, r *http.Request) {
	table := s.Engine.Table()
	resp := MachineSummary{
		Name:         table.Name(),
		Kind:         table.Kind(),
		Fingerprint:  table.Fingerprint(),
		Initial:      table.Initial(),
		Final:        table.Final(),
		States:       table.States(),
		Alphabet:     table.Alphabet(),
		TapeAlphabet: table.TapeAlphabet(),
		Rules:        table.Len(),
		MaxSteps:     s.Engine.MaxSteps(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("GetMachine response encode failed", "error", err)
	}
}

// GetGraph handles the GET /graph request.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	format := graph.Format(r.URL.Query().Get("format"))

	diagram, err := graph.Generate(s.Engine.Table(), format)
	if err != nil {
		http.Error(w, fmt.Sprintf("Graph error: %v", err), http.StatusBadRequest)
		slog.Warn("GetGraph: Unknown format", "error", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, diagram)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"app":     "cinta-http",
		"version": strings.TrimSpace(cinta.Version),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
