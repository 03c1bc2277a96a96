package cinta

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/cinta/internal/runtime"
	"github.com/aretw0/cinta/pkg/adapters/yamlfile"
	"github.com/aretw0/cinta/pkg/machine"
	"github.com/aretw0/cinta/pkg/ports"
)

// Engine is the high-level entry point for the Cinta library.
// It owns one compiled machine and provides a simplified API for consumers.
// The compiled table is immutable, so a single Engine may serve concurrent
// Run calls; each run keeps its tape and head to itself.
type Engine struct {
	table    *machine.Table
	def      *machine.Definition
	loader   ports.DefinitionLoader
	maxSteps int
	hooks    *machine.LifecycleHooks
	logger   *slog.Logger
	Name     string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks fired inside every run.
func WithLifecycleHooks(hooks *machine.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom DefinitionLoader, bypassing the default YAML
// file loading.
func WithLoader(l ports.DefinitionLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxSteps overrides the step bound for every run started through this
// engine. Values below one fall back to the loader's bound, then to
// machine.DefaultMaxSteps.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// New compiles def into an engine. Definition defects surface immediately as
// an *machine.AggregateError; a partially-valid engine is never returned.
func New(def *machine.Definition, opts ...Option) (*Engine, error) {
	eng := &Engine{def: def}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.def == nil && eng.loader != nil {
		loaded, err := eng.loader.Definition()
		if err != nil {
			return nil, fmt.Errorf("failed to load definition: %w", err)
		}
		eng.def = loaded
	}
	if eng.def == nil {
		return nil, machine.ErrNoDefinition
	}

	table, err := machine.NewTable(eng.def)
	if err != nil {
		return nil, err
	}
	eng.table = table

	if eng.Name == "" {
		eng.Name = eng.def.Name
	}
	eng.finishSetup()
	return eng, nil
}

// Load initializes an engine from the machine file at path using the default
// YAML loader. If the WithLoader option is provided, path may be empty and
// the file is never touched.
func Load(path string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no custom loader is provided")
		}
		loader, err := yamlfile.New(path)
		if err != nil {
			return nil, err
		}
		eng.loader = loader
	}

	def, err := eng.loader.Definition()
	if err != nil {
		return nil, fmt.Errorf("failed to load definition: %w", err)
	}
	eng.def = def

	table, err := machine.NewTable(def)
	if err != nil {
		return nil, err
	}
	eng.table = table

	if eng.Name == "" {
		eng.Name = def.Name
	}
	if eng.Name == "" && path != "" {
		eng.Name = filepath.Base(path)
	}
	eng.finishSetup()
	return eng, nil
}

// finishSetup resolves the logger and the effective step bound after the
// definition is compiled.
func (e *Engine) finishSetup() {
	if e.logger == nil {
		e.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if e.Name != "" {
		e.logger = e.logger.With("machine", e.Name)
	}
	if e.maxSteps <= 0 {
		if bounded, ok := e.loader.(ports.StepBounded); ok {
			e.maxSteps = bounded.MaxSteps()
		}
	}
	if e.maxSteps <= 0 {
		e.maxSteps = machine.DefaultMaxSteps
	}
}

// Run executes one input word to its terminal verdict.
//
// The input is validated against the alphabet first; an out-of-alphabet
// symbol fails with machine.ErrInvalidInputSymbol and no steps are taken.
// The error is otherwise non-nil only when ctx is canceled mid-run.
func (e *Engine) Run(ctx context.Context, input string) (machine.RunResult, error) {
	exec, err := runtime.NewExecution(e.table, input, runtime.Config{
		MaxSteps: e.maxSteps,
		Hooks:    e.hooks,
		Logger:   e.logger,
	})
	if err != nil {
		return machine.RunResult{}, err
	}
	return exec.Run(ctx)
}

// Cases returns the simulation cases bundled with the machine source.
// Returns nil when the loader has none to offer.
func (e *Engine) Cases() ([]machine.Case, error) {
	if cl, ok := e.loader.(ports.CaseLoader); ok {
		return cl.Cases()
	}
	return nil, nil
}

// Table returns the compiled transition table for introspection and
// visualization tools (e.g. 'cinta graph').
func (e *Engine) Table() *machine.Table {
	return e.table
}

// Definition returns the definition the engine was built from.
func (e *Engine) Definition() *machine.Definition {
	return e.def
}

// MaxSteps returns the effective step bound applied to runs.
func (e *Engine) MaxSteps() int {
	return e.maxSteps
}

// Loader returns the underlying DefinitionLoader used by the engine.
func (e *Engine) Loader() ports.DefinitionLoader {
	return e.loader
}
