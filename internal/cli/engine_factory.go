package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/cinta"
	"github.com/aretw0/cinta/pkg/machine"
)

// createEngine initializes a Cinta engine with standard CLI conventions.
func createEngine(opts Options, logger *slog.Logger, hooks ...*machine.LifecycleHooks) (*cinta.Engine, error) {
	engineOpts := []cinta.Option{cinta.WithLogger(logger)}

	if opts.MaxSteps > 0 {
		engineOpts = append(engineOpts, cinta.WithMaxSteps(opts.MaxSteps))
	}
	if joined := machine.JoinHooks(hooks...); joined != nil {
		engineOpts = append(engineOpts, cinta.WithLifecycleHooks(joined))
	}

	engine, err := cinta.Load(opts.FilePath, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
