package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/cinta"
	"github.com/aretw0/cinta/internal/logging"
	"github.com/aretw0/cinta/pkg/machine"
)

// Options carries the persistent flags shared by every command.
type Options struct {
	FilePath string // machine definition file
	MaxSteps int    // 0 keeps the file's bound, then the default
	LogLevel string // debug, info, warn or error
	LogFile  string // optional JSON log fanout target
}

// createLogger configures the application logger from the persistent flags.
// It writes to Stderr (to separate from Stdout verdict output). The returned
// closer is non-nil only when a log file is open.
func createLogger(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(opts.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if opts.LogFile != "" {
		return logging.NewWithFile(level, opts.LogFile)
	}
	return logging.New(level), nil, nil
}

func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "", "warn":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

// resolveCases turns command arguments into simulation cases; with no
// arguments the cases bundled in the machine file are used instead.
func resolveCases(engine *cinta.Engine, inputs []string) ([]machine.Case, error) {
	if len(inputs) > 0 {
		cases := make([]machine.Case, len(inputs))
		for i, input := range inputs {
			cases[i] = machine.Case{Input: input}
		}
		return cases, nil
	}

	cases, err := engine.Cases()
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation cases: %w", err)
	}
	return cases, nil
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// handleExecutionError maps user interruptions to a clean exit.
func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil
	}
	return err
}
