package cli

import (
	"fmt"
	"os"

	"github.com/aretw0/cinta/internal/logging"
	"github.com/aretw0/cinta/internal/presentation/graph"
)

// GraphOptions contains the configuration for the 'graph' command.
type GraphOptions struct {
	Options
	Format string // mermaid or dot; empty defaults to mermaid
	Output string // target file; empty writes to stdout
}

// RunGraph renders the machine's transition diagram.
func RunGraph(opts GraphOptions) error {
	engine, err := createEngine(opts.Options, logging.NewNop())
	if err != nil {
		return err
	}

	diagram, err := graph.Generate(engine.Table(), graph.Format(opts.Format))
	if err != nil {
		return err
	}

	if opts.Output == "" {
		fmt.Println(diagram)
		return nil
	}
	if err := os.WriteFile(opts.Output, []byte(diagram), 0o644); err != nil {
		return fmt.Errorf("failed to write diagram: %w", err)
	}
	printSystemMessage("Diagram written to %s", opts.Output)
	return nil
}
