package cli

import (
	"fmt"

	"github.com/aretw0/cinta/internal/logging"
	"github.com/aretw0/cinta/internal/presentation/tui"
)

// RunDescribe prints a rendered markdown description of the machine.
func RunDescribe(opts Options) error {
	engine, err := createEngine(opts, logging.NewNop())
	if err != nil {
		return err
	}

	md := tui.DescribeMarkdown(engine.Table(), engine.MaxSteps())

	render := tui.NewRenderer()
	out, err := render(md)
	if err != nil {
		// Fall back to raw markdown when the terminal renderer is unhappy.
		fmt.Println(md)
		return nil
	}
	fmt.Print(out)
	return nil
}
