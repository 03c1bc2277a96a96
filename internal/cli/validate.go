package cli

import (
	"fmt"

	"github.com/aretw0/cinta/internal/validator"
	"github.com/aretw0/cinta/pkg/adapters/yamlfile"
	"github.com/aretw0/cinta/pkg/machine"
)

// RunValidate loads and compiles the machine file, reporting every
// definition defect at once. On success it prints a short summary plus
// lint warnings for legal but suspicious constructs.
func RunValidate(opts Options) error {
	loader, err := yamlfile.New(opts.FilePath)
	if err != nil {
		return err
	}

	def, err := loader.Definition()
	if err != nil {
		return fmt.Errorf("failed to load definition: %w", err)
	}

	table, err := machine.NewTable(def)
	if err != nil {
		if defects := machine.DefinitionErrors(err); len(defects) > 0 {
			for _, defect := range defects {
				fmt.Printf("  ✗ %s\n", defect)
			}
			return fmt.Errorf("machine '%s' has %d definition error(s)", def.Name, len(defects))
		}
		return err
	}

	printSystemMessage("Machine '%s' is valid: %d states, %d rules.", table.Name(), len(table.States()), table.Len())
	for _, warning := range validator.Lint(table) {
		fmt.Printf("  ⚠ %s\n", warning)
	}
	return nil
}
