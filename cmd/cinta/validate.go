package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cinta/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the machine definition for consistency",
	Long: `Compiles the machine file and reports every definition defect at once:
unknown states or symbols in rules, duplicate (state, symbol) keys, alphabet
violations and missing initial or final states.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunValidate(globalOptions(cmd)); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
