package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cinta/internal/cli"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show a rendered description of the machine",
	Long: `Prints the machine's states, alphabets, step bound and transition
rules as markdown rendered for the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunDescribe(globalOptions(cmd)); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
