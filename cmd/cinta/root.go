package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cinta/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "cinta",
	Short: "Cinta is a deterministic Turing machine engine",
	Long: `Cinta compiles single-tape Turing machine definitions and runs input
words to an accept, reject or step-limit verdict.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "machine.yaml", "Machine definition file")
	rootCmd.PersistentFlags().Int("max-steps", 0, "Step bound override (0 keeps the file's bound)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
}

// globalOptions collects the persistent flags into the shared option set.
func globalOptions(cmd *cobra.Command) cli.Options {
	file, _ := cmd.Flags().GetString("file")
	maxSteps, _ := cmd.Flags().GetInt("max-steps")
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFile, _ := cmd.Flags().GetString("log-file")
	return cli.Options{
		FilePath: file,
		MaxSteps: maxSteps,
		LogLevel: logLevel,
		LogFile:  logFile,
	}
}
