package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cinta/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [inputs...]",
	Short: "Run input words through the machine",
	Long: `Runs each input word to its terminal verdict and prints a per-case report.
Without arguments the simulation cases declared in the machine file are used.`,
	Run: func(cmd *cobra.Command, args []string) {
		workers, _ := cmd.Flags().GetInt("workers")
		trace, _ := cmd.Flags().GetBool("trace")
		jsonMode, _ := cmd.Flags().GetBool("json")
		redisAddr, _ := cmd.Flags().GetString("cache")
		journalPath, _ := cmd.Flags().GetString("journal")

		opts := cli.RunOptions{
			Options:     globalOptions(cmd),
			Inputs:      args,
			Workers:     workers,
			Trace:       trace,
			JSON:        jsonMode,
			RedisAddr:   redisAddr,
			JournalPath: journalPath,
		}
		if err := cli.RunBatch(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("workers", "w", 0, "Concurrent executions per batch (0 keeps the serial default)")
	runCmd.Flags().Bool("trace", false, "Print one instant description per step (forces serial execution)")
	runCmd.Flags().Bool("json", false, "Emit the report as JSON")
	runCmd.Flags().String("cache", "", "Redis address for the verdict cache (e.g. localhost:6379)")
	runCmd.Flags().String("journal", "", "SQLite file recording run history (e.g. "+cli.DefaultJournalPath+")")

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
}
