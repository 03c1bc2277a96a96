package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cinta/internal/cli"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs from the journal",
	Long: `Lists journaled runs newest first. By default only runs of the machine
file at hand are shown; --all lists every machine in the journal.`,
	Run: func(cmd *cobra.Command, args []string) {
		journalPath, _ := cmd.Flags().GetString("journal")
		limit, _ := cmd.Flags().GetInt("limit")
		all, _ := cmd.Flags().GetBool("all")

		opts := cli.HistoryOptions{
			Options:     globalOptions(cmd),
			JournalPath: journalPath,
			Limit:       limit,
			All:         all,
		}
		if err := cli.RunHistory(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().String("journal", cli.DefaultJournalPath, "SQLite journal to read")
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to list")
	historyCmd.Flags().Bool("all", false, "List every machine instead of only the loaded one")
}
