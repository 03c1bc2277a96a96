package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cinta/internal/cli"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a starter machine file",
	Long:  `Writes a small runnable machine.yaml into the given directory (default: current).`,
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		if err := cli.RunInit(cli.InitOptions{Dir: dir}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
