package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/cinta/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the transition diagram",
	Long: `Renders the machine's transition diagram as Mermaid (default) or
Graphviz DOT, to stdout or to a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		opts := cli.GraphOptions{
			Options: globalOptions(cmd),
			Format:  format,
			Output:  output,
		}
		if err := cli.RunGraph(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("format", "mermaid", "Diagram dialect: mermaid or dot")
	graphCmd.Flags().StringP("output", "o", "", "Write the diagram to this file instead of stdout")
}
