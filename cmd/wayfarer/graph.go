package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/wayfarer/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the planning flow visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) representing the planning stages and their routing.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(graph.GenerateMermaid(nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
