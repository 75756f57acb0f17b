package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/wayfarer/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "wayfarer",
	Short: "Wayfarer is a budget-aware trip planner",
	Long: `Wayfarer plans trips within a budget: it allocates the budget across
flights, accommodation, activities and food, picks the best candidates
from a destination catalog, and composes a day-by-day itinerary.`,
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
	rootCmd.PersistentFlags().String("config", cli.DefaultConfigPath, "Path to the configuration file")
	rootCmd.PersistentFlags().String("catalog", "", "Directory containing the destination catalog")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// resolveOptions merges the config file with the persistent flags. Flags
// win over the file.
func resolveOptions(cmd *cobra.Command) (cli.RunOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := cli.LoadConfig(configPath)
	if err != nil {
		return cli.RunOptions{}, err
	}

	if cmd.Flags().Changed("catalog") {
		cfg.Catalog, _ = cmd.Flags().GetString("catalog")
	}

	return cli.RunOptions{Config: cfg, Debug: debug}, nil
}
