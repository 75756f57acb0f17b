package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/wayfarer/internal/adapters/catalog"
	"github.com/aretw0/wayfarer/internal/cli"
	"github.com/aretw0/wayfarer/pkg/ports"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the destination catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the destinations in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := openCatalog(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		names, err := cat.Destinations(context.Background())
		if err != nil {
			fmt.Printf("Error listing destinations: %v\n", err)
			os.Exit(1)
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for consistency",
	Long:  `Loads every destination document and reports ones with no usable candidates.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCatalogValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Catalog is valid! ✅")
	},
}

func openCatalog(cmd *cobra.Command) (*catalog.Loam, error) {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return nil, err
	}
	path := opts.Config.Catalog
	if path == "" {
		path = cli.DefaultCatalogPath
	}
	return catalog.NewLoam(path)
}

func runCatalogValidate(cmd *cobra.Command) error {
	cat, err := openCatalog(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	names, err := cat.Destinations(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("catalog has no destinations")
	}

	var bad []string
	for _, name := range names {
		q := ports.TravelQuery{Destination: name}
		flights, err := cat.Flights(ctx, q)
		if err != nil {
			return fmt.Errorf("loading %s: %w", name, err)
		}
		hotels, err := cat.Hotels(ctx, q)
		if err != nil {
			return fmt.Errorf("loading %s: %w", name, err)
		}
		if len(flights) == 0 && len(hotels) == 0 {
			bad = append(bad, name)
		}
	}

	if len(bad) > 0 {
		return fmt.Errorf("destinations with no flight or hotel candidates: %v", bad)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}
