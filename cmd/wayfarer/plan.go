package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/wayfarer/internal/cli"
	"github.com/aretw0/wayfarer/internal/presentation/tui"
	"github.com/aretw0/wayfarer/pkg/domain"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan <destination>",
	Short: "Plan a trip to a destination",
	Long: `Runs a full planning pass for the given destination and prints the
itinerary. When the budget cannot cover the destination, alternative
suggestions are printed instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPlan(cmd, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runPlan(cmd *cobra.Command, destination string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	budget, _ := cmd.Flags().GetFloat64("budget")
	duration, _ := cmd.Flags().GetInt("duration")
	origin, _ := cmd.Flags().GetString("origin")
	dietary, _ := cmd.Flags().GetString("dietary")
	accommodation, _ := cmd.Flags().GetString("accommodation")
	style, _ := cmd.Flags().GetString("style")
	jsonMode, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")

	logger := cli.CreateLogger(opts.Debug, opts.Config.Log)
	planner, err := cli.CreatePlanner(opts, logger)
	if err != nil {
		return err
	}

	req := domain.TripRequest{
		Destination: destination,
		Origin:      origin,
		Budget:      budget,
		Duration:    duration,
		Preferences: domain.Preferences{
			Dietary:       domain.DietaryPreference(dietary),
			Accommodation: domain.AccommodationType(accommodation),
			Activity:      domain.ActivityStyle(style),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, err := planner.Plan(ctx, req)
	if err != nil {
		return err
	}

	if jsonMode {
		return json.NewEncoder(os.Stdout).Encode(state)
	}

	if !quiet {
		tui.PrintBanner()
	}
	render := tui.NewRenderer()
	fmt.Print(render(state.Outcome()))

	if state.OutcomeKind() == "error" {
		os.Exit(1)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().Float64P("budget", "b", 0, "Total trip budget (required)")
	planCmd.Flags().IntP("duration", "d", 0, "Trip length in days (required)")
	planCmd.Flags().StringP("origin", "o", "", "Departure city")
	planCmd.Flags().String("dietary", "", "Dietary preference (vegetarian, vegan, halal, kosher, gluten_free)")
	planCmd.Flags().String("accommodation", "", "Accommodation preference (hotel, hostel, apartment, resort)")
	planCmd.Flags().String("style", "", "Activity style (adventure, cultural, relaxation, nightlife, family)")
	planCmd.Flags().Bool("json", false, "Print the final planning state as JSON")
	planCmd.Flags().BoolP("quiet", "q", false, "Suppress the banner")

	_ = planCmd.MarkFlagRequired("budget")
	_ = planCmd.MarkFlagRequired("duration")
}
