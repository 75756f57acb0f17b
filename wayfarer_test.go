package wayfarer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wayfarer"
	"github.com/aretw0/wayfarer/pkg/adapters/memory"
	"github.com/aretw0/wayfarer/pkg/domain"
)

func parisCatalog() *memory.Catalog {
	return memory.New(memory.Destination{
		Name:    "Paris",
		Aliases: []string{"france"},
		Flights: []domain.Flight{
			{Airline: "Direct Air", Price: 450, Stops: 0},
			{Airline: "Hop Air", Price: 380, Stops: 2},
		},
		Hotels: []domain.Hotel{
			{Name: "Grand", Rating: 4.5, PricePerNight: 180, Type: domain.StayHotel},
			{Name: "Corner Inn", Rating: 4.0, PricePerNight: 120, Type: domain.StayHotel},
		},
		Activities: []domain.Activity{
			{Name: "Museum walk", Style: domain.StyleCultural, Price: 30},
			{Name: "Climbing day trip", Style: domain.StyleAdventure, Price: 80},
		},
	})
}

func TestFacade_PlansFeasibleTrip(t *testing.T) {
	planner, err := wayfarer.New("", wayfarer.WithCatalog(parisCatalog()))
	require.NoError(t, err)

	state, err := planner.Plan(context.Background(), domain.TripRequest{
		Destination: "Paris",
		Origin:      "Berlin",
		Budget:      3000,
		Duration:    5,
	})
	require.NoError(t, err)

	assert.Equal(t, "planned", state.OutcomeKind())
	assert.True(t, state.Feasible)
	assert.Equal(t, domain.RegionWesternEurope, state.Region)

	require.NotNil(t, state.Breakdown)
	assert.Equal(t, 1200.0, state.Breakdown.Flights)
	assert.Equal(t, 1050.0, state.Breakdown.Accommodation)
	assert.Equal(t, 450.0, state.Breakdown.Activities)
	assert.Equal(t, 300.0, state.Breakdown.Food)

	// Direct flight wins on score despite the higher price.
	require.True(t, state.Flight.Chosen())
	assert.Equal(t, "Direct Air", state.Flight.Option.Airline)
	require.True(t, state.Hotel.Chosen())
	assert.Equal(t, "Corner Inn", state.Hotel.Option.Name)

	assert.NotEmpty(t, state.Itinerary)
	assert.True(t, state.UsedFallback)
}

func TestFacade_SuggestsAlternativesWhenInfeasible(t *testing.T) {
	planner, err := wayfarer.New("", wayfarer.WithCatalog(parisCatalog()))
	require.NoError(t, err)

	state, err := planner.Plan(context.Background(), domain.TripRequest{
		Destination: "Paris",
		Budget:      200,
		Duration:    7,
	})
	require.NoError(t, err)

	assert.Equal(t, "alternatives", state.OutcomeKind())
	assert.False(t, state.Feasible)
	assert.Empty(t, state.Itinerary)
	assert.NotEmpty(t, state.Alternatives)
}

func TestFacade_ValidationFailureIsReportedInState(t *testing.T) {
	planner, err := wayfarer.New("", wayfarer.WithCatalog(parisCatalog()))
	require.NoError(t, err)

	state, err := planner.Plan(context.Background(), domain.TripRequest{
		Destination: "Paris",
		Budget:      3000,
		Duration:    45,
	})
	require.NoError(t, err)

	assert.Equal(t, "error", state.OutcomeKind())
	assert.Contains(t, state.ErrorDescription, "duration")
}

func TestFacade_LoadsCatalogFromDirectory(t *testing.T) {
	dir := t.TempDir()
	doc := []byte(`---
destination: Lisbon
flights:
  - airline: Tagus Air
    price: 220
    stops: 0
hotels:
  - name: Alfama Stay
    rating: 4.2
    price_per_night: 95
---
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lisbon.md"), doc, 0644))

	planner, err := wayfarer.New(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), planner.Name)

	state, err := planner.Plan(context.Background(), domain.TripRequest{
		Destination: "Lisbon",
		Budget:      2000,
		Duration:    4,
	})
	require.NoError(t, err)
	assert.Equal(t, "planned", state.OutcomeKind())
	require.True(t, state.Flight.Chosen())
	assert.Equal(t, "Tagus Air", state.Flight.Option.Airline)
}

func TestFacade_RequiresCatalogOrPath(t *testing.T) {
	_, err := wayfarer.New("")
	require.Error(t, err)
}

func TestFacade_PlanFailsOnDeadContext(t *testing.T) {
	planner, err := wayfarer.New("", wayfarer.WithCatalog(parisCatalog()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = planner.Plan(ctx, domain.TripRequest{Destination: "Paris", Budget: 3000, Duration: 5})
	require.Error(t, err)
}
