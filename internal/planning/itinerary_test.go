package planning

import (
	"strings"
	"testing"

	"github.com/aretw0/wayfarer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feasibleState() *domain.TripState {
	s := domain.NewTripState(domain.TripRequest{
		Destination: "Paris, France",
		Budget:      3000,
		Duration:    5,
		Preferences: domain.Preferences{Activity: domain.StyleCultural},
	})
	b := domain.NewBudgetBreakdown(3000)
	s.Breakdown = &b
	s.Flight = domain.Selected(domain.Flight{Airline: "Direct Air", Price: 450, Stops: 0})
	s.Hotel = domain.Selected(domain.Hotel{Name: "Corner Inn", Rating: 4.0, PricePerNight: 120})
	s.Activities = []domain.Activity{{Name: "Museum walk", Style: domain.StyleCultural, Price: 30}}
	return s
}

func TestBuildItineraryContext_DailyBudgets(t *testing.T) {
	ic := BuildItineraryContext(feasibleState())

	assert.Equal(t, 90.0, ic.DailyActivityBudget) // 450 / 5
	assert.Equal(t, 60.0, ic.DailyFoodBudget)     // 300 / 5
	require.NotNil(t, ic.Flight)
	require.NotNil(t, ic.Hotel)
	assert.Empty(t, ic.FlightNote)
	assert.Empty(t, ic.HotelNote)
	assert.Len(t, ic.Activities, 1)
}

func TestBuildItineraryContext_MissingSelections(t *testing.T) {
	s := feasibleState()
	s.Flight = domain.NoSelection[domain.Flight]("no flight within budget", 700)
	s.Hotel = domain.NoSelection[domain.Hotel]("no hotel within budget", 1500)

	ic := BuildItineraryContext(s)
	assert.Nil(t, ic.Flight)
	assert.Contains(t, ic.FlightNote, "no flight within budget")
	assert.Contains(t, ic.FlightNote, "700.00")
	assert.Contains(t, ic.HotelNote, "1500.00")
}

func TestFallbackItinerary_Deterministic(t *testing.T) {
	ic := BuildItineraryContext(feasibleState())

	first := FallbackItinerary(ic)
	second := FallbackItinerary(ic)
	assert.Equal(t, first, second)

	assert.Contains(t, first, "Paris, France")
	assert.Contains(t, first, "Direct Air")
	assert.Contains(t, first, "Corner Inn")
	assert.Contains(t, first, "Museum walk")
	assert.Contains(t, first, "90.00")
	assert.Contains(t, first, "60.00")
}

func TestFallbackItinerary_HonestAboutMissingSelections(t *testing.T) {
	s := feasibleState()
	s.Flight = domain.NoSelection[domain.Flight]("no flight within budget", 700)
	s.Activities = nil

	text := FallbackItinerary(BuildItineraryContext(s))
	assert.Contains(t, text, "Not booked")
	assert.Contains(t, text, "No activities matched")
	assert.False(t, strings.Contains(text, "Direct Air"))
}
