package planning

import (
	"testing"

	"github.com/aretw0/wayfarer/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestSuggestAlternatives(t *testing.T) {
	s := domain.NewTripState(domain.TripRequest{
		Destination: "Tokyo, Japan",
		Budget:      500,
		Duration:    7,
	})
	s.Region = domain.RegionAsia
	s.MinRequired = 700

	text := SuggestAlternatives(s)

	assert.Contains(t, text, "Tokyo, Japan")
	assert.Contains(t, text, "700.00")
	// 500 / 100 per day allows 5 days.
	assert.Contains(t, text, "Shorten the trip: 5 day(s)")
	assert.Contains(t, text, "Raise the budget by 200.00")
	// Even the cheapest region needs 525 for 7 days, so no region fits.
	assert.NotContains(t, text, "south america destination")

	// Deterministic.
	assert.Equal(t, text, SuggestAlternatives(s))
}

func TestSuggestAlternatives_ListsCheaperRegions(t *testing.T) {
	s := domain.NewTripState(domain.TripRequest{
		Destination: "Paris, France",
		Budget:      400,
		Duration:    5,
	})
	s.Region = domain.RegionWesternEurope
	s.MinRequired = 750

	text := SuggestAlternatives(s)
	assert.Contains(t, text, "south america destination")
	assert.Contains(t, text, "eastern europe destination")
	assert.NotContains(t, text, "asia destination")
}
