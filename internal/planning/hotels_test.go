package planning

import (
	"testing"

	"github.com/aretw0/wayfarer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectHotel_ScoringBiasFavorsCheaperNight(t *testing.T) {
	// Scores: 4.5 stars at 180/night gives -270, 4.0 stars at 120/night
	// gives -280. The lower-rated but cheaper hotel wins; the sign of the
	// rating weight is part of the contract.
	candidates := []domain.Hotel{
		{Name: "Grand", Rating: 4.5, PricePerNight: 180},
		{Name: "Corner Inn", Rating: 4.0, PricePerNight: 120},
	}

	sel, inBudget := SelectHotel(candidates, 1050, 5)
	require.True(t, sel.Chosen())
	assert.Equal(t, "Corner Inn", sel.Option.Name)
	assert.Len(t, inBudget, 2)
}

func TestSelectHotel_CapAppliesToTotalStayCost(t *testing.T) {
	// 150/night passes a 1050 cap for 5 nights (750 total) but not for
	// 10 nights (1500 total).
	candidates := []domain.Hotel{
		{Name: "Stay", Rating: 4.2, PricePerNight: 150},
	}

	sel, _ := SelectHotel(candidates, 1050, 5)
	assert.True(t, sel.Chosen())

	sel, _ = SelectHotel(candidates, 1050, 10)
	assert.False(t, sel.Chosen())
	assert.Equal(t, 1500.0, sel.CheapestPrice)
}

func TestSelectHotel_EmptyCandidates(t *testing.T) {
	sel, inBudget := SelectHotel(nil, 1000, 5)
	assert.False(t, sel.Chosen())
	assert.Empty(t, inBudget)
}

func TestScoreHotel(t *testing.T) {
	assert.Equal(t, -270.0, ScoreHotel(domain.Hotel{Rating: 4.5, PricePerNight: 180}))
	assert.Equal(t, -280.0, ScoreHotel(domain.Hotel{Rating: 4.0, PricePerNight: 120}))
}
