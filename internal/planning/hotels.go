package planning

import "github.com/aretw0/wayfarer/pkg/domain"

// hotelRatingWeight trades one rating star against 100 units of nightly
// price. The sign matters: higher ratings push the score down.
const hotelRatingWeight = -100

// ScoreHotel ranks a hotel candidate. Lower is better: higher rating
// first, then lower nightly price.
func ScoreHotel(h domain.Hotel) float64 {
	return h.Rating*hotelRatingWeight + h.PricePerNight
}

// SelectHotel picks the best hotel within the accommodation budget share.
// The cap is compared against the total stay cost (nightly price times
// duration), not the nightly rate. The reported cheapest price on a miss
// is likewise the cheapest total stay cost.
func SelectHotel(candidates []domain.Hotel, cap float64, duration int) (domain.Selection[domain.Hotel], []domain.Hotel) {
	if len(candidates) == 0 {
		return domain.NoSelection[domain.Hotel]("no hotel candidates found", 0), nil
	}

	res := Pick(candidates, func(h domain.Hotel) float64 { return h.TotalCost(duration) }, cap, ScoreHotel)
	if res.Option == nil {
		return domain.NoSelection[domain.Hotel]("no hotel within budget", res.CheapestPrice), nil
	}
	return domain.Selected(*res.Option), res.InBudget
}
