package planning

import "github.com/aretw0/wayfarer/pkg/domain"

// Flight scoring weights: cheaper first, then fewer stops.
const (
	flightPriceWeight = 0.7
	flightStopPenalty = 100
)

// ScoreFlight ranks a flight candidate. Lower is better.
func ScoreFlight(f domain.Flight) float64 {
	return f.Price*flightPriceWeight + float64(f.Stops)*flightStopPenalty
}

// SelectFlight picks the best flight within the flights budget share.
// It returns the selection plus the in-budget candidates for audit.
func SelectFlight(candidates []domain.Flight, cap float64) (domain.Selection[domain.Flight], []domain.Flight) {
	if len(candidates) == 0 {
		return domain.NoSelection[domain.Flight]("no flight candidates found", 0), nil
	}

	res := Pick(candidates, func(f domain.Flight) float64 { return f.Price }, cap, ScoreFlight)
	if res.Option == nil {
		return domain.NoSelection[domain.Flight]("no flight within budget", res.CheapestPrice), nil
	}
	return domain.Selected(*res.Option), res.InBudget
}
