package planning

// PickResult is the outcome of the generic filter-score-select routine.
// When no candidate fits the cap, Option is nil and CheapestPrice holds the
// minimum price of the unfiltered list so callers can report the shortfall.
type PickResult[T any] struct {
	Option        *T
	CheapestPrice float64
	InBudget      []T
}

// Pick filters candidates whose price exceeds the cap, scores the rest and
// returns the one with the lowest score. Lower is better. Ties keep the
// earliest candidate, so the routine is deterministic for a fixed input
// order. It is a pure function.
func Pick[T any](options []T, price func(T) float64, cap float64, score func(T) float64) PickResult[T] {
	var res PickResult[T]

	for i, opt := range options {
		p := price(opt)
		if i == 0 || p < res.CheapestPrice {
			res.CheapestPrice = p
		}
		if p <= cap {
			res.InBudget = append(res.InBudget, opt)
		}
	}

	if len(res.InBudget) == 0 {
		return res
	}

	best := 0
	bestScore := score(res.InBudget[0])
	for i := 1; i < len(res.InBudget); i++ {
		if s := score(res.InBudget[i]); s < bestScore {
			best, bestScore = i, s
		}
	}
	chosen := res.InBudget[best]
	res.Option = &chosen
	return res
}
