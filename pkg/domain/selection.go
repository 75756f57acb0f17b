package domain

// Selection records the outcome of picking one candidate for a category:
// either a chosen option, or an explicit "none" with the reason and the
// cheapest price seen so the shortfall can be reported. A missing selection
// is a normal outcome, not an error.
type Selection[T any] struct {
	Option        *T      `json:"option,omitempty"`
	Reason        string  `json:"reason,omitempty"`
	CheapestPrice float64 `json:"cheapest_price,omitempty"`
}

// Selected wraps a chosen candidate.
func Selected[T any](opt T) Selection[T] {
	return Selection[T]{Option: &opt}
}

// NoSelection records that no candidate could be chosen.
func NoSelection[T any](reason string, cheapest float64) Selection[T] {
	return Selection[T]{Reason: reason, CheapestPrice: cheapest}
}

// Chosen reports whether a candidate was selected.
func (s Selection[T]) Chosen() bool {
	return s.Option != nil
}
