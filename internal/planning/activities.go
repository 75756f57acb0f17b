package planning

import "github.com/aretw0/wayfarer/pkg/domain"

// FilterActivities keeps the candidates matching the requested style (if
// any) whose price fits the remaining activities budget. There is no
// ranking: the whole filtered set is passed on to itinerary composition.
func FilterActivities(candidates []domain.Activity, style domain.ActivityStyle, budget float64) []domain.Activity {
	var kept []domain.Activity
	for _, a := range candidates {
		if style != domain.StyleAny && a.Style != style {
			continue
		}
		if a.Price > budget {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}
