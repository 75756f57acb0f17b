package planning

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/wayfarer/pkg/domain"
)

// SuggestAlternatives renders the budget-alternative suggestions for an
// infeasible request. It is deterministic: the same state always produces
// the same text.
func SuggestAlternatives(s *domain.TripState) string {
	req := s.Request
	minPerDay := s.Region.MinPerDay()

	var b strings.Builder
	fmt.Fprintf(&b, "# Budget alternatives for %s\n\n", req.Destination)
	fmt.Fprintf(&b,
		"A %d-day trip to %s needs at least %.2f (%.2f per day); the budget of %.2f falls %.2f short.\n\n",
		req.Duration, req.Destination, s.MinRequired, minPerDay, req.Budget, s.MinRequired-req.Budget)

	b.WriteString("## Options\n\n")

	if days := int(math.Floor(req.Budget / minPerDay)); days >= domain.MinDuration {
		fmt.Fprintf(&b, "- Shorten the trip: %d day(s) in %s fit the current budget\n", days, req.Destination)
	}

	needed := s.MinRequired - req.Budget
	fmt.Fprintf(&b, "- Raise the budget by %.2f to keep the full %d days\n", needed, req.Duration)

	for _, region := range cheaperRegions(s.Region, req.Budget, req.Duration) {
		fmt.Fprintf(&b, "- Consider a %s destination: %.2f per day puts %d days at %.2f\n",
			regionLabel(region), region.MinPerDay(), req.Duration, region.MinPerDay()*float64(req.Duration))
	}

	return b.String()
}

// cheaperRegions lists regions whose minimum for the requested duration
// fits the budget, cheapest first.
func cheaperRegions(current domain.Region, budget float64, duration int) []domain.Region {
	ordered := []domain.Region{
		domain.RegionSouthAmerica,
		domain.RegionEasternEurope,
		domain.RegionAsia,
		domain.RegionNorthAmerica,
		domain.RegionWesternEurope,
	}

	var fits []domain.Region
	for _, r := range ordered {
		if r == current {
			continue
		}
		if r.MinPerDay()*float64(duration) <= budget {
			fits = append(fits, r)
		}
	}
	return fits
}

func regionLabel(r domain.Region) string {
	return strings.ReplaceAll(string(r), "_", " ")
}
