package planning

import (
	"strings"

	"github.com/aretw0/wayfarer/pkg/domain"
)

// regionRule maps destination keywords to a region. Rules are evaluated in
// order and the first match wins, so the table order is part of the
// classifier's contract.
type regionRule struct {
	region   domain.Region
	keywords []string
}

var regionRules = []regionRule{
	{domain.RegionWesternEurope, []string{
		"paris", "france", "london", "united kingdom", "rome", "italy",
		"barcelona", "madrid", "spain", "amsterdam", "netherlands",
		"berlin", "munich", "germany", "lisbon", "portugal", "vienna",
		"austria", "zurich", "switzerland",
	}},
	{domain.RegionEasternEurope, []string{
		"prague", "czech", "budapest", "hungary", "krakow", "warsaw",
		"poland", "bucharest", "romania", "sofia", "bulgaria", "riga",
		"vilnius", "tallinn",
	}},
	{domain.RegionNorthAmerica, []string{
		"new york", "los angeles", "san francisco", "chicago", "miami",
		"usa", "united states", "toronto", "vancouver", "montreal",
		"canada",
	}},
	{domain.RegionAsia, []string{
		"tokyo", "japan", "kyoto", "osaka", "seoul", "korea", "bangkok",
		"thailand", "singapore", "hong kong", "taipei", "taiwan", "bali",
		"indonesia", "hanoi", "vietnam", "kuala lumpur", "malaysia",
	}},
	{domain.RegionSouthAmerica, []string{
		"rio de janeiro", "sao paulo", "brazil", "buenos aires",
		"argentina", "lima", "peru", "santiago", "chile", "bogota",
		"colombia", "quito", "ecuador", "montevideo", "uruguay",
	}},
}

// ClassifyRegion maps a free-text destination to a region and its minimum
// spend per day. Matching is case-insensitive and whitespace-trimmed
// substring search; unknown destinations silently classify to
// domain.RegionOther. This step never fails.
func ClassifyRegion(destination string) (domain.Region, float64) {
	needle := strings.ToLower(strings.TrimSpace(destination))
	for _, rule := range regionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(needle, kw) {
				return rule.region, rule.region.MinPerDay()
			}
		}
	}
	return domain.RegionOther, domain.RegionOther.MinPerDay()
}
