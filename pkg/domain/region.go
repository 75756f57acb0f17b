package domain

// Region is a coarse geography bucket. Its only attribute is the minimum
// realistic spend per day, used by the feasibility check.
type Region string

const (
	RegionWesternEurope Region = "western_europe"
	RegionEasternEurope Region = "eastern_europe"
	RegionNorthAmerica  Region = "north_america"
	RegionAsia          Region = "asia"
	RegionSouthAmerica  Region = "south_america"

	// RegionOther is the fallback when no keyword matches a destination.
	RegionOther Region = "other"
)

// MinPerDay returns the minimum spend per day for the region.
func (r Region) MinPerDay() float64 {
	switch r {
	case RegionWesternEurope:
		return 150
	case RegionNorthAmerica:
		return 120
	case RegionAsia:
		return 100
	case RegionEasternEurope:
		return 80
	case RegionSouthAmerica:
		return 75
	default:
		return 100
	}
}
