package domain

import "strings"

// Trip duration bounds, in days.
const (
	MinDuration = 1
	MaxDuration = 30
)

// DietaryPreference is an optional dietary restriction tag.
type DietaryPreference string

const (
	DietAny        DietaryPreference = ""
	DietVegetarian DietaryPreference = "vegetarian"
	DietVegan      DietaryPreference = "vegan"
	DietHalal      DietaryPreference = "halal"
	DietKosher     DietaryPreference = "kosher"
	DietGlutenFree DietaryPreference = "gluten_free"
)

// AccommodationType is an optional lodging preference tag.
type AccommodationType string

const (
	StayAny       AccommodationType = ""
	StayHotel     AccommodationType = "hotel"
	StayHostel    AccommodationType = "hostel"
	StayApartment AccommodationType = "apartment"
	StayResort    AccommodationType = "resort"
)

// ActivityStyle is an optional activity preference tag. It doubles as the
// category tag on Activity candidates.
type ActivityStyle string

const (
	StyleAny        ActivityStyle = ""
	StyleAdventure  ActivityStyle = "adventure"
	StyleCultural   ActivityStyle = "cultural"
	StyleRelaxation ActivityStyle = "relaxation"
	StyleNightlife  ActivityStyle = "nightlife"
	StyleFamily     ActivityStyle = "family"
)

// Preferences groups the optional preference tags of a trip request.
type Preferences struct {
	Dietary       DietaryPreference `json:"dietary,omitempty"`
	Accommodation AccommodationType `json:"accommodation,omitempty"`
	Activity      ActivityStyle     `json:"activity,omitempty"`
}

// TripRequest is the immutable input of a planning run.
type TripRequest struct {
	Destination string      `json:"destination"`
	Origin      string      `json:"origin,omitempty"`
	Budget      float64     `json:"budget"`
	Duration    int         `json:"duration"`
	Preferences Preferences `json:"preferences,omitempty"`
}

// Validate checks the request against the planner's hard constraints.
// A violation is fatal to the run (routed to the error stage), never to
// the process.
func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return &ValidationError{Field: "destination", Reason: "destination is required"}
	}
	if r.Budget <= 0 {
		return &ValidationError{Field: "budget", Reason: "budget must be greater than zero"}
	}
	if r.Duration < MinDuration || r.Duration > MaxDuration {
		return &ValidationError{Field: "duration", Reason: "duration must be between 1 and 30 days"}
	}
	return nil
}
