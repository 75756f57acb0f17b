package domain

// ItineraryContext is the structured context handed to the itinerary
// composer. It carries only facts already decided by the planning stages;
// the composer turns them into prose (or the fallback template lists them
// verbatim).
type ItineraryContext struct {
	Destination string      `json:"destination"`
	Origin      string      `json:"origin,omitempty"`
	Duration    int         `json:"duration"`
	Preferences Preferences `json:"preferences,omitempty"`

	Flight     *Flight    `json:"flight,omitempty"`
	FlightNote string     `json:"flight_note,omitempty"`
	Hotel      *Hotel     `json:"hotel,omitempty"`
	HotelNote  string     `json:"hotel_note,omitempty"`
	Activities []Activity `json:"activities,omitempty"`

	DailyActivityBudget float64 `json:"daily_activity_budget"`
	DailyFoodBudget     float64 `json:"daily_food_budget"`
}

// Narrative is the composer's output: generated text plus usage metadata.
type Narrative struct {
	Text  string     `json:"text"`
	Usage TokenUsage `json:"usage"`
}
