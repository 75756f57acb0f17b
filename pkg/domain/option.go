package domain

// Flight is a flight candidate supplied by a catalog.
type Flight struct {
	Airline string  `json:"airline"`
	Price   float64 `json:"price"`
	Stops   int     `json:"stops"`
}

// Hotel is a lodging candidate supplied by a catalog.
type Hotel struct {
	Name          string            `json:"name"`
	Rating        float64           `json:"rating"`
	PricePerNight float64           `json:"price_per_night"`
	Type          AccommodationType `json:"type,omitempty"`
}

// TotalCost returns the stay cost for the given number of nights.
func (h Hotel) TotalCost(nights int) float64 {
	return h.PricePerNight * float64(nights)
}

// Activity is an activity candidate supplied by a catalog.
type Activity struct {
	Name  string        `json:"name"`
	Style ActivityStyle `json:"style,omitempty"`
	Price float64       `json:"price"`
}
