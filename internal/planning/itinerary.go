package planning

import (
	"fmt"
	"strings"

	"github.com/aretw0/wayfarer/pkg/domain"
)

// BuildItineraryContext assembles the structured context for the itinerary
// composer from a trip state that has passed selection. Daily sub-budgets
// are plain divisions; display formatting is the consumer's concern.
func BuildItineraryContext(s *domain.TripState) domain.ItineraryContext {
	ic := domain.ItineraryContext{
		Destination: s.Request.Destination,
		Origin:      s.Request.Origin,
		Duration:    s.Request.Duration,
		Preferences: s.Request.Preferences,
		Activities:  s.Activities,
	}

	if s.Breakdown != nil && s.Request.Duration > 0 {
		ic.DailyActivityBudget = s.Breakdown.Activities / float64(s.Request.Duration)
		ic.DailyFoodBudget = s.Breakdown.Food / float64(s.Request.Duration)
	}

	if s.Flight.Chosen() {
		ic.Flight = s.Flight.Option
	} else {
		ic.FlightNote = missingNote(s.Flight.Reason, s.Flight.CheapestPrice)
	}
	if s.Hotel.Chosen() {
		ic.Hotel = s.Hotel.Option
	} else {
		ic.HotelNote = missingNote(s.Hotel.Reason, s.Hotel.CheapestPrice)
	}
	return ic
}

func missingNote(reason string, cheapest float64) string {
	if reason == "" {
		reason = "no selection"
	}
	if cheapest > 0 {
		return fmt.Sprintf("%s (cheapest available: %.2f)", reason, cheapest)
	}
	return reason
}

// FallbackItinerary renders the deterministic template used when the
// composer is unavailable or keeps failing. It lists the same structured
// facts without narrative prose and never fails.
func FallbackItinerary(ic domain.ItineraryContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Trip plan: %s\n\n", ic.Destination)
	fmt.Fprintf(&b, "Duration: %d days\n\n", ic.Duration)

	b.WriteString("## Flight\n\n")
	if ic.Flight != nil {
		fmt.Fprintf(&b, "- %s, %.2f, %s\n", ic.Flight.Airline, ic.Flight.Price, stopsLabel(ic.Flight.Stops))
	} else {
		fmt.Fprintf(&b, "- Not booked: %s\n", ic.FlightNote)
	}

	b.WriteString("\n## Accommodation\n\n")
	if ic.Hotel != nil {
		fmt.Fprintf(&b, "- %s, %.1f stars, %.2f per night\n", ic.Hotel.Name, ic.Hotel.Rating, ic.Hotel.PricePerNight)
	} else {
		fmt.Fprintf(&b, "- Not booked: %s\n", ic.HotelNote)
	}

	b.WriteString("\n## Activities\n\n")
	if len(ic.Activities) == 0 {
		b.WriteString("- No activities matched the preferences and budget\n")
	}
	for _, a := range ic.Activities {
		fmt.Fprintf(&b, "- %s (%.2f)\n", a.Name, a.Price)
	}

	b.WriteString("\n## Daily budget\n\n")
	fmt.Fprintf(&b, "- Activities: %.2f per day\n", ic.DailyActivityBudget)
	fmt.Fprintf(&b, "- Food: %.2f per day\n", ic.DailyFoodBudget)

	if note := preferenceNote(ic.Preferences); note != "" {
		fmt.Fprintf(&b, "\n## Preferences\n\n%s\n", note)
	}

	return b.String()
}

func stopsLabel(stops int) string {
	switch stops {
	case 0:
		return "non-stop"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

func preferenceNote(p domain.Preferences) string {
	var parts []string
	if p.Dietary != domain.DietAny {
		parts = append(parts, fmt.Sprintf("- Dietary: %s", p.Dietary))
	}
	if p.Accommodation != domain.StayAny {
		parts = append(parts, fmt.Sprintf("- Accommodation: %s", p.Accommodation))
	}
	if p.Activity != domain.StyleAny {
		parts = append(parts, fmt.Sprintf("- Activity style: %s", p.Activity))
	}
	return strings.Join(parts, "\n")
}
