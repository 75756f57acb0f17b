package domain

import "math"

// Budget allocation shares. They sum to 1.
const (
	ShareFlights       = 0.40
	ShareAccommodation = 0.35
	ShareActivities    = 0.15
	ShareFood          = 0.10
)

// BudgetBreakdown is the category-wise allocation of the total budget.
// Each amount is rounded to cents and the four amounts sum exactly to the
// rounded total: any rounding residual is folded into Flights, the largest
// category.
type BudgetBreakdown struct {
	Flights       float64 `json:"flights"`
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Food          float64 `json:"food"`
}

// NewBudgetBreakdown allocates a total budget across the four categories.
func NewBudgetBreakdown(total float64) BudgetBreakdown {
	b := BudgetBreakdown{
		Flights:       Round2(total * ShareFlights),
		Accommodation: Round2(total * ShareAccommodation),
		Activities:    Round2(total * ShareActivities),
		Food:          Round2(total * ShareFood),
	}
	residual := Round2(total) - b.Total()
	if residual != 0 {
		b.Flights = Round2(b.Flights + residual)
	}
	return b
}

// Total returns the sum of the four categories, rounded to cents.
func (b BudgetBreakdown) Total() float64 {
	return Round2(b.Flights + b.Accommodation + b.Activities + b.Food)
}

// Round2 rounds an amount to two decimal places (cents).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
