package planning

import (
	"fmt"

	"github.com/aretw0/wayfarer/pkg/domain"
)

// BudgetAnalysis is the output of the budget-analysis stage.
type BudgetAnalysis struct {
	Breakdown   domain.BudgetBreakdown
	Region      domain.Region
	MinPerDay   float64
	MinRequired float64
	Feasible    bool
	Summary     string
}

// AnalyzeBudget validates the request, allocates the budget across
// categories, classifies the destination region and decides feasibility.
// The feasibility comparison is inclusive: a budget exactly equal to the
// regional minimum is feasible. Per-category shortfalls found later by the
// selectors are a separate, non-fatal outcome and never revisit this
// verdict.
func AnalyzeBudget(req domain.TripRequest) (*BudgetAnalysis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	breakdown := domain.NewBudgetBreakdown(req.Budget)
	region, minPerDay := ClassifyRegion(req.Destination)
	minRequired := minPerDay * float64(req.Duration)
	feasible := req.Budget >= minRequired

	a := &BudgetAnalysis{
		Breakdown:   breakdown,
		Region:      region,
		MinPerDay:   minPerDay,
		MinRequired: minRequired,
		Feasible:    feasible,
	}
	a.Summary = summarize(req, a)
	return a, nil
}

func summarize(req domain.TripRequest, a *BudgetAnalysis) string {
	verdict := "feasible"
	if !a.Feasible {
		verdict = fmt.Sprintf("below the regional minimum of %.2f", a.MinRequired)
	}
	return fmt.Sprintf(
		"%.2f for %d days in %s (%s): flights %.2f, accommodation %.2f, activities %.2f, food %.2f. Verdict: %s",
		req.Budget, req.Duration, req.Destination, a.Region,
		a.Breakdown.Flights, a.Breakdown.Accommodation, a.Breakdown.Activities, a.Breakdown.Food,
		verdict,
	)
}
