package domain

import "github.com/google/uuid"

// StageID identifies a stage of the planning state machine.
type StageID string

const (
	StageBudgetAnalysis      StageID = "budget_analysis"
	StageSearchFlights       StageID = "search_flights"
	StageSearchHotels        StageID = "search_hotels"
	StageSearchActivities    StageID = "search_activities"
	StageComposeItinerary    StageID = "compose_itinerary"
	StageSuggestAlternatives StageID = "suggest_alternatives"
	StageReportError         StageID = "report_error"
	StageDone                StageID = "done"
)

// TokenUsage is the usage metadata reported by the itinerary composer.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// TripState is the aggregate record threaded through the planning run.
// It is created empty at orchestrator entry and incrementally populated by
// each stage via Apply. In a terminal state at most one of Itinerary,
// Alternatives and ErrorDescription is non-empty.
type TripState struct {
	RunID   string      `json:"run_id"`
	Request TripRequest `json:"request"`

	// Budget analysis.
	Region        Region           `json:"region,omitempty"`
	Breakdown     *BudgetBreakdown `json:"breakdown,omitempty"`
	MinRequired   float64          `json:"min_required,omitempty"`
	Feasible      bool             `json:"feasible"`
	BudgetSummary string           `json:"budget_summary,omitempty"`

	// Selections. Candidate lists are the post-filter sets, retained for audit.
	Flight           Selection[Flight] `json:"flight"`
	FlightCandidates []Flight          `json:"flight_candidates,omitempty"`
	Hotel            Selection[Hotel]  `json:"hotel"`
	HotelCandidates  []Hotel           `json:"hotel_candidates,omitempty"`
	Activities       []Activity        `json:"activities,omitempty"`

	// Terminal outcome. Mutually exclusive.
	Itinerary        string `json:"itinerary,omitempty"`
	Alternatives     string `json:"alternatives,omitempty"`
	ErrorDescription string `json:"error,omitempty"`

	// Composition metadata.
	Usage        *TokenUsage `json:"usage,omitempty"`
	UsedFallback bool        `json:"used_fallback,omitempty"`

	// History tracks the stages visited, in order.
	History []StageID `json:"history,omitempty"`
}

// NewTripState creates the initial state for a run.
func NewTripState(req TripRequest) *TripState {
	return &TripState{
		RunID:   uuid.New().String(),
		Request: req,
	}
}

// Outcome returns the terminal text of the run: exactly one of the
// itinerary, the alternatives suggestions, or the error description.
func (s *TripState) Outcome() string {
	switch {
	case s.ErrorDescription != "":
		return s.ErrorDescription
	case s.Alternatives != "":
		return s.Alternatives
	default:
		return s.Itinerary
	}
}

// OutcomeKind labels the terminal branch of the run.
func (s *TripState) OutcomeKind() string {
	switch {
	case s.ErrorDescription != "":
		return "error"
	case s.Alternatives != "":
		return "alternatives"
	default:
		return "planned"
	}
}

// Patch is the delta a stage contributes to the trip state. Nil fields are
// left untouched; the orchestrator applies patches to a copy of the state
// so stages never share mutable data.
type Patch struct {
	Region           *Region
	Breakdown        *BudgetBreakdown
	MinRequired      *float64
	Feasible         *bool
	BudgetSummary    *string
	Flight           *Selection[Flight]
	FlightCandidates []Flight
	Hotel            *Selection[Hotel]
	HotelCandidates  []Hotel
	Activities       []Activity
	Itinerary        *string
	Alternatives     *string
	ErrorDescription *string
	Usage            *TokenUsage
	UsedFallback     *bool
}

// Apply returns a copy of the state with the patch merged in. The receiver
// is not modified.
func (s *TripState) Apply(p Patch) *TripState {
	next := *s
	next.History = append([]StageID(nil), s.History...)

	if p.Region != nil {
		next.Region = *p.Region
	}
	if p.Breakdown != nil {
		b := *p.Breakdown
		next.Breakdown = &b
	}
	if p.MinRequired != nil {
		next.MinRequired = *p.MinRequired
	}
	if p.Feasible != nil {
		next.Feasible = *p.Feasible
	}
	if p.BudgetSummary != nil {
		next.BudgetSummary = *p.BudgetSummary
	}
	if p.Flight != nil {
		next.Flight = *p.Flight
	}
	if p.FlightCandidates != nil {
		next.FlightCandidates = append([]Flight(nil), p.FlightCandidates...)
	}
	if p.Hotel != nil {
		next.Hotel = *p.Hotel
	}
	if p.HotelCandidates != nil {
		next.HotelCandidates = append([]Hotel(nil), p.HotelCandidates...)
	}
	if p.Activities != nil {
		next.Activities = append([]Activity(nil), p.Activities...)
	}
	if p.Itinerary != nil {
		next.Itinerary = *p.Itinerary
	}
	if p.Alternatives != nil {
		next.Alternatives = *p.Alternatives
	}
	if p.ErrorDescription != nil {
		next.ErrorDescription = *p.ErrorDescription
	}
	if p.Usage != nil {
		u := *p.Usage
		next.Usage = &u
	}
	if p.UsedFallback != nil {
		next.UsedFallback = *p.UsedFallback
	}
	return &next
}

// Visited appends a stage to the history of a state copy.
func (s *TripState) Visited(stage StageID) *TripState {
	next := *s
	next.History = append(append([]StageID(nil), s.History...), stage)
	return &next
}
