// Package graph renders the planning state machine as Mermaid flowchart
// syntax, for documentation and for inspecting a finished run.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/wayfarer/pkg/domain"
)

// Overlay contains run data to visualize on the stage graph.
type Overlay struct {
	VisitedStages []domain.StageID
	CurrentStage  domain.StageID
}

type edge struct {
	from      domain.StageID
	to        domain.StageID
	condition string
}

// stageEdges mirrors the routing function: every arrow the run can take.
var stageEdges = []edge{
	{domain.StageBudgetAnalysis, domain.StageSearchFlights, "feasible"},
	{domain.StageBudgetAnalysis, domain.StageSuggestAlternatives, "infeasible"},
	{domain.StageSearchFlights, domain.StageSearchHotels, ""},
	{domain.StageSearchHotels, domain.StageSearchActivities, "hotel found"},
	{domain.StageSearchHotels, domain.StageComposeItinerary, "no hotel"},
	{domain.StageSearchActivities, domain.StageComposeItinerary, ""},
	{domain.StageComposeItinerary, domain.StageDone, ""},
	{domain.StageSuggestAlternatives, domain.StageDone, ""},
	{domain.StageReportError, domain.StageDone, ""},
}

// GenerateMermaid produces a Mermaid flowchart of the planning stages.
// Shapes are semantic:
// - budget_analysis (entry): ((Circle))
// - compose_itinerary (generation): [[Subroutine]]
// - done: ((Circle))
// - Default: [Rectangle]
// Visited and current stages from the overlay are styled when provided.
func GenerateMermaid(overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, stage := range []domain.StageID{
		domain.StageBudgetAnalysis,
		domain.StageSearchFlights,
		domain.StageSearchHotels,
		domain.StageSearchActivities,
		domain.StageComposeItinerary,
		domain.StageSuggestAlternatives,
		domain.StageReportError,
		domain.StageDone,
	} {
		opener, closer := "[", "]"
		switch stage {
		case domain.StageBudgetAnalysis, domain.StageDone:
			opener, closer = "((", "))"
		case domain.StageComposeItinerary:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(stage), opener, stage, closer))
	}

	for _, e := range stageEdges {
		arrow := "-->"
		if e.condition != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", e.condition)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(e.from), arrow, sanitizeMermaidID(e.to)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for high-contrast on light backgrounds, regardless of theme
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedStages {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentStage != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentStage)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id domain.StageID) string {
	s := strings.ReplaceAll(string(id), ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}
