package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/wayfarer/internal/presentation/graph"
	"github.com/aretw0/wayfarer/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.Overlay
		contains []string
	}{
		{
			name: "Stage Shapes",
			contains: []string{
				"budget_analysis((\"budget_analysis\"))",
				"compose_itinerary[[\"compose_itinerary\"]]",
				"search_hotels[\"search_hotels\"]",
				"done((\"done\"))",
			},
		},
		{
			name: "Conditional Edges",
			contains: []string{
				"budget_analysis -- \"feasible\" --> search_flights",
				"budget_analysis -- \"infeasible\" --> suggest_alternatives",
				"search_hotels -- \"no hotel\" --> compose_itinerary",
			},
		},
		{
			name: "Overlay Styles",
			overlay: &graph.Overlay{
				VisitedStages: []domain.StageID{
					domain.StageBudgetAnalysis,
					domain.StageSearchFlights,
					domain.StageBudgetAnalysis, // duplicates collapse
				},
				CurrentStage: domain.StageSearchHotels,
			},
			contains: []string{
				"classDef visited",
				"class budget_analysis visited;",
				"class search_flights visited;",
				"class search_hotels current;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n%s", want, out)
				}
			}
		})
	}
}

func TestGenerateMermaidDeduplicatesVisited(t *testing.T) {
	out := graph.GenerateMermaid(&graph.Overlay{
		VisitedStages: []domain.StageID{domain.StageSearchFlights, domain.StageSearchFlights},
	})
	if strings.Count(out, "class search_flights visited;") != 1 {
		t.Errorf("expected single visited class entry\n%s", out)
	}
}
