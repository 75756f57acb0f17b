// Package mcp exposes trip planning as an MCP server so agent hosts can
// call the planner as a tool.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/wayfarer/internal/logging"
	"github.com/aretw0/wayfarer/pkg/domain"
)

// Planner is the planning surface the MCP server depends on.
type Planner interface {
	Plan(ctx context.Context, req domain.TripRequest) (*domain.TripState, error)
}

// DestinationLister is optionally implemented by catalogs that can
// enumerate their destinations.
type DestinationLister interface {
	Destinations(ctx context.Context) ([]string, error)
}

// PlanResult is the structured output of the plan_trip tool.
type PlanResult struct {
	Outcome string            `json:"outcome" jsonschema_description:"Terminal branch of the run: planned, alternatives or error"`
	Text    string            `json:"text" jsonschema_description:"Itinerary, alternative suggestions or error description"`
	State   *domain.TripState `json:"state,omitempty" jsonschema_description:"Full final planning state"`
}

// Server wraps a Planner and exposes it as an MCP server.
type Server struct {
	planner   Planner
	lister    DestinationLister
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithDestinationLister enables the destination listing tool and resource.
func WithDestinationLister(lister DestinationLister) Option {
	return func(s *Server) {
		s.lister = lister
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates an MCP server for the planner.
func NewServer(planner Planner, version string, opts ...Option) *Server {
	s := &Server{
		planner:   planner,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("wayfarer-mcp", version),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: plan_trip
	planTool := mcp.NewTool("plan_trip",
		mcp.WithDescription("Plan a trip within a budget. Returns a day-by-day itinerary, or alternative suggestions when the budget cannot cover the destination."),
		mcp.WithString("destination", mcp.Required(), mcp.Description("Destination city or country")),
		mcp.WithString("origin", mcp.Description("Departure city (optional)")),
		mcp.WithNumber("budget", mcp.Required(), mcp.Description("Total trip budget")),
		mcp.WithNumber("duration", mcp.Required(), mcp.Description("Trip length in days, 1 to 30")),
		mcp.WithString("dietary", mcp.Description("Dietary preference: vegetarian, vegan, halal, kosher, gluten_free")),
		mcp.WithString("accommodation", mcp.Description("Accommodation preference: hotel, hostel, apartment, resort")),
		mcp.WithString("activity_style", mcp.Description("Activity style: adventure, cultural, relaxation, nightlife, family")),
		mcp.WithOutputSchema[PlanResult](),
	)
	s.mcpServer.AddTool(planTool, mcp.NewStructuredToolHandler(s.handlePlanTrip))

	// TOOL: list_destinations
	if s.lister != nil {
		s.mcpServer.AddTool(mcp.NewTool("list_destinations",
			mcp.WithDescription("List the destinations the planner has candidate data for."),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			names, err := s.lister.Destinations(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("listing failed: %v", err)), nil
			}
			jsonBytes, _ := json.Marshal(names)
			return mcp.NewToolResultText(string(jsonBytes)), nil
		})
	}
}

func (s *Server) handlePlanTrip(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PlanResult, error) {
	req := domain.TripRequest{}
	req.Destination, _ = args["destination"].(string)
	req.Origin, _ = args["origin"].(string)
	if v, ok := args["budget"].(float64); ok {
		req.Budget = v
	}
	if v, ok := args["duration"].(float64); ok {
		req.Duration = int(v)
	}
	if v, ok := args["dietary"].(string); ok {
		req.Preferences.Dietary = domain.DietaryPreference(v)
	}
	if v, ok := args["accommodation"].(string); ok {
		req.Preferences.Accommodation = domain.AccommodationType(v)
	}
	if v, ok := args["activity_style"].(string); ok {
		req.Preferences.Activity = domain.ActivityStyle(v)
	}

	state, err := s.planner.Plan(ctx, req)
	if err != nil {
		return PlanResult{}, fmt.Errorf("plan failed: %w", err)
	}

	s.logger.Info("plan_trip finished",
		"run_id", state.RunID, "destination", req.Destination, "outcome", state.OutcomeKind())

	return PlanResult{
		Outcome: state.OutcomeKind(),
		Text:    state.Outcome(),
		State:   state,
	}, nil
}

func (s *Server) registerResources() {
	if s.lister == nil {
		return
	}

	// EXPOSE: wayfarer://destinations
	s.mcpServer.AddResource(mcp.NewResource("wayfarer://destinations", "Known Destinations",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.lister.Destinations(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing failed: %w", err)
		}
		jsonBytes, err := json.Marshal(names)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "wayfarer://destinations",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
