package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wayfarer/pkg/domain"
)

type stubPlanner struct {
	state *domain.TripState
	err   error
}

func (p *stubPlanner) Plan(_ context.Context, req domain.TripRequest) (*domain.TripState, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.state != nil {
		return p.state, nil
	}
	s := domain.NewTripState(req)
	return s.Apply(domain.Patch{
		Itinerary: ptr("## Day 1\nArrive."),
	}).Visited(domain.StageDone), nil
}

func ptr[T any](v T) *T {
	return &v
}

func validBody() string {
	return `{"destination":"Paris","origin":"Berlin","budget":3000,"duration":5}`
}

func TestGetHealth(t *testing.T) {
	handler := NewHandler(&stubPlanner{})

	req, _ := http.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := NewHandler(&stubPlanner{}, WithVersion("0.3.0"))

	req, _ := http.NewRequest("GET", "/info", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "wayfarer-http", resp["app"])
	assert.Equal(t, "0.3.0", resp["version"])
	assert.Equal(t, "0.1.0", resp["api_version"])
}

func TestPostPlanReturnsFinalState(t *testing.T) {
	handler := NewHandler(&stubPlanner{})

	req, _ := http.NewRequest("POST", "/plan", strings.NewReader(validBody()))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp planResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "planned", resp.Outcome)
	require.NotNil(t, resp.State)
	assert.Contains(t, resp.State.Itinerary, "Day 1")
}

func TestPostPlanRejectsMalformedBody(t *testing.T) {
	handler := NewHandler(&stubPlanner{})

	req, _ := http.NewRequest("POST", "/plan", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPostPlanRejectsInvalidRequest(t *testing.T) {
	handler := NewHandler(&stubPlanner{})

	body := `{"destination":"Paris","budget":-5,"duration":5}`
	req, _ := http.NewRequest("POST", "/plan", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "budget")
}

func TestPostPlanSurfacesPlannerError(t *testing.T) {
	handler := NewHandler(&stubPlanner{err: errors.New("catalog offline")})

	req, _ := http.NewRequest("POST", "/plan", strings.NewReader(validBody()))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestMetricsEndpointCountsPlans(t *testing.T) {
	handler := NewHandler(&stubPlanner{})

	req, _ := http.NewRequest("POST", "/plan", strings.NewReader(validBody()))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	mreq, _ := http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, mreq)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `wayfarer_plans_total{outcome="planned"} 1`)
}
