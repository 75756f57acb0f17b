package domain

import (
	"context"
	"time"
)

// EventType defines the category of a lifecycle event.
type EventType string

const (
	EventStageEnter     EventType = "stage_enter"
	EventStageLeave     EventType = "stage_leave"
	EventComposerCall   EventType = "composer_call"
	EventComposerReturn EventType = "composer_return"
)

// StageEvent reports entry to or exit from a planning stage.
type StageEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
	Stage     StageID   `json:"stage"`
}

// ComposerEvent reports a call to the itinerary composer.
type ComposerEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
	Fallback  bool      `json:"fallback,omitempty"`
	IsError   bool      `json:"is_error,omitempty"`
}

// LifecycleHooks defines callbacks for planner observability. Nil hooks
// are skipped.
type LifecycleHooks struct {
	OnStageEnter     func(context.Context, *StageEvent)
	OnStageLeave     func(context.Context, *StageEvent)
	OnComposerCall   func(context.Context, *ComposerEvent)
	OnComposerReturn func(context.Context, *ComposerEvent)
}
