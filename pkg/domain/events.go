package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventMenuChoice EventType = "menu_choice"
	EventPhaseEnter EventType = "phase_enter"
	EventPhaseLeave EventType = "phase_leave"
	EventStepAck    EventType = "step_ack"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ChoiceEvent is emitted for every token the conversation driver dispatches.
type ChoiceEvent struct {
	EventBase
	Choice string `json:"choice"`
	Valid  bool   `json:"valid"`
}

// PhaseEvent represents entry into or exit from a phase walkthrough.
type PhaseEvent struct {
	EventBase
	PhaseIndex int    `json:"phase_index"`
	Title      string `json:"title"`
	Steps      int    `json:"steps"`
	// Outcome is set on leave: "completed", "skipped" or "interrupted".
	Outcome string `json:"outcome,omitempty"`
}

// StepEvent represents an acknowledged guide step.
type StepEvent struct {
	EventBase
	PhaseIndex int    `json:"phase_index"`
	Position   int    `json:"position"`
	Total      int    `json:"total"`
	Text       string `json:"text"`
}

// Phase walkthrough outcomes.
const (
	OutcomeCompleted   = "completed"
	OutcomeSkipped     = "skipped"
	OutcomeInterrupted = "interrupted"
)

// LifecycleHooks defines callbacks for observability. Nil hooks are ignored.
type LifecycleHooks struct {
	OnMenuChoice func(context.Context, *ChoiceEvent)
	OnPhaseEnter func(context.Context, *PhaseEvent)
	OnPhaseLeave func(context.Context, *PhaseEvent)
	OnStepAck    func(context.Context, *StepEvent)
}
