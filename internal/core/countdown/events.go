package countdown

import (
	"time"

	"pomotray/internal/core/model"
)

// EventType defines the type of Controller event.
type EventType string

const (
	EventStateChange   EventType = "state_change"
	EventPhaseComplete EventType = "phase_complete"
)

// Event represents a Controller update for observers.
type Event struct {
	Type    EventType
	State   model.TimerState
	Display model.Display
	// Finished is the phase that just ended, set on EventPhaseComplete.
	Finished model.Phase
	Message  string
	At       time.Time
}
