package model

import "time"

// Phase identifies which interval is counting down.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Next returns the phase that follows this one.
func (phase Phase) Next() Phase {
	if phase == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

// TickStep is the amount of time removed by a single tick.
const TickStep = time.Second

// TimerState is the countdown state. Transitions are pure: each method
// returns the next state and leaves the receiver untouched.
type TimerState struct {
	Phase     Phase
	Remaining time.Duration
	Running   bool
}

// Transition describes the side effects a caller has to publish.
type Transition struct {
	Changed bool
	// Completed is set when the tick finished a phase.
	Completed bool
	// Finished is the phase that just ended when Completed is set.
	Finished Phase
}

// NewTimerState returns the startup state: idle at the start of work.
func NewTimerState(config TimerConfig) TimerState {
	return TimerState{
		Phase:     PhaseWork,
		Remaining: config.Work,
	}
}

// Start marks the state as running. Starting twice is a no-op.
func (state TimerState) Start() (TimerState, Transition) {
	if state.Running {
		return state, Transition{}
	}
	state.Running = true
	return state, Transition{Changed: true}
}

// Pause marks the state as idle. Pausing while idle is a no-op.
func (state TimerState) Pause() (TimerState, Transition) {
	if !state.Running {
		return state, Transition{}
	}
	state.Running = false
	return state, Transition{Changed: true}
}

// Reset stops the countdown and refills the current phase.
func (state TimerState) Reset(config TimerConfig) (TimerState, Transition) {
	state.Running = false
	state.Remaining = config.Duration(state.Phase)
	return state, Transition{Changed: true}
}

// Apply refills the current phase from a new configuration. The running
// flag is left as it was.
func (state TimerState) Apply(config TimerConfig) (TimerState, Transition) {
	state.Remaining = config.Duration(state.Phase)
	return state, Transition{Changed: true}
}

// Tick removes one TickStep while running. Reaching zero completes the
// phase: the state stops, flips phase and refills from config.
func (state TimerState) Tick(config TimerConfig) (TimerState, Transition) {
	if !state.Running || state.Remaining <= 0 {
		return state, Transition{}
	}
	state.Remaining -= TickStep
	if state.Remaining > 0 {
		return state, Transition{Changed: true}
	}
	return state.complete(config)
}

func (state TimerState) complete(config TimerConfig) (TimerState, Transition) {
	finished := state.Phase
	state.Running = false
	state.Phase = finished.Next()
	state.Remaining = config.Duration(state.Phase)
	return state, Transition{Changed: true, Completed: true, Finished: finished}
}
