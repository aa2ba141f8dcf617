package model

import (
	"fmt"
	"image/color"
	"time"
)

// UrgentThreshold is the remaining time at or below which a running
// countdown shows the urgent colour.
const UrgentThreshold = 60 * time.Second

// Tray colours.
var (
	WorkColor   = color.NRGBA{R: 220, G: 40, B: 40, A: 255}
	BreakColor  = color.NRGBA{R: 40, G: 170, B: 70, A: 255}
	UrgentColor = color.NRGBA{R: 255, G: 140, B: 0, A: 255}
	AlertColor  = color.NRGBA{R: 250, G: 220, B: 30, A: 255}
)

// Display is everything a presentation surface renders.
type Display struct {
	Phase     Phase
	Remaining time.Duration
	Running   bool
	Clock     string
	Status    string
	Title     string
	TrayColor color.NRGBA
	CanStart  bool
	CanPause  bool
}

// Derive computes the display fields for a state.
func Derive(state TimerState) Display {
	clock := FormatClock(state.Remaining)
	return Display{
		Phase:     state.Phase,
		Remaining: state.Remaining,
		Running:   state.Running,
		Clock:     clock,
		Status:    StatusText(state.Phase),
		Title:     fmt.Sprintf("Pomodoro - %s - %s", clock, PhaseLabel(state.Phase)),
		TrayColor: TrayColor(state),
		CanStart:  !state.Running,
		CanPause:  state.Running,
	}
}

// TrayColor returns the resting colour of the phase, or the urgent colour
// during the final minute of a running countdown.
func TrayColor(state TimerState) color.NRGBA {
	if state.Running && state.Remaining <= UrgentThreshold {
		return UrgentColor
	}
	return RestingColor(state.Phase)
}

// RestingColor returns the idle colour of a phase.
func RestingColor(phase Phase) color.NRGBA {
	if phase == PhaseBreak {
		return BreakColor
	}
	return WorkColor
}

// FormatClock renders a duration as MM:SS.
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// PhaseLabel is the short name of a phase.
func PhaseLabel(phase Phase) string {
	if phase == PhaseBreak {
		return "Break"
	}
	return "Work"
}

// StatusText is the status line shown under the clock.
func StatusText(phase Phase) string {
	if phase == PhaseBreak {
		return "Break time"
	}
	return "Work time"
}

// FinishedMessage is the user-facing message for the end of a phase.
func FinishedMessage(finished Phase) string {
	if finished == PhaseBreak {
		return "Break finished! Back to work."
	}
	return "Work finished! Time for a break."
}
