package model

import (
	"image/color"
	"testing"
	"time"
)

func TestTrayColor(t *testing.T) {
	tests := []struct {
		name  string
		state TimerState
		want  color.NRGBA
	}{
		{"work above threshold", TimerState{Phase: PhaseWork, Remaining: 61 * time.Second, Running: true}, WorkColor},
		{"work at threshold", TimerState{Phase: PhaseWork, Remaining: 60 * time.Second, Running: true}, UrgentColor},
		{"work at threshold idle", TimerState{Phase: PhaseWork, Remaining: 60 * time.Second}, WorkColor},
		{"break final seconds", TimerState{Phase: PhaseBreak, Remaining: time.Second, Running: true}, UrgentColor},
		{"break idle", TimerState{Phase: PhaseBreak, Remaining: 5 * time.Minute}, BreakColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrayColor(tt.state); got != tt.want {
				t.Fatalf("TrayColor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	display := Derive(TimerState{Phase: PhaseBreak, Remaining: 4*time.Minute + 7*time.Second, Running: true})
	if display.Clock != "04:07" {
		t.Fatalf("clock = %q", display.Clock)
	}
	if display.Status != "Break time" {
		t.Fatalf("status = %q", display.Status)
	}
	if display.Title != "Pomodoro - 04:07 - Break" {
		t.Fatalf("title = %q", display.Title)
	}
	if display.CanStart || !display.CanPause {
		t.Fatalf("affordances = start:%v pause:%v", display.CanStart, display.CanPause)
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[time.Duration]string{
		0:                 "00:00",
		-time.Second:      "00:00",
		59 * time.Second:  "00:59",
		25 * time.Minute:  "25:00",
		999 * time.Minute: "999:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%s) = %q, want %q", in, got, want)
		}
	}
}
