package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Accepted range for user-entered minutes.
const (
	MinMinutes = 1
	MaxMinutes = 999
)

// ErrInvalidSettings is returned when a settings value is not a positive
// integer within the accepted range.
var ErrInvalidSettings = errors.New("invalid settings input")

// TimerConfig holds the configured phase durations.
type TimerConfig struct {
	Work  time.Duration
	Break time.Duration
}

// DefaultTimerConfig returns the classic 25/5 pomodoro durations.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
	}
}

// Validate reports whether both durations are positive whole seconds.
func (config TimerConfig) Validate() error {
	if config.Work < time.Second || config.Work%time.Second != 0 {
		return fmt.Errorf("%w: work duration %s", ErrInvalidSettings, config.Work)
	}
	if config.Break < time.Second || config.Break%time.Second != 0 {
		return fmt.Errorf("%w: break duration %s", ErrInvalidSettings, config.Break)
	}
	return nil
}

// Duration returns the configured length of the given phase.
func (config TimerConfig) Duration(phase Phase) time.Duration {
	if phase == PhaseBreak {
		return config.Break
	}
	return config.Work
}

// ParseTimerConfig converts user-entered minute strings into a TimerConfig.
func ParseTimerConfig(workMinutes, breakMinutes string) (TimerConfig, error) {
	work, err := ParseMinutes(workMinutes)
	if err != nil {
		return TimerConfig{}, fmt.Errorf("work: %w", err)
	}
	rest, err := ParseMinutes(breakMinutes)
	if err != nil {
		return TimerConfig{}, fmt.Errorf("break: %w", err)
	}
	return TimerConfig{
		Work:  time.Duration(work) * time.Minute,
		Break: time.Duration(rest) * time.Minute,
	}, nil
}

// ParseMinutes parses a minutes value in [MinMinutes, MaxMinutes].
func ParseMinutes(value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidSettings, value)
	}
	if parsed < MinMinutes || parsed > MaxMinutes {
		return 0, fmt.Errorf("%w: %d is outside %d..%d minutes", ErrInvalidSettings, parsed, MinMinutes, MaxMinutes)
	}
	return parsed, nil
}
