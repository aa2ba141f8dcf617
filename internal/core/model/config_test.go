package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimerConfig(t *testing.T) {
	tests := []struct {
		name      string
		work      string
		rest      string
		want      TimerConfig
		wantError bool
	}{
		{name: "classic", work: "25", rest: "5", want: TimerConfig{Work: 1500 * time.Second, Break: 300 * time.Second}},
		{name: "padded", work: " 50 ", rest: "10", want: TimerConfig{Work: 50 * time.Minute, Break: 10 * time.Minute}},
		{name: "letters", work: "abc", rest: "5", wantError: true},
		{name: "empty break", work: "25", rest: "", wantError: true},
		{name: "zero", work: "0", rest: "5", wantError: true},
		{name: "negative", work: "25", rest: "-5", wantError: true},
		{name: "decimal", work: "2.5", rest: "5", wantError: true},
		{name: "too large", work: "1000", rest: "5", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimerConfig(tt.work, tt.rest)
			if tt.wantError {
				if !errors.Is(err, ErrInvalidSettings) {
					t.Fatalf("err = %v, want ErrInvalidSettings", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultTimerConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := []TimerConfig{
		{Work: 0, Break: time.Minute},
		{Work: time.Minute, Break: -time.Second},
		{Work: 1500 * time.Millisecond, Break: time.Minute},
	}
	for _, config := range bad {
		if err := config.Validate(); !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("Validate(%+v) = %v", config, err)
		}
	}
}
