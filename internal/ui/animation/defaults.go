package animation

import "time"

// DefaultConfig returns three flashes at half-second steps.
func DefaultConfig() Config {
	return Config{
		FlashCount:    3,
		FlashInterval: 500 * time.Millisecond,
	}
}
