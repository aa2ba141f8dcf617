package preferences

import (
	"time"

	"pomotray/internal/core/model"
	"pomotray/internal/ui/animation"
)

// Settings defines user-editable preferences.
type Settings struct {
	WorkMinutes  int
	BreakMinutes int
	Chime        bool

	FlashCount    int
	FlashInterval time.Duration
}

// DefaultSettings returns default settings for Pomotray.
func DefaultSettings() Settings {
	flash := animation.DefaultConfig()
	return Settings{
		WorkMinutes:   25,
		BreakMinutes:  5,
		Chime:         true,
		FlashCount:    flash.FlashCount,
		FlashInterval: flash.FlashInterval,
	}
}

// TimerConfig converts settings to a model.TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Work:  time.Duration(settings.WorkMinutes) * time.Minute,
		Break: time.Duration(settings.BreakMinutes) * time.Minute,
	}
}

// FlashConfig converts settings to the tray flash configuration.
func (settings Settings) FlashConfig() animation.Config {
	return animation.Config{
		FlashCount:    settings.FlashCount,
		FlashInterval: settings.FlashInterval,
	}
}
