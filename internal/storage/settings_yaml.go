package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomotray/internal/core/model"
	"pomotray/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes     int   `yaml:"work_minutes"`
	BreakMinutes    int   `yaml:"break_minutes"`
	Chime           *bool `yaml:"chime"`
	FlashCount      int   `yaml:"flash_count"`
	FlashIntervalMS int   `yaml:"flash_interval_ms"`
}

// LoadSettings reads user preferences from the default YAML location.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from path. Values outside their
// accepted range keep the default.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// ConfigPath returns the settings file location for appName.
func ConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if validMinutes(fileData.WorkMinutes) {
		settings.WorkMinutes = fileData.WorkMinutes
	}
	if validMinutes(fileData.BreakMinutes) {
		settings.BreakMinutes = fileData.BreakMinutes
	}
	if fileData.Chime != nil {
		settings.Chime = *fileData.Chime
	}
	if fileData.FlashCount > 0 && fileData.FlashCount <= 10 {
		settings.FlashCount = fileData.FlashCount
	}
	if fileData.FlashIntervalMS >= 100 && fileData.FlashIntervalMS <= 2000 {
		settings.FlashInterval = time.Duration(fileData.FlashIntervalMS) * time.Millisecond
	}
}

func validMinutes(minutes int) bool {
	return minutes >= model.MinMinutes && minutes <= model.MaxMinutes
}
