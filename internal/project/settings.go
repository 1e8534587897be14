package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/renoworks/renoquote/internal/model"
)

// DefaultConfigDir returns the directory for the contractor profile.
// On all platforms this is ~/.renoquote/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".renoquote")
}

// DefaultSettingsPath returns the default path for the contractor profile.
func DefaultSettingsPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveSettings persists the contractor profile to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveSettings(path string, s model.Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSettings reads the contractor profile from the given path.
// If the file does not exist, it returns DefaultSettings with no error.
func LoadSettings(path string) (model.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, err
	}
	var s model.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Settings{}, err
	}
	if s.Currency == "" {
		s.Currency = "$"
	}
	return s, nil
}
