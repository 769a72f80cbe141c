package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/SceneForge/internal/model"
)

// SaveResult persists a scene result to the given path as JSON. It
// creates any missing parent directories automatically.
func SaveResult(path string, result model.SceneResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadResult reads a scene result from the given path.
func LoadResult(path string) (model.SceneResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SceneResult{}, err
	}
	var result model.SceneResult
	if err := json.Unmarshal(data, &result); err != nil {
		return model.SceneResult{}, err
	}
	return result, nil
}

// AppConfig holds tool-level preferences for the CLI and viewer.
type AppConfig struct {
	RecentScenarios []string                `json:"recent_scenarios"`
	ExportDir       string                  `json:"export_dir"`
	Settings        model.PlacementSettings `json:"settings"`
}

// DefaultAppConfig returns the configuration used when none exists.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		RecentScenarios: []string{},
		Settings:        model.DefaultSettings(),
	}
}

// DefaultConfigDir returns the default directory for application
// configuration. On all platforms this is ~/.sceneforge/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".sceneforge")
}

// DefaultConfigPath returns the default path for the application config
// file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
func SaveAppConfig(path string, config AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path. If the file does
// not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	if config.RecentScenarios == nil {
		config.RecentScenarios = []string{}
	}
	return config, nil
}
