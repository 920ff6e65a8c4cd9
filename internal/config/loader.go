package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pegfit/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/pegfit"
	projectConfigDir = ".pegfit"
	configFileName   = "config.yaml"
)

// LoadConfig loads the pegfit configuration by layering default, user, and project settings.
func LoadConfig() (PegfitConfig, error) {
	config := GetDefaultConfig()

	layers := []struct {
		name string
		path func() (string, error)
	}{
		{"user", getUserConfigPath},
		{"project", getProjectConfigPath},
	}

	for _, layer := range layers {
		path, err := layer.path()
		if err != nil {
			// Optional layer, keep going without it.
			logging.Warn("Config", "Could not determine %s config path: %v", layer.name, err)
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if err != nil {
			return PegfitConfig{}, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		logging.Debug("Config", "Loaded %s config from %s", layer.name, path)
		config = mergeConfigs(config, overlay)
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a PegfitConfig from a YAML file.
func loadConfigFromFile(filePath string) (PegfitConfig, error) {
	var config PegfitConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return PegfitConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return PegfitConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay PegfitConfig) PegfitConfig {
	merged := base

	if overlay.Output != "" {
		merged.Output = overlay.Output
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.Color != nil {
		c := *overlay.Color
		merged.Color = &c
	}
	if overlay.Theme != "" {
		merged.Theme = overlay.Theme
	}

	return merged
}
