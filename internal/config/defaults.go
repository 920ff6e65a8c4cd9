package config

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() PegfitConfig {
	return PegfitConfig{
		Output:   "text",
		LogLevel: "info",
		Theme:    ThemeDark,
	}
}
