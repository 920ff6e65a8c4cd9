package config

// PegfitConfig is the top-level configuration structure for pegfit.
type PegfitConfig struct {
	Output   string `yaml:"output,omitempty"`   // "text", "table", "json" or "yaml"
	LogLevel string `yaml:"logLevel,omitempty"` // "debug", "info", "warn" or "error"
	// Color forces colour on or off. Nil leaves it to terminal detection.
	Color *bool  `yaml:"color,omitempty"`
	Theme string `yaml:"theme,omitempty"` // "dark" or "light"
}

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ColorEnabled resolves the Color setting, falling back to auto when unset.
func (c PegfitConfig) ColorEnabled(auto bool) bool {
	if c.Color == nil {
		return auto
	}
	return *c.Color
}
