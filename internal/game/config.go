package game

import (
	"log"
	"os"

	"gopkg.in/ini.v1"
)

// Config holds presentation and observability settings. The room layout
// is never configurable from here; the map is fixed at build time.
type Config struct {
	// Prompt is printed before each command read.
	Prompt string
	// DividerWidth is the length of the dashed line between turns.
	DividerWidth int
	// TelemetryEnabled controls whether traces are exported.
	TelemetryEnabled bool
}

// DefaultConfig returns the settings the original game shipped with.
func DefaultConfig() Config {
	return Config{
		Prompt:           CommandPrompt,
		DividerWidth:     30,
		TelemetryEnabled: true,
	}
}

// LoadConfig reads an optional ini settings file, falling back to
// defaults for anything missing. An absent file is not an error.
func LoadConfig(path string) Config {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		return cfg
	}

	file, err := ini.Load(path)
	if err != nil {
		log.Printf("Note: settings file %s not loaded: %v", path, err)
		return cfg
	}

	display := file.Section("display")
	cfg.Prompt = display.Key("prompt").MustString(cfg.Prompt)
	if width := display.Key("divider_width").MustInt(cfg.DividerWidth); width > 0 {
		cfg.DividerWidth = width
	}

	cfg.TelemetryEnabled = file.Section("telemetry").Key("enabled").MustBool(cfg.TelemetryEnabled)

	return cfg
}
