package compiler

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the non-functional presentation knobs that cc86.yaml may
// carry. None of these affect emitted-code semantics.
type Config struct {
	Color       string `yaml:"color"`       // auto|always|never
	WarnAsError bool   `yaml:"warnAsError"` // accepted, currently a no-op
	StackProbe  bool   `yaml:"stackProbe"`
}

func defaultConfig() Config {
	return Config{Color: "auto"}
}

// LoadConfig reads and parses a cc86.yaml at path. A missing file at the
// default path is not an error — it yields defaultConfig(); a missing
// file at an explicitly requested path is.
func LoadConfig(path string, explicit bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}
		return Config{}, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) ColorMode() ColorMode {
	switch c.Color {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
