package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the optional YAML app config. BoardingOverrides maps a route id to
// the area id trips on that route board from, for origin cities with more
// than one station; it takes precedence over the default city area.
type File struct {
	BoardingOverrides map[string]string `yaml:"boarding_overrides"`
	FeatureTags       []string          `yaml:"feature_tags"`
}

// DefaultFeatureTags mirror the checkboxes of the original filter form, used
// when no config file provides its own list.
var DefaultFeatureTags = []string{"A/C", "WiFi", "WC", "USB Charge", "TV", "Reclining Seats"}

// LoadFile reads the YAML config at path. An empty path yields defaults.
func LoadFile(path string) (File, error) {
	f := File{FeatureTags: DefaultFeatureTags}
	if path == "" {
		return f, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(f.FeatureTags) == 0 {
		f.FeatureTags = DefaultFeatureTags
	}
	return f, nil
}
