package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "platformer.yaml"

// searchPaths lists the files Load tries when no path is given, in order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".platformer", "configs", configFile))
	}
	return append(paths, filepath.Join("configs", configFile))
}

// Load reads the platformer configuration. Fields missing from a file keep
// their default values.
//
// An explicit path must exist and be valid. Otherwise the first readable and
// valid file of searchPaths wins, then the embedded defaults.
func Load(path string) (PlatformerConfig, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("config: read %s: %w", path, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("config: parse %s: %w", path, err)
		}
		return cfg, nil
	}

	for _, candidate := range searchPaths() {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultPlatformerYAML); err == nil {
		return cfg, nil
	}
	return DefaultPlatformerConfig(), nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
