package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlanner loads the planner configuration.
// Search order: customPath -> ~/.planner/configs/planner.yaml -> ./configs/planner.yaml -> embedded default
func LoadPlanner(customPath string) (PlannerConfig, error) {
	cfg := DefaultPlannerConfig()
	if err := load("planner.yaml", customPath, defaultPlannerYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadChargedUp loads ChargedUp engine configuration.
// Search order: customPath -> ~/.planner/configs/chargedup.yaml -> ./configs/chargedup.yaml -> embedded default
func LoadChargedUp(customPath string) (ChargedUpConfig, error) {
	cfg := DefaultChargedUpConfig()
	if err := load("chargedup.yaml", customPath, defaultChargedUpYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultChargedUpConfig(), fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// load decodes the first readable source into out. Fields missing from the
// file keep the values out already holds.
func load(filename, customPath string, embedded []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML; the hardcoded defaults already in out
	// stand if it fails to parse.
	//nolint:errcheck // Fallback to hardcoded defaults
	yaml.Unmarshal(embedded, out)
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planner", "configs", filename)
}

// Validate checks the ChargedUp configuration for values the engine cannot use.
func (c ChargedUpConfig) Validate() error {
	if c.Alliance != "blue" && c.Alliance != "red" {
		return fmt.Errorf("alliance must be blue or red, got %q", c.Alliance)
	}
	for i, cell := range c.Preload {
		if cell.Alliance != "" && cell.Alliance != "blue" && cell.Alliance != "red" {
			return fmt.Errorf("preload %d: alliance must be blue or red, got %q", i, cell.Alliance)
		}
		if cell.Grid < 0 || cell.Grid > 2 {
			return fmt.Errorf("preload %d: grid must be 0-2, got %d", i, cell.Grid)
		}
		switch cell.Row {
		case "top", "mid", "low":
		default:
			return fmt.Errorf("preload %d: unknown row %q", i, cell.Row)
		}
		switch cell.Col {
		case "a", "b", "c":
		default:
			return fmt.Errorf("preload %d: unknown column %q", i, cell.Col)
		}
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
