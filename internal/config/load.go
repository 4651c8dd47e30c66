package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot start with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FPSLimit < 0 {
		return fmt.Errorf("graphics: fps_limit must not be negative, got %d", c.Graphics.FPSLimit)
	}
	if c.Navigation.MoveSpeed < 0 {
		return fmt.Errorf("navigation: move_speed must not be negative, got %g", c.Navigation.MoveSpeed)
	}
	if c.Navigation.Near <= 0 || c.Navigation.Far <= c.Navigation.Near {
		return fmt.Errorf("navigation: invalid clip range %g..%g", c.Navigation.Near, c.Navigation.Far)
	}
	if c.Navigation.FOV <= 0 || c.Navigation.FOV >= 180 {
		return fmt.Errorf("navigation: fov must be in (0, 180), got %g", c.Navigation.FOV)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "LiftLobby")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "LiftLobby")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "liftlobby")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "liftlobby")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	return nil
}
