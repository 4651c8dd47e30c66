package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.FPSLimit != 120 {
		t.Errorf("expected fps limit 120, got %d", cfg.Graphics.FPSLimit)
	}

	// Test navigation defaults
	nav := cfg.Navigation
	if nav.MoveSpeed != 0.25 {
		t.Errorf("expected move speed 0.25, got %f", nav.MoveSpeed)
	}
	if nav.Standoff != 0.5 {
		t.Errorf("expected standoff 0.5, got %f", nav.Standoff)
	}
	if nav.EyeHeight != 1.5 {
		t.Errorf("expected eye height 1.5, got %f", nav.EyeHeight)
	}
	if nav.StartViewpoint != "overview" {
		t.Errorf("expected start viewpoint 'overview', got %s", nav.StartViewpoint)
	}
	if nav.StartPosition != [3]float32{0, 15, 30} {
		t.Errorf("unexpected start position %v", nav.StartPosition)
	}

	// Test minimap defaults
	if cfg.Minimap.Size != 200 {
		t.Errorf("expected minimap size 200, got %d", cfg.Minimap.Size)
	}

	// Test data and logging defaults
	if cfg.Data.Layout != "" || cfg.Data.WatchLayout {
		t.Errorf("expected built-in layout without watching, got %+v", cfg.Data)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 60

navigation:
  move_speed: 0.1
  walk_duration: 750ms
  start_position: [1, 2, 3]
  start_viewpoint: topview

minimap:
  size: 256

data:
  layout: "lobby.yaml"
  watch_layout: true

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.FPSLimit != 60 {
		t.Errorf("expected fps limit 60, got %d", cfg.Graphics.FPSLimit)
	}

	if cfg.Navigation.MoveSpeed != 0.1 {
		t.Errorf("expected move speed 0.1, got %f", cfg.Navigation.MoveSpeed)
	}
	if cfg.Navigation.WalkDuration != 750*time.Millisecond {
		t.Errorf("expected walk duration 750ms, got %v", cfg.Navigation.WalkDuration)
	}
	if cfg.Navigation.StartPosition != [3]float32{1, 2, 3} {
		t.Errorf("unexpected start position %v", cfg.Navigation.StartPosition)
	}
	if cfg.Navigation.StartViewpoint != "topview" {
		t.Errorf("expected start viewpoint 'topview', got %s", cfg.Navigation.StartViewpoint)
	}
	// Untouched keys keep their defaults
	if cfg.Navigation.Standoff != 0.5 {
		t.Errorf("expected default standoff, got %f", cfg.Navigation.Standoff)
	}

	if cfg.Minimap.Size != 256 {
		t.Errorf("expected minimap size 256, got %d", cfg.Minimap.Size)
	}
	if cfg.Data.Layout != "lobby.yaml" || !cfg.Data.WatchLayout {
		t.Errorf("unexpected data config %+v", cfg.Data)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "invalid size"},
		{"negative fps", func(c *Config) { c.Graphics.FPSLimit = -1 }, "fps_limit"},
		{"unlimited fps", func(c *Config) { c.Graphics.FPSLimit = 0 }, ""},
		{"negative speed", func(c *Config) { c.Navigation.MoveSpeed = -1 }, "move_speed"},
		{"far before near", func(c *Config) { c.Navigation.Far = 0.05 }, "clip range"},
		{"flat fov", func(c *Config) { c.Navigation.FOV = 180 }, "fov"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	// No config file exists - should return empty, unless the user has one
	if _, err := os.Stat(filepath.Join(ConfigDir(), "config.yaml")); err != nil {
		if path := findConfigFile(); path != "" {
			t.Errorf("expected empty path when no config exists, got %s", path)
		}
	}

	if err := os.WriteFile("config.yaml", []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path != "./config.yaml" {
		t.Errorf("expected ./config.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "layout flag",
			setup: func() { *flagLayout = "custom.yaml" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Data.Layout != "custom.yaml" {
					t.Errorf("expected layout custom.yaml, got %s", cfg.Data.Layout)
				}
			},
			teardown: func() { *flagLayout = "" },
		},
		{
			name:  "watch flag",
			setup: func() { *flagWatch = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Data.WatchLayout {
					t.Error("expected watch_layout with watch flag")
				}
			},
			teardown: func() { *flagWatch = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
data:
  layout: from-file.yaml
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flags override the file
	*flagConfig = configPath
	*flagWidth = 1920
	*flagLayout = "from-flag.yaml"
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
		*flagLayout = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Data.Layout != "from-flag.yaml" {
		t.Errorf("expected layout from flag, got %s", cfg.Data.Layout)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  fps_limit: -5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error")
	}
}

func TestWriteConfigFlag(t *testing.T) {
	if WriteConfigPath() != "" {
		t.Fatalf("WriteConfigPath() = %q without the flag", WriteConfigPath())
	}

	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "effective.yaml")
	*flagWriteConfig = path
	*flagWidth = 800
	defer func() {
		*flagWriteConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.SaveTo(WriteConfigPath()); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	written := Default()
	if err := loadFromFile(written, path); err != nil {
		t.Fatalf("reading written config: %v", err)
	}
	if written.Graphics.Width != 800 {
		t.Errorf("written width = %d, want the flag override", written.Graphics.Width)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Navigation.MoveSpeed = 0.5
	cfg.Data.Layout = "lobby.yaml"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Navigation.MoveSpeed != 0.5 || loaded.Data.Layout != "lobby.yaml" {
		t.Errorf("saved config not restored: %+v", loaded.Navigation)
	}
	if loaded.Navigation.WalkDuration != time.Second {
		t.Errorf("walk duration = %v after round trip", loaded.Navigation.WalkDuration)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
