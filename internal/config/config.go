// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Navigation NavigationConfig `yaml:"navigation"`
	Minimap    MinimapConfig    `yaml:"minimap"`
	Data       DataConfig       `yaml:"data"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"` // 0 disables the limit

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// NavigationConfig holds camera and movement tuning.
type NavigationConfig struct {
	MoveSpeed    float32       `yaml:"move_speed"` // Free-roam step per frame
	FloorHeight  float32       `yaml:"floor_height"`
	Standoff     float32       `yaml:"standoff"`
	Nudge        float32       `yaml:"nudge"`
	EyeHeight    float32       `yaml:"eye_height"`
	WalkDuration time.Duration `yaml:"walk_duration"`

	FOV  float32 `yaml:"fov"` // Vertical, degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`

	StartPosition  [3]float32 `yaml:"start_position"`
	StartTarget    [3]float32 `yaml:"start_target"`
	StartViewpoint string     `yaml:"start_viewpoint"`

	OrbitSensitivity float32 `yaml:"orbit_sensitivity"`
	ZoomSensitivity  float32 `yaml:"zoom_sensitivity"`
	MinDistance      float32 `yaml:"min_distance"`
	MaxDistance      float32 `yaml:"max_distance"`
}

// MinimapConfig holds the top-down inset settings.
type MinimapConfig struct {
	Size         int     `yaml:"size"` // Pixels
	MarkerHeight float32 `yaml:"marker_height"`
	CameraHeight float32 `yaml:"camera_height"`
	Left         float32 `yaml:"left"`
	Right        float32 `yaml:"right"`
	Top          float32 `yaml:"top"`
	Bottom       float32 `yaml:"bottom"`
}

// DataConfig holds data file paths.
type DataConfig struct {
	Layout      string `yaml:"layout"`       // Empty uses the built-in lobby
	WatchLayout bool   `yaml:"watch_layout"` // Reload presets when the file changes
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   120,

			ScreenshotDir: "screenshots",
		},
		Navigation: NavigationConfig{
			MoveSpeed:        0.25,
			FloorHeight:      0,
			Standoff:         0.5,
			Nudge:            0.01,
			EyeHeight:        1.5,
			WalkDuration:     time.Second,
			FOV:              75,
			Near:             0.1,
			Far:              1000,
			StartPosition:    [3]float32{0, 15, 30},
			StartTarget:      [3]float32{0, 5, 0},
			StartViewpoint:   "overview",
			OrbitSensitivity: 0.005,
			ZoomSensitivity:  0.1,
			MinDistance:      0.01,
			MaxDistance:      200,
		},
		Minimap: MinimapConfig{
			Size:         200,
			MarkerHeight: 5,
			CameraHeight: 20,
			Left:         -8,
			Right:        8,
			Top:          8,
			Bottom:       -8.5,
		},
		Data: DataConfig{
			Layout:      "",
			WatchLayout: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
