package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/liftlobby/internal/config"
	"github.com/Faultbox/liftlobby/internal/engine/input"
	"github.com/Faultbox/liftlobby/internal/minimap"
	"github.com/Faultbox/liftlobby/internal/nav"
	"github.com/Faultbox/liftlobby/pkg/math"
)

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func navConfig(c config.NavigationConfig) nav.Config {
	cfg := nav.DefaultConfig()
	cfg.MoveSpeed = c.MoveSpeed
	cfg.FloorHeight = c.FloorHeight
	cfg.Standoff = c.Standoff
	cfg.Nudge = c.Nudge
	cfg.EyeHeight = c.EyeHeight
	cfg.WalkDuration = c.WalkDuration
	if c.OrbitSensitivity > 0 {
		cfg.OrbitSensitivity = c.OrbitSensitivity
	}
	if c.ZoomSensitivity > 0 {
		cfg.ZoomSensitivity = c.ZoomSensitivity
	}
	if c.MinDistance > 0 {
		cfg.MinDistance = c.MinDistance
	}
	if c.MaxDistance > cfg.MinDistance {
		cfg.MaxDistance = c.MaxDistance
	}
	return cfg
}

func minimapConfig(c config.MinimapConfig) minimap.Config {
	cfg := minimap.DefaultConfig()
	cfg.Size = c.Size
	cfg.MarkerHeight = c.MarkerHeight
	cfg.CameraHeight = c.CameraHeight
	cfg.Left, cfg.Right = c.Left, c.Right
	cfg.Top, cfg.Bottom = c.Top, c.Bottom
	return cfg
}

func navFlags(f input.Flags) nav.Flags {
	return nav.Flags{
		Forward:  f.Forward,
		Backward: f.Backward,
		Left:     f.Left,
		Right:    f.Right,
	}
}

// presetIndex maps the number row and keypad 1..9 to a preset slot.
func presetIndex(code sdl.Scancode) (int, bool) {
	switch {
	case code >= sdl.SCANCODE_1 && code <= sdl.SCANCODE_9:
		return int(code - sdl.SCANCODE_1), true
	case code >= sdl.SCANCODE_KP_1 && code <= sdl.SCANCODE_KP_9:
		return int(code - sdl.SCANCODE_KP_1), true
	}
	return 0, false
}
