// Package minimap tracks the top-down overview shown while the camera is
// inside the lobby.
package minimap

import (
	"go.uber.org/zap"

	"github.com/Faultbox/liftlobby/internal/engine/camera"
	"github.com/Faultbox/liftlobby/internal/engine/picking"
	"github.com/Faultbox/liftlobby/internal/logger"
	"github.com/Faultbox/liftlobby/pkg/math"
)

// Config holds minimap settings.
type Config struct {
	Size         int     // Inset size in pixels
	MarkerHeight float32 // World Y of the position marker
	CameraHeight float32

	Left, Right, Top, Bottom float32
	Near, Far                float32
}

// DefaultConfig returns the lobby minimap settings.
func DefaultConfig() Config {
	return Config{
		Size:         200,
		MarkerHeight: 5,
		CameraHeight: 20,
		Left:         -8,
		Right:        8,
		Top:          8,
		Bottom:       -8.5,
		Near:         1,
		Far:          200,
	}
}

// Minimap gates the overview on a containment region and places the
// position marker.
type Minimap struct {
	cfg    Config
	region picking.AABB
	cam    camera.TopDown
	log    *zap.Logger

	visible bool
	marker  math.Vec3
}

// New creates a minimap shown inside region.
func New(cfg Config, region picking.AABB) *Minimap {
	return &Minimap{
		cfg:    cfg,
		region: region,
		cam: camera.TopDown{
			Position: math.Vec3{X: 0, Y: cfg.CameraHeight, Z: 0},
			Left:     cfg.Left,
			Right:    cfg.Right,
			Top:      cfg.Top,
			Bottom:   cfg.Bottom,
			Near:     cfg.Near,
			Far:      cfg.Far,
		},
		log: logger.Named("minimap"),
	}
}

// SetRegion replaces the containment region.
func (m *Minimap) SetRegion(region picking.AABB) {
	m.region = region
}

// Update recomputes visibility and the marker from the camera position.
// The result depends only on pos.
func (m *Minimap) Update(pos math.Vec3) {
	visible := m.region.Contains(pos)
	if visible != m.visible {
		m.log.Debug("minimap toggled", zap.Bool("visible", visible))
	}
	m.visible = visible
	m.marker = math.Vec3{X: pos.X, Y: m.cfg.MarkerHeight, Z: pos.Z}
}

// Visible reports whether the minimap should be drawn.
func (m *Minimap) Visible() bool { return m.visible }

// Marker returns the tracked position marker.
func (m *Minimap) Marker() math.Vec3 { return m.marker }

// Camera returns the orthographic overview camera.
func (m *Minimap) Camera() *camera.TopDown { return &m.cam }

// Size returns the inset size in pixels.
func (m *Minimap) Size() int { return m.cfg.Size }
