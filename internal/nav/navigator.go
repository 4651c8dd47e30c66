// Package nav is the camera navigation core: scripted moves, free roam,
// walk-to-surface and preset viewpoints, coordinated by a Navigator.
package nav

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/liftlobby/internal/engine/camera"
	"github.com/Faultbox/liftlobby/internal/engine/picking"
	"github.com/Faultbox/liftlobby/internal/logger"
	"github.com/Faultbox/liftlobby/internal/scene"
	"github.com/Faultbox/liftlobby/pkg/math"
)

// Scene is the hit-testable building the navigator walks through.
type Scene interface {
	NamedObject(name string) (*scene.Object, bool)
	Intersect(r picking.Ray) []picking.Hit
}

// Transition is the visual effect shown during a scripted move.
type Transition interface {
	SetTransition(active bool)
}

// Phase is the scripted-move state.
type Phase int

const (
	Idle Phase = iota
	Moving
)

func (p Phase) String() string {
	if p == Moving {
		return "moving"
	}
	return "idle"
}

// State is the navigation state visible to callers.
type State struct {
	Last  Viewpoint
	Phase Phase
}

// Config holds navigation tuning.
type Config struct {
	MoveSpeed   float32 // Free-roam step per frame
	FloorHeight float32

	Standoff       float32 // Walk-to-surface distance behind the hit along -normal
	Nudge          float32 // Look-at offset along the cardinal heading
	EyeHeight      float32 // Walk destination height; 0 keeps the computed height
	WalkDuration   time.Duration
	WalkVisibility map[string]bool

	OrbitSensitivity float32
	MinPitch         float32
	MaxPitch         float32
	ZoomSensitivity  float32
	MinDistance      float32
	MaxDistance      float32
}

// DefaultConfig returns the lobby tuning.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:        0.25,
		FloorHeight:      0,
		Standoff:         0.5,
		Nudge:            0.01,
		EyeHeight:        1.5,
		WalkDuration:     time.Second,
		WalkVisibility:   map[string]bool{"ceiling": true},
		OrbitSensitivity: 0.005,
		MinPitch:         -1.5,
		MaxPitch:         1.5,
		ZoomSensitivity:  0.1,
		MinDistance:      0.01,
		MaxDistance:      200,
	}
}

// Navigator owns the camera pose and is its only writer. It is driven from
// a single frame loop and is not safe for concurrent use.
type Navigator struct {
	cfg        Config
	cam        *camera.Perspective
	transition Transition
	now        func() time.Time
	log        *zap.Logger

	scene    Scene
	interior picking.AABB

	presets []Preset
	last    Viewpoint

	tween    *Tween
	arriving *Preset // Preset the current tween belongs to
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(n *Navigator) { n.now = now }
}

// WithTransition sets the scripted-move effect.
func WithTransition(t Transition) Option {
	return func(n *Navigator) { n.transition = t }
}

// WithViewpoint sets the starting viewpoint.
func WithViewpoint(v Viewpoint) Option {
	return func(n *Navigator) { n.last = v }
}

// New creates a navigator driving cam. The starting viewpoint is Overview.
func New(cam *camera.Perspective, cfg Config, opts ...Option) *Navigator {
	n := &Navigator{
		cfg:  cfg,
		cam:  cam,
		now:  time.Now,
		log:  logger.Named("nav"),
		last: Overview,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SetModel attaches the loaded building. Until then walk-to-surface is
// ignored.
func (n *Navigator) SetModel(s Scene, interior picking.AABB) {
	n.scene = s
	n.interior = interior
}

// SetPresets replaces the preset table.
func (n *Navigator) SetPresets(presets []Preset) {
	n.presets = append([]Preset(nil), presets...)
}

// Presets returns the preset table in trigger order.
func (n *Navigator) Presets() []Preset {
	return n.presets
}

// Preset looks up a preset by name.
func (n *Navigator) Preset(name Viewpoint) (Preset, bool) {
	for _, p := range n.presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Camera returns the driven camera.
func (n *Navigator) Camera() *camera.Perspective {
	return n.cam
}

// State returns the current navigation state.
func (n *Navigator) State() State {
	s := State{Last: n.last, Phase: Idle}
	if n.tween != nil {
		s.Phase = Moving
	}
	return s
}

// Moving reports whether a scripted move is in flight.
func (n *Navigator) Moving() bool {
	return n.tween != nil
}

// Destination returns the in-flight move's end pose.
func (n *Navigator) Destination() (position, target math.Vec3, ok bool) {
	if n.tween == nil {
		return math.Vec3{}, math.Vec3{}, false
	}
	return n.tween.Spec.EndPosition, n.tween.Spec.EndTarget, true
}

// BeginScriptedMove starts a move from the current pose. While another move
// is in flight the request is rejected and false is returned.
func (n *Navigator) BeginScriptedMove(position, target math.Vec3, duration time.Duration, transition bool) bool {
	return n.begin(position, target, duration, transition, nil)
}

func (n *Navigator) begin(position, target math.Vec3, duration time.Duration, transition bool, preset *Preset) bool {
	if n.tween != nil {
		n.log.Debug("scripted move rejected, another move in flight",
			zap.String("move", n.tween.ID),
		)
		return false
	}

	n.tween = NewTween(TweenSpec{
		StartPosition: n.cam.Position,
		StartTarget:   n.cam.Target,
		EndPosition:   position,
		EndTarget:     target,
		Duration:      duration,
		Transition:    transition,
	}, n.now())
	n.arriving = preset

	if transition && n.transition != nil {
		n.transition.SetTransition(true)
	}

	n.log.Debug("scripted move started",
		zap.String("move", n.tween.ID),
		zap.Any("to", position),
		zap.Float32("distance", position.Distance(n.cam.Position)),
		zap.Duration("duration", duration),
		zap.Bool("transition", transition),
	)
	return true
}

// GoTo runs a named preset. It is rejected while moving, for unknown
// names, and when the preset does not allow the current viewpoint.
func (n *Navigator) GoTo(name Viewpoint) bool {
	p, ok := n.Preset(name)
	if !ok {
		n.log.Warn("unknown preset", zap.String("preset", string(name)))
		return false
	}
	if n.tween != nil {
		n.log.Debug("preset ignored, move in flight", zap.String("preset", string(name)))
		return false
	}
	if !p.Allows(n.last) {
		n.log.Debug("preset not reachable from current viewpoint",
			zap.String("preset", string(name)),
			zap.String("from", string(n.last)),
		)
		return false
	}

	p = p.From(n.last)
	n.log.Info("going to preset",
		zap.String("preset", string(name)),
		zap.String("label", p.Label),
		zap.String("from", string(n.last)),
	)

	n.applyVisibility(p.Visibility)
	return n.begin(p.Position, p.Target, p.Duration, p.Transition, &p)
}

// Jump sets the pose directly. Rejected while moving.
func (n *Navigator) Jump(position, target math.Vec3) bool {
	if n.tween != nil {
		return false
	}
	n.cam.SetPose(position, target)
	return true
}

// Update advances one frame. A scripted move, if any, drives the pose;
// otherwise free roam does. Never both.
func (n *Navigator) Update(flags Flags) {
	if n.tween != nil {
		n.stepTween()
		return
	}
	FreeRoam(n.cam, flags, n.interior, n.cfg.MoveSpeed, n.cfg.FloorHeight)
}

func (n *Navigator) stepTween() {
	pos, target, done := n.tween.Step(n.now())
	n.cam.SetPose(pos, target)
	if !done {
		return
	}

	tw := n.tween
	n.tween = nil

	if tw.Spec.Transition && n.transition != nil {
		n.transition.SetTransition(false)
	}

	if p := n.arriving; p != nil {
		n.arriving = nil
		n.applyVisibility(p.ArriveVisibility)
		n.last = p.Name
	}

	n.log.Debug("scripted move finished",
		zap.String("move", tw.ID),
		zap.String("viewpoint", string(n.last)),
		zap.Any("position", n.cam.Position),
	)
}

// HandlePointer runs walk-to-surface for a qualifying click. Returns true
// when a move was started.
func (n *Navigator) HandlePointer(p Pointer) bool {
	if !p.Qualifies() {
		return false
	}
	if n.last == ViewpointNone {
		n.log.Debug("walk ignored, no viewpoint set")
		return false
	}
	if n.scene == nil {
		n.log.Warn("walk ignored, model not loaded")
		return false
	}
	if n.tween != nil {
		n.log.Debug("walk ignored, move in flight")
		return false
	}

	ray := picking.NDCToRay(p.NDCX, p.NDCY, n.cam.ViewProjection().Inverse())
	hits := n.scene.Intersect(ray)
	if len(hits) == 0 {
		n.log.Debug("walk ray hit nothing")
		return false
	}

	walk := ResolveWalk(hits[0], n.cam.Direction(), n.cfg.Standoff, n.cfg.EyeHeight, n.cfg.Nudge)
	n.log.Debug("walk to surface",
		zap.String("object", walk.Object),
		zap.Stringer("heading", walk.Direction),
		zap.Any("position", walk.Position),
	)

	n.applyVisibility(n.cfg.WalkVisibility)
	return n.BeginScriptedMove(walk.Position, walk.Target, n.cfg.WalkDuration, false)
}

// Orbit rotates the camera around its target. Ignored while moving.
func (n *Navigator) Orbit(deltaX, deltaY float32) {
	if n.tween != nil {
		return
	}
	n.cam.Orbit(deltaX, deltaY, n.cfg.OrbitSensitivity, n.cfg.MinPitch, n.cfg.MaxPitch)
	if n.cam.Position.Y < n.cfg.FloorHeight {
		n.cam.Position.Y = n.cfg.FloorHeight
	}
}

// Zoom moves the camera toward or away from its target. Ignored while
// moving.
func (n *Navigator) Zoom(delta float32) {
	if n.tween != nil {
		return
	}
	n.cam.Zoom(delta, n.cfg.ZoomSensitivity, n.cfg.MinDistance, n.cfg.MaxDistance)
}

func (n *Navigator) applyVisibility(vis map[string]bool) {
	if len(vis) == 0 {
		return
	}
	if n.scene == nil {
		n.log.Warn("visibility change skipped, model not loaded")
		return
	}
	for name, visible := range vis {
		obj, ok := n.scene.NamedObject(name)
		if !ok {
			n.log.Warn("object not found", zap.String("object", name))
			continue
		}
		obj.SetVisible(visible)
	}
}
