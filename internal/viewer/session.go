package viewer

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/liftlobby/internal/config"
	"github.com/Faultbox/liftlobby/internal/engine/camera"
	"github.com/Faultbox/liftlobby/internal/engine/input"
	"github.com/Faultbox/liftlobby/internal/engine/picking"
	"github.com/Faultbox/liftlobby/internal/logger"
	"github.com/Faultbox/liftlobby/internal/minimap"
	"github.com/Faultbox/liftlobby/internal/nav"
	"github.com/Faultbox/liftlobby/internal/scene"
	"github.com/Faultbox/liftlobby/internal/watch"
	"github.com/Faultbox/liftlobby/pkg/math"
)

// Session is the per-frame viewer state that does not touch SDL or GL:
// the navigator, the minimap gate, the model and pending preset reloads.
type Session struct {
	nav     *nav.Navigator
	minimap *minimap.Minimap
	log     *zap.Logger

	loader *scene.Loader
	model  *scene.Model

	reloads <-chan watch.Reload
	pending []nav.Preset // Reloaded presets waiting for the move to finish
	staged  bool

	startPosition math.Vec3
	startTarget   math.Vec3
	width, height int
}

// NewSession creates a session whose model arrives from loader. reloads
// may be nil.
func NewSession(cfg *config.Config, loader *scene.Loader, reloads <-chan watch.Reload, opts ...nav.Option) *Session {
	n := cfg.Navigation
	cam := camera.NewPerspective(n.FOV, 1, n.Near, n.Far)
	cam.SetViewport(cfg.Graphics.Width, cfg.Graphics.Height)

	s := &Session{
		minimap:       minimap.New(minimapConfig(cfg.Minimap), picking.AABB{}),
		log:           logger.Named("viewer"),
		loader:        loader,
		reloads:       reloads,
		startPosition: vec3(n.StartPosition),
		startTarget:   vec3(n.StartTarget),
		width:         cfg.Graphics.Width,
		height:        cfg.Graphics.Height,
	}
	cam.SetPose(s.startPosition, s.startTarget)

	opts = append([]nav.Option{nav.WithViewpoint(nav.Viewpoint(n.StartViewpoint))}, opts...)
	s.nav = nav.New(cam, navConfig(n), opts...)
	return s
}

// Navigator returns the camera navigator.
func (s *Session) Navigator() *nav.Navigator { return s.nav }

// Minimap returns the minimap gate.
func (s *Session) Minimap() *minimap.Minimap { return s.minimap }

// Model returns the loaded model, or nil while loading.
func (s *Session) Model() *scene.Model { return s.model }

// HandleEvent applies one discrete input event. Returns true to quit.
func (s *Session) HandleEvent(ev input.Event) bool {
	switch ev.Type {
	case input.EventQuit:
		return true

	case input.EventWindowResize:
		s.width, s.height = ev.Width, ev.Height
		s.nav.Camera().SetViewport(ev.Width, ev.Height)

	case input.EventKeyDown:
		return s.handleKey(ev.Key)

	case input.EventPointerDown:
		x, y := picking.ScreenToNDC(float32(ev.Pointer.X), float32(ev.Pointer.Y), float32(s.width), float32(s.height))
		s.nav.HandlePointer(nav.Pointer{
			NDCX:        x,
			NDCY:        y,
			Modifier:    ev.Pointer.Modifier,
			DoubleClick: ev.Pointer.DoubleClick,
		})

	case input.EventDrag:
		s.nav.Orbit(float32(ev.DeltaX), float32(ev.DeltaY))

	case input.EventWheel:
		s.nav.Zoom(ev.Wheel)
	}
	return false
}

func (s *Session) handleKey(code sdl.Scancode) bool {
	if code == sdl.SCANCODE_ESCAPE {
		return true
	}
	if code == sdl.SCANCODE_HOME {
		if !s.nav.Jump(s.startPosition, s.startTarget) {
			s.log.Debug("jump ignored, move in flight")
		}
		return false
	}

	i, ok := presetIndex(code)
	if !ok {
		return false
	}
	presets := s.nav.Presets()
	if i >= len(presets) {
		s.log.Debug("no preset on key", zap.Int("slot", i+1))
		return false
	}
	s.nav.GoTo(presets[i].Name)
	return false
}

// Update runs one frame of navigation: model and reload intake, then the
// navigator, then the minimap gate on the resulting pose.
func (s *Session) Update(flags input.Flags) {
	s.pollLoader()
	s.drainReloads()

	if s.staged && !s.nav.Moving() {
		s.nav.SetPresets(s.pending)
		s.log.Info("presets reloaded", zap.Int("count", len(s.pending)))
		s.pending, s.staged = nil, false
	}

	s.nav.Update(navFlags(flags))
	s.minimap.Update(s.nav.Camera().Position)
}

func (s *Session) pollLoader() {
	if s.loader == nil {
		return
	}
	model, done, err := s.loader.Ready()
	if !done {
		return
	}
	s.loader = nil
	if err != nil {
		s.log.Warn("continuing without a model", zap.Error(err))
		return
	}

	s.model = model
	s.nav.SetModel(model, model.Interior)
	s.nav.SetPresets(nav.PresetsFromLayout(model.Presets()))
	s.minimap.SetRegion(model.Minimap)
}

func (s *Session) drainReloads() {
	for {
		select {
		case r, ok := <-s.reloads:
			if !ok {
				s.reloads = nil
				return
			}
			if r.Err != nil {
				s.log.Warn("keeping previous presets", zap.String("path", r.Path), zap.Error(r.Err))
				continue
			}
			s.pending = nav.PresetsFromLayout(r.Layout.Presets)
			s.staged = true
		default:
			return
		}
	}
}
