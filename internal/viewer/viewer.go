// Package viewer implements the walkthrough frame loop.
package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/liftlobby/internal/config"
	"github.com/Faultbox/liftlobby/internal/engine/debug"
	"github.com/Faultbox/liftlobby/internal/engine/input"
	"github.com/Faultbox/liftlobby/internal/engine/renderer"
	"github.com/Faultbox/liftlobby/internal/engine/window"
	"github.com/Faultbox/liftlobby/internal/logger"
	"github.com/Faultbox/liftlobby/internal/nav"
	"github.com/Faultbox/liftlobby/internal/scene"
	"github.com/Faultbox/liftlobby/internal/watch"
)

const title = "Lift Lobby"

// Viewer is the walkthrough application.
type Viewer struct {
	config  *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	watcher  *watch.Watcher
	session  *Session
	shots    *debug.Screenshots

	captureNext bool
}

// New creates the window, renderer and session. The model is taken from
// loader once it is ready.
func New(cfg *config.Config, loader *scene.Loader) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}

	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("layout", cfg.Data.Layout),
	)

	// Create window (this also creates the OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.Size()

	// Renderer needs the context from the window
	v.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.shots = debug.NewScreenshots(cfg.Graphics.ScreenshotDir, "liftlobby")

	var reloads <-chan watch.Reload
	if cfg.Data.WatchLayout {
		if cfg.Data.Layout == "" {
			v.log.Warn("layout watching needs a layout file, using the built-in lobby unwatched")
		} else if v.watcher, err = watch.New(cfg.Data.Layout); err != nil {
			v.log.Warn("layout watching disabled", zap.Error(err))
		} else {
			reloads = v.watcher.Reloads
		}
	}

	sized := *cfg
	sized.Graphics.Width, sized.Graphics.Height = width, height
	v.session = NewSession(&sized, loader, reloads, nav.WithTransition(v.renderer))

	v.log.Info("viewer initialized")
	return v, nil
}

// Run runs the frame loop until the window closes, Escape is pressed or
// ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	v.running = true

	var frameBudget time.Duration
	if v.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.config.Graphics.FPSLimit)
	}

	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting frame loop", zap.Duration("frame_budget", frameBudget))

	for v.running {
		frameStart := time.Now()

		if ctx.Err() != nil {
			v.log.Info("frame loop cancelled")
			break
		}

		// 1. Input
		if v.input.Update() {
			break
		}
		if v.input.IsKeyPressed(sdl.SCANCODE_F12) {
			v.captureNext = true
		}
		for _, event := range v.input.Events() {
			if event.Type == input.EventWindowResize {
				v.renderer.Resize(event.Width, event.Height)
			}
			if v.session.HandleEvent(event) {
				v.running = false
			}
		}

		// 2. Navigation, before the render that observes it
		v.session.Update(v.input.Flags())

		// 3. Render and present
		v.render()
		if v.captureNext {
			v.captureNext = false
			v.capture()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		// The constant per-frame movement step depends on this pacing
		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

// Close releases the viewer's resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.watcher != nil {
		if err := v.watcher.Close(); err != nil {
			v.log.Warn("closing watcher", zap.Error(err))
		}
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) render() {
	v.renderer.Begin()

	model := v.session.Model()
	if model == nil {
		v.renderer.End()
		return
	}

	n := v.session.Navigator()
	frame := renderer.Frame{
		ViewProj: n.Camera().ViewProjection(),
		Objects:  model.Objects(),
		Floor:    v.config.Navigation.FloorHeight,
	}
	if pos, _, ok := n.Destination(); ok {
		frame.Destination = &pos
	}
	v.renderer.DrawScene(frame)

	if mm := v.session.Minimap(); mm.Visible() {
		cam := mm.Camera()
		v.renderer.DrawMinimap(renderer.Inset{
			ViewProj: cam.ProjectionMatrix().Mul(cam.ViewMatrix()),
			Objects:  model.Objects(),
			Marker:   mm.Marker(),
			Size:     mm.Size(),
		})
	}

	v.renderer.End()
}

func (v *Viewer) capture() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.shots.SavePixels(pixels, width, height)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}
