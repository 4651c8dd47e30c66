// Package renderer draws the building as a wireframe with OpenGL, plus the
// top-down minimap inset. While a transition is active the main view is
// rendered offscreen and composited through a separable Gaussian blur.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/liftlobby/internal/engine/framebuffer"
	"github.com/Faultbox/liftlobby/internal/engine/shader"
	"github.com/Faultbox/liftlobby/internal/logger"
	"github.com/Faultbox/liftlobby/internal/scene"
	"github.com/Faultbox/liftlobby/pkg/math"
)

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const fragmentShader = `
#version 410 core

uniform vec4 uColor;

out vec4 FragColor;

void main() {
	FragColor = uColor;
}
`

// Colours.
var (
	clearColor   = math.Vec4{0.1, 0.1, 0.15, 1}
	wallColor    = math.Vec4{0.85, 0.85, 0.8, 1}
	glassColor   = math.Vec4{0.4, 0.7, 0.9, 1}
	targetColor  = math.Vec4{1, 0.8, 0.2, 1}
	minimapClear = math.Vec4{0.05, 0.05, 0.08, 1}
	markerColor  = math.Vec4{1, 0, 0, 1}
)

const (
	minimapMargin = 10 // Inset distance from the window corner (pixels)
	markerSize    = 0.6
	crossSize     = 0.5

	// Transition blur, in pixels
	blurSigma  = 10
	blurRadius = 20
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Frame is everything the main view needs for one frame.
type Frame struct {
	ViewProj    math.Mat4
	Objects     []*scene.Object
	Destination *math.Vec3 // Walk target of the running move, if any
	Floor       float32
}

// Inset is the minimap view for one frame.
type Inset struct {
	ViewProj math.Mat4
	Objects  []*scene.Object
	Marker   math.Vec3
	Size     int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	vao     uint32
	vbo     uint32

	// Transition blur. scene is nil when offscreen targets are unavailable.
	blur      *shader.Program
	blurVAO   uint32
	scene     *framebuffer.Framebuffer
	pingpong  *framebuffer.Framebuffer
	kernel    []float32
	offscreen bool

	// Scratch buffers, reused every frame
	walls []float32
	glass []float32
	extra []float32

	transition bool
}

// New creates a renderer. Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	var err error
	r.program, err = shader.Compile(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.kernel = GaussianKernel(blurRadius, blurSigma)
	if err := r.initBlur(); err != nil {
		r.log.Warn("transition blur unavailable", zap.Error(err))
		r.destroyBlur()
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func (r *Renderer) initBlur() error {
	var err error
	r.blur, err = shader.Compile(blurVertexShader, blurFragmentShader)
	if err != nil {
		return fmt.Errorf("failed to create blur shader: %w", err)
	}
	// Core profile needs a bound VAO even without vertex attributes
	gl.GenVertexArrays(1, &r.blurVAO)

	if r.scene, err = framebuffer.New(r.config.Width, r.config.Height); err != nil {
		return err
	}
	if r.pingpong, err = framebuffer.New(r.config.Width, r.config.Height); err != nil {
		return err
	}
	return nil
}

func (r *Renderer) destroyBlur() {
	if r.scene != nil {
		r.scene.Destroy()
		r.scene = nil
	}
	if r.pingpong != nil {
		r.pingpong.Destroy()
		r.pingpong = nil
	}
	if r.blurVAO != 0 {
		gl.DeleteVertexArrays(1, &r.blurVAO)
		r.blurVAO = 0
	}
	if r.blur != nil {
		r.blur.Delete()
		r.blur = nil
	}
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
	r.destroyBlur()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	if r.scene != nil {
		r.scene.Resize(width, height)
		r.pingpong.Resize(width, height)
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetTransition toggles the blur shown during scripted moves.
func (r *Renderer) SetTransition(active bool) {
	if r.transition != active {
		r.log.Debug("transition", zap.Bool("active", active))
	}
	r.transition = active
}

// Begin starts a new frame. During a transition the main view goes to the
// offscreen target until DrawScene or End composites it.
func (r *Renderer) Begin() {
	r.offscreen = r.transition && r.scene != nil
	if r.offscreen {
		r.scene.Bind()
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	}
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawScene draws the main perspective view.
func (r *Renderer) DrawScene(f Frame) {
	r.batch(f.Objects, false)

	r.extra = r.extra[:0]
	if f.Destination != nil {
		r.extra = AppendFloorCross(r.extra, *f.Destination, f.Floor, crossSize)
	}

	r.program.Use()
	r.program.SetMat4("uViewProj", f.ViewProj)
	gl.BindVertexArray(r.vao)

	r.draw(gl.LINES, r.walls, wallColor)
	r.draw(gl.LINES, r.glass, glassColor)
	r.draw(gl.LINES, r.extra, targetColor)

	gl.BindVertexArray(0)
	r.composite()
}

// composite blurs the offscreen main view onto the window: a horizontal
// pass into pingpong, then a vertical pass to the default framebuffer.
func (r *Renderer) composite() {
	if !r.offscreen {
		return
	}
	r.offscreen = false

	gl.Disable(gl.DEPTH_TEST)
	r.blur.Use()
	r.blur.SetInt("uImage", 0)
	r.blur.SetInt("uRadius", int32(len(r.kernel)-1))
	r.blur.SetFloats("uWeights", r.kernel)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.blurVAO)

	w, h := r.scene.Size()

	r.pingpong.Bind()
	r.blur.SetVec2("uStep", 1/float32(w), 0)
	gl.BindTexture(gl.TEXTURE_2D, r.scene.ColorTexture())
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	r.pingpong.Unbind()
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	r.blur.SetVec2("uStep", 0, 1/float32(h))
	gl.BindTexture(gl.TEXTURE_2D, r.pingpong.ColorTexture())
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

// DrawMinimap draws the top-down inset in the bottom-right corner. Objects
// flagged MinimapHidden are left out.
func (r *Renderer) DrawMinimap(in Inset) {
	size := int32(min(in.Size, r.config.Width, r.config.Height))
	if size <= 0 {
		return
	}
	x := int32(r.config.Width) - size - minimapMargin
	y := int32(minimapMargin)

	gl.Enable(gl.SCISSOR_TEST)
	gl.Viewport(x, y, size, size)
	gl.Scissor(x, y, size, size)
	gl.ClearColor(minimapClear[0], minimapClear[1], minimapClear[2], minimapClear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.batch(in.Objects, true)
	r.extra = AppendMarker(r.extra[:0], in.Marker, markerSize)

	r.program.Use()
	r.program.SetMat4("uViewProj", in.ViewProj)
	gl.BindVertexArray(r.vao)

	r.draw(gl.LINES, r.walls, wallColor)
	r.draw(gl.LINES, r.glass, glassColor)

	// Marker stays on top of the walls
	gl.Disable(gl.DEPTH_TEST)
	r.draw(gl.TRIANGLES, r.extra, markerColor)
	gl.Enable(gl.DEPTH_TEST)

	gl.BindVertexArray(0)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
}

// ReadPixels reads the default framebuffer back as bottom-up RGBA.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}

// End finishes the current frame. A frame begun offscreen without a scene
// draw is composited here.
func (r *Renderer) End() {
	r.composite()
}

// batch splits visible objects into wall and glass line lists. The inset
// also drops objects hidden from the minimap.
func (r *Renderer) batch(objects []*scene.Object, inset bool) {
	r.walls = r.walls[:0]
	r.glass = r.glass[:0]
	for _, o := range objects {
		if !o.Visible || (inset && o.MinimapHidden) {
			continue
		}
		if o.Pickable {
			r.walls = AppendBoxLines(r.walls, o.Box, 0)
		} else {
			r.glass = AppendBoxLines(r.glass, o.Box, 0)
		}
	}
}

func (r *Renderer) draw(mode uint32, verts []float32, color math.Vec4) {
	if len(verts) == 0 {
		return
	}
	r.program.SetVec4("uColor", color)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(len(verts)/3))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}
