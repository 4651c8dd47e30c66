// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/liftlobby/pkg/math"
)

// parallelEpsilon is how close |dir·up| may get to 1 before the look-at
// basis switches to an alternate up axis.
const parallelEpsilon = 0.999

// Perspective is the walkthrough camera. Its pose is a world position and
// a look-at target; orientation is always derived from the two.
type Perspective struct {
	Position math.Vec3
	Target   math.Vec3

	FovY   float32 // Vertical field of view (radians)
	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspective creates a perspective camera. fovDegrees is vertical.
func NewPerspective(fovDegrees, aspect, near, far float32) *Perspective {
	return &Perspective{
		FovY:   fovDegrees * gomath.Pi / 180,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// SetPose sets position and target together.
func (c *Perspective) SetPose(position, target math.Vec3) {
	c.Position = position
	c.Target = target
}

// SetViewport updates the aspect ratio from a viewport size.
func (c *Perspective) SetViewport(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Direction returns the normalized view direction.
// A degenerate pose (target == position) looks down -Z.
func (c *Perspective) Direction() math.Vec3 {
	d := c.Target.Sub(c.Position).Normalize()
	if d == (math.Vec3{}) {
		return math.Vec3{X: 0, Y: 0, Z: -1}
	}
	return d
}

// Up returns the up vector used for the view basis. Looking straight up or
// down uses -Z so the basis stays well defined.
func (c *Perspective) Up() math.Vec3 {
	return upFor(c.Direction())
}

// Right returns the normalized camera right vector.
func (c *Perspective) Right() math.Vec3 {
	d := c.Direction()
	return d.Cross(upFor(d)).Normalize()
}

// ViewMatrix returns the view matrix for this camera.
func (c *Perspective) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Direction()), c.Up())
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Perspective) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Perspective) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Orbit rotates the position around the target. deltaX/deltaY are in
// pixels; pitch is clamped to [minPitch, maxPitch] radians.
func (c *Perspective) Orbit(deltaX, deltaY, sensitivity, minPitch, maxPitch float32) {
	offset := c.Position.Sub(c.Target)
	dist := offset.Length()
	if dist == 0 {
		return
	}

	yaw := float32(gomath.Atan2(float64(offset.X), float64(offset.Z)))
	pitch := float32(gomath.Asin(float64(offset.Y / dist)))

	yaw -= deltaX * sensitivity
	pitch += deltaY * sensitivity
	if pitch < minPitch {
		pitch = minPitch
	}
	if pitch > maxPitch {
		pitch = maxPitch
	}

	horiz := dist * float32(gomath.Cos(float64(pitch)))
	c.Position = math.Vec3{
		X: c.Target.X + horiz*float32(gomath.Sin(float64(yaw))),
		Y: c.Target.Y + dist*float32(gomath.Sin(float64(pitch))),
		Z: c.Target.Z + horiz*float32(gomath.Cos(float64(yaw))),
	}
}

// Zoom moves the position along the view direction, keeping the distance
// to the target inside [minDist, maxDist].
func (c *Perspective) Zoom(delta, sensitivity, minDist, maxDist float32) {
	offset := c.Position.Sub(c.Target)
	dist := offset.Length()
	if dist == 0 {
		return
	}

	dist -= delta * dist * sensitivity
	if dist < minDist {
		dist = minDist
	}
	if dist > maxDist {
		dist = maxDist
	}
	c.Position = c.Target.Add(offset.Normalize().Scale(dist))
}

func upFor(dir math.Vec3) math.Vec3 {
	if d := dir.Dot(math.Up); d > parallelEpsilon || d < -parallelEpsilon {
		return math.Vec3{X: 0, Y: 0, Z: -1}
	}
	return math.Up
}

// TopDown is an orthographic camera looking straight down -Y, used by the
// minimap. Screen up is world -Z.
type TopDown struct {
	Position math.Vec3

	Left, Right, Top, Bottom float32
	Near, Far                float32
}

// ViewMatrix returns the top-down view matrix.
func (c *TopDown) ViewMatrix() math.Mat4 {
	below := c.Position.Sub(math.Up)
	return math.LookAt(c.Position, below, math.Vec3{X: 0, Y: 0, Z: -1})
}

// ProjectionMatrix returns the orthographic projection matrix.
func (c *TopDown) ProjectionMatrix() math.Mat4 {
	return math.Ortho(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far)
}
