package nav

import (
	"github.com/Faultbox/liftlobby/internal/engine/camera"
	"github.com/Faultbox/liftlobby/internal/engine/picking"
	"github.com/Faultbox/liftlobby/pkg/math"
)

// Flags is the snapshot of held movement keys.
type Flags struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// HorizontalBasis returns the camera's forward and right vectors flattened
// onto the XZ plane. Looking straight up or down, forward follows the
// camera's screen-up axis.
func HorizontalBasis(cam *camera.Perspective) (forward, right math.Vec3) {
	forward = cam.Direction().Horizontal().Normalize()
	if forward == (math.Vec3{}) {
		forward = cam.Up().Horizontal().Normalize()
	}
	// The camera's right axis is horizontal for any view direction
	right = cam.Right()
	return forward, right
}

// MovementVector sums the held directions and normalizes the result. It is
// a unit vector, or zero when nothing is held or opposite keys cancel.
func MovementVector(forward, right math.Vec3, f Flags) math.Vec3 {
	var v math.Vec3
	if f.Forward {
		v = v.Add(forward)
	}
	if f.Backward {
		v = v.Sub(forward)
	}
	if f.Left {
		v = v.Sub(right)
	}
	if f.Right {
		v = v.Add(right)
	}
	return v.Normalize()
}

// FreeRoam applies one frame of keyboard movement. The step is a constant
// per frame, not scaled by frame time; the frame loop's FPS limit sets the
// perceived speed. Position and target translate together so the heading
// is kept. Inside interior no translation happens. The camera never ends
// below floor. Returns whether the camera translated.
func FreeRoam(cam *camera.Perspective, f Flags, interior picking.AABB, speed, floor float32) bool {
	moved := false

	if !interior.Contains(cam.Position) {
		forward, right := HorizontalBasis(cam)
		step := MovementVector(forward, right, f).Scale(speed)
		if step != (math.Vec3{}) {
			cam.Position = cam.Position.Add(step)
			cam.Target = cam.Target.Add(step)
			moved = true
		}
	}

	if cam.Position.Y < floor {
		cam.Position.Y = floor
	}
	return moved
}
