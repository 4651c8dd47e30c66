package nav

import (
	gomath "math"

	"github.com/Faultbox/liftlobby/pkg/math"
)

// Cardinal is one of the four horizontal axis-aligned headings.
type Cardinal int

const (
	PlusX Cardinal = iota
	MinusX
	PlusZ
	MinusZ
)

// ResolveCardinal buckets a view direction into a cardinal heading. The
// axis with the larger horizontal magnitude wins; a tie goes to the x axis.
// A zero component on the winning axis counts as positive.
func ResolveCardinal(dir math.Vec3) Cardinal {
	ax := gomath.Abs(float64(dir.X))
	az := gomath.Abs(float64(dir.Z))

	if ax >= az {
		if dir.X < 0 {
			return MinusX
		}
		return PlusX
	}
	if dir.Z < 0 {
		return MinusZ
	}
	return PlusZ
}

// Axis returns the unit vector for the heading.
func (c Cardinal) Axis() math.Vec3 {
	switch c {
	case MinusX:
		return math.Vec3{X: -1}
	case PlusZ:
		return math.Vec3{Z: 1}
	case MinusZ:
		return math.Vec3{Z: -1}
	default:
		return math.Vec3{X: 1}
	}
}

func (c Cardinal) String() string {
	switch c {
	case PlusX:
		return "+x"
	case MinusX:
		return "-x"
	case PlusZ:
		return "+z"
	case MinusZ:
		return "-z"
	default:
		return "unknown"
	}
}
