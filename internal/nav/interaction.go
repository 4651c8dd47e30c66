package nav

import (
	"github.com/Faultbox/liftlobby/internal/engine/picking"
	"github.com/Faultbox/liftlobby/pkg/math"
)

// Pointer is a click in normalized device coordinates (-1..1, +Y up).
type Pointer struct {
	NDCX, NDCY  float32
	Modifier    bool
	DoubleClick bool
}

// Qualifies reports whether the click should trigger walk-to-surface.
func (p Pointer) Qualifies() bool {
	return p.Modifier || p.DoubleClick
}

// InteractionHit is a resolved walk-to-surface request.
type InteractionHit struct {
	Object    string
	Point     math.Vec3
	Normal    math.Vec3
	Position  math.Vec3 // Where the camera walks to
	LookAhead math.Vec3 // Position advanced along the current view direction
	Target    math.Vec3 // Position nudged along Direction
	Direction Cardinal
}

// ResolveWalk turns the nearest hit into a walk destination: move standoff
// along -normal from the hit, keep eye height when eyeHeight > 0, and aim
// nudge ahead along the cardinal heading of view. Hit normals face the ray
// origin, so the destination lies behind the surface and a thin wall is
// walked through.
func ResolveWalk(hit picking.Hit, view math.Vec3, standoff, eyeHeight, nudge float32) InteractionHit {
	pos := hit.Point.Add(hit.Normal.Scale(-standoff))
	if eyeHeight > 0 {
		pos = pos.WithY(eyeHeight)
	}

	dir := ResolveCardinal(view)
	return InteractionHit{
		Object:    hit.Object,
		Point:     hit.Point,
		Normal:    hit.Normal,
		Position:  pos,
		LookAhead: pos.Add(view),
		Target:    pos.Add(dir.Axis().Scale(nudge)),
		Direction: dir,
	}
}
