package nav

import (
	"time"

	"github.com/google/uuid"

	"github.com/Faultbox/liftlobby/pkg/math"
)

// TweenSpec describes one scripted camera move.
type TweenSpec struct {
	StartPosition math.Vec3
	StartTarget   math.Vec3
	EndPosition   math.Vec3
	EndTarget     math.Vec3
	Duration      time.Duration
	Transition    bool // Show the transition effect while moving
}

// Tween interpolates a TweenSpec against wall-clock time.
type Tween struct {
	ID      string
	Spec    TweenSpec
	started time.Time
}

// NewTween starts spec at now.
func NewTween(spec TweenSpec, now time.Time) *Tween {
	return &Tween{
		ID:      uuid.NewString(),
		Spec:    spec,
		started: now,
	}
}

// Progress returns t in [0, 1]. A non-positive duration is always done.
func (tw *Tween) Progress(now time.Time) float32 {
	if tw.Spec.Duration <= 0 {
		return 1
	}
	t := float32(now.Sub(tw.started).Seconds() / tw.Spec.Duration.Seconds())
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Step returns the pose at now. On the final step the pose is exactly the
// destination.
func (tw *Tween) Step(now time.Time) (position, target math.Vec3, done bool) {
	t := tw.Progress(now)
	if t >= 1 {
		return tw.Spec.EndPosition, tw.Spec.EndTarget, true
	}
	return tw.Spec.StartPosition.Lerp(tw.Spec.EndPosition, t),
		tw.Spec.StartTarget.Lerp(tw.Spec.EndTarget, t),
		false
}
