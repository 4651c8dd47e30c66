package nav

import (
	"testing"
	"time"

	"github.com/Faultbox/liftlobby/pkg/math"
)

func TestTweenProgress(t *testing.T) {
	start := time.Unix(1000, 0)
	tw := NewTween(TweenSpec{Duration: 2 * time.Second}, start)

	tests := []struct {
		at   time.Duration
		want float32
	}{
		{-time.Second, 0},
		{0, 0},
		{500 * time.Millisecond, 0.25},
		{time.Second, 0.5},
		{2 * time.Second, 1},
		{time.Hour, 1},
	}
	for _, tt := range tests {
		if got := tw.Progress(start.Add(tt.at)); got != tt.want {
			t.Errorf("Progress(+%v) = %f, want %f", tt.at, got, tt.want)
		}
	}
}

func TestTweenStep(t *testing.T) {
	start := time.Unix(1000, 0)
	spec := TweenSpec{
		StartPosition: math.Vec3{X: 0, Y: 15, Z: 30},
		StartTarget:   math.Vec3{X: 0, Y: 5, Z: 0},
		EndPosition:   math.Vec3{X: 0.6, Y: 16, Z: 1.52},
		EndTarget:     math.Vec3{X: 0.6, Y: 5, Z: 1.52},
		Duration:      time.Second,
	}
	tw := NewTween(spec, start)

	pos, _, done := tw.Step(start)
	if done || pos != spec.StartPosition {
		t.Errorf("first step = %v done=%v, want start", pos, done)
	}

	pos, target, done := tw.Step(start.Add(999 * time.Millisecond))
	if done {
		t.Error("not done before the duration elapses")
	}
	if pos.Distance(spec.EndPosition) > 0.1 || target.Distance(spec.EndTarget) > 0.1 {
		t.Errorf("near-end pose = %v %v", pos, target)
	}

	pos, target, done = tw.Step(start.Add(1001 * time.Millisecond))
	if !done || pos != spec.EndPosition || target != spec.EndTarget {
		t.Errorf("final step = %v %v done=%v, want exact destination", pos, target, done)
	}
}

func TestTweenIDsUnique(t *testing.T) {
	now := time.Now()
	a := NewTween(TweenSpec{}, now)
	b := NewTween(TweenSpec{}, now)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("tween IDs %q and %q should be unique", a.ID, b.ID)
	}
}
