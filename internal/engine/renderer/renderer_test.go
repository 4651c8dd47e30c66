package renderer

import (
	"testing"

	"github.com/Faultbox/liftlobby/internal/engine/picking"
	"github.com/Faultbox/liftlobby/internal/scene"
	"github.com/Faultbox/liftlobby/pkg/math"
)

func TestBatchSplitsAndFilters(t *testing.T) {
	box := picking.NewAABB(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})
	objects := []*scene.Object{
		{Name: "wall", Box: box, Visible: true, Pickable: true},
		{Name: "glass", Box: box, Visible: true},
		{Name: "ceiling", Box: box, Visible: true, Pickable: true, MinimapHidden: true},
		{Name: "hidden", Box: box, Pickable: true},
	}
	boxFloats := BoxLineVertexCount * 3

	tests := []struct {
		name         string
		inset        bool
		walls, glass int
	}{
		{"main view", false, 2, 1},
		{"minimap inset", true, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Renderer
			r.batch(objects, tt.inset)
			if len(r.walls) != tt.walls*boxFloats {
				t.Errorf("walls = %d boxes, want %d", len(r.walls)/boxFloats, tt.walls)
			}
			if len(r.glass) != tt.glass*boxFloats {
				t.Errorf("glass = %d boxes, want %d", len(r.glass)/boxFloats, tt.glass)
			}
		})
	}
}
