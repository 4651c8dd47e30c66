package renderer

import (
	"testing"

	"github.com/Faultbox/liftlobby/internal/engine/picking"
	"github.com/Faultbox/liftlobby/pkg/math"
)

func TestAppendBoxLines(t *testing.T) {
	box := picking.NewAABB(math.Vec3{X: -1, Y: 0, Z: -2}, math.Vec3{X: 1, Y: 3, Z: 2})

	verts := AppendBoxLines(nil, box, 0)
	if len(verts) != BoxLineVertexCount*3 {
		t.Fatalf("expected %d floats, got %d", BoxLineVertexCount*3, len(verts))
	}

	// Every vertex is a corner, every edge is axis aligned
	for i := 0; i < len(verts); i += 6 {
		a := math.Vec3{X: verts[i], Y: verts[i+1], Z: verts[i+2]}
		b := math.Vec3{X: verts[i+3], Y: verts[i+4], Z: verts[i+5]}
		for _, p := range []math.Vec3{a, b} {
			if !box.Contains(p) {
				t.Errorf("vertex %v outside the box", p)
			}
		}
		diff := 0
		if a.X != b.X {
			diff++
		}
		if a.Y != b.Y {
			diff++
		}
		if a.Z != b.Z {
			diff++
		}
		if diff != 1 {
			t.Errorf("edge %v-%v is not axis aligned", a, b)
		}
	}
}

func TestAppendBoxLinesPadding(t *testing.T) {
	box := picking.NewAABB(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})
	verts := AppendBoxLines([]float32{42}, box, 0.5)

	if verts[0] != 42 {
		t.Error("existing contents should be kept")
	}
	lo, hi := verts[1], verts[1]
	for _, v := range verts[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo != -0.5 || hi != 1.5 {
		t.Errorf("padded range = [%f, %f], want [-0.5, 1.5]", lo, hi)
	}
}

func TestAppendMarker(t *testing.T) {
	verts := AppendMarker(nil, math.Vec3{X: 2, Y: 5, Z: -1}, 1)
	if len(verts) != 18 {
		t.Fatalf("expected two triangles, got %d floats", len(verts))
	}
	for i := 0; i < len(verts); i += 3 {
		if verts[i+1] != 5 {
			t.Errorf("vertex %d at height %f, want 5", i/3, verts[i+1])
		}
		if verts[i] < 1.5 || verts[i] > 2.5 || verts[i+2] < -1.5 || verts[i+2] > -0.5 {
			t.Errorf("vertex %d out of square: %v", i/3, verts[i:i+3])
		}
	}
}

func TestAppendFloorCross(t *testing.T) {
	verts := AppendFloorCross(nil, math.Vec3{X: 1, Y: 1.5, Z: 1}, 0, 0.5)
	if len(verts) != 12 {
		t.Fatalf("expected two lines, got %d floats", len(verts))
	}
	for i := 1; i < len(verts); i += 3 {
		if verts[i] != 0 {
			t.Errorf("cross vertex above the floor: %f", verts[i])
		}
	}
}
