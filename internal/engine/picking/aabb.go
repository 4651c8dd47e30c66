package picking

import "github.com/Faultbox/liftlobby/pkg/math"

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	if box.Min.Z > box.Max.Z {
		box.Min.Z, box.Max.Z = box.Max.Z, box.Min.Z
	}
	return box
}

// Contains reports whether p lies inside the box; faces count as inside.
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Corners returns the eight box corners. The first four are the bottom
// face in winding order, the last four the top face.
func (b AABB) Corners() [8]math.Vec3 {
	return [8]math.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// Edges returns the twelve box edges as index pairs into Corners.
func Edges() [12][2]int {
	return [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
}

// Triangles returns the twelve triangles of the box surface.
func (b AABB) Triangles() [12][3]math.Vec3 {
	c := b.Corners()
	faces := [6][4]int{
		{0, 1, 2, 3}, // bottom
		{4, 7, 6, 5}, // top
		{0, 4, 5, 1}, // -Z
		{3, 2, 6, 7}, // +Z
		{0, 3, 7, 4}, // -X
		{1, 5, 6, 2}, // +X
	}

	var tris [12][3]math.Vec3
	for i, f := range faces {
		tris[i*2] = [3]math.Vec3{c[f[0]], c[f[1]], c[f[2]]}
		tris[i*2+1] = [3]math.Vec3{c[f[0]], c[f[2]], c[f[3]]}
	}
	return tris
}
