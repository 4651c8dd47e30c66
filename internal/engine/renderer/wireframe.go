package renderer

import (
	"github.com/Faultbox/liftlobby/internal/engine/picking"
	"github.com/Faultbox/liftlobby/pkg/math"
)

// BoxLineVertexCount is the number of vertices for a box wireframe (12 edges x 2).
const BoxLineVertexCount = 24

// AppendBoxLines appends the 12 edges of box as GL_LINES vertices,
// three floats per vertex, expanded by padding on all sides.
func AppendBoxLines(dst []float32, box picking.AABB, padding float32) []float32 {
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	corners := picking.AABB{Min: box.Min.Sub(pad), Max: box.Max.Add(pad)}.Corners()

	for _, e := range picking.Edges() {
		a, b := corners[e[0]], corners[e[1]]
		dst = append(dst, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
	return dst
}

// AppendMarker appends a horizontal square centred on pos as two
// GL_TRIANGLES, so it faces a camera looking down -Y.
func AppendMarker(dst []float32, pos math.Vec3, size float32) []float32 {
	h := size / 2
	x0, x1 := pos.X-h, pos.X+h
	z0, z1 := pos.Z-h, pos.Z+h
	y := pos.Y

	return append(dst,
		x0, y, z0, x1, y, z0, x1, y, z1,
		x0, y, z0, x1, y, z1, x0, y, z1,
	)
}

// AppendFloorCross appends a small cross on the floor under pos, used to
// show the walk destination while a move is running.
func AppendFloorCross(dst []float32, pos math.Vec3, floor, size float32) []float32 {
	h := size / 2
	return append(dst,
		pos.X-h, floor, pos.Z, pos.X+h, floor, pos.Z,
		pos.X, floor, pos.Z-h, pos.X, floor, pos.Z+h,
	)
}
