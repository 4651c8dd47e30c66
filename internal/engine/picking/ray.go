// Package picking provides ray casting and hit testing utilities.
package picking

import (
	gomath "math"
	"sort"

	"github.com/Faultbox/liftlobby/pkg/math"
)

// triangleEpsilon rejects rays (nearly) parallel to a triangle's plane.
const triangleEpsilon = 1e-7

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Hit is a single ray intersection.
type Hit struct {
	Point    math.Vec3
	Normal   math.Vec3 // Unit surface normal, facing the ray origin
	Distance float32
	Object   string // Name of the object that was hit, if any
}

// NDCToRay converts normalized device coordinates (-1..1, +Y up) to a
// world-space ray. invViewProj is the inverse of the view-projection matrix.
func NDCToRay(ndcX, ndcY float32, invViewProj math.Mat4) Ray {
	nearWorld := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	farWorld := invViewProj.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	return Ray{
		Origin:    nearWorld,
		Direction: farWorld.Sub(nearWorld).Normalize(),
	}
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates.
func ScreenToNDC(screenX, screenY, viewportW, viewportH float32) (ndcX, ndcY float32) {
	ndcX = 2.0*screenX/viewportW - 1.0
	ndcY = 1.0 - 2.0*screenY/viewportH // Flip Y
	return ndcX, ndcY
}

// IntersectTriangle tests the ray against triangle (a, b, c) using the
// Möller-Trumbore algorithm. Both faces are hit.
func (r Ray) IntersectTriangle(a, b, c math.Vec3) (Hit, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)

	p := r.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if det > -triangleEpsilon && det < triangleEpsilon {
		return Hit{}, false
	}
	invDet := 1.0 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return Hit{}, false
	}

	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}

	t := edge2.Dot(q) * invDet
	if t < 0 {
		return Hit{}, false
	}

	normal := edge1.Cross(edge2).Normalize()
	if normal.Dot(r.Direction) > 0 {
		normal = normal.Negate()
	}

	return Hit{Point: r.At(t), Normal: normal, Distance: t}, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	bmin := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	bmax := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < bmin[axis] || origin[axis] > bmax[axis] {
				return 0, false
			}
			continue
		}
		t1 := (bmin[axis] - origin[axis]) / dir[axis]
		t2 := (bmax[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	// Check if intersection is valid
	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// SortHits orders hits nearest first.
func SortHits(hits []Hit) {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
}
