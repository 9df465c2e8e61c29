// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/boxpick/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
// Direction is normally unit length but only ever used as a divisor.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
	TMax      float32 // Upper bound on hit distance
}

// NewRay creates an unbounded ray.
func NewRay(origin, direction math.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMax: math32.MaxFloat32}
}

// At returns the point at parametric distance t.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two opposite corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

// AABBFromCenter creates a box spanning center ± halfExtent on every axis.
func AABBFromCenter(center math.Vec3, halfExtent float32) AABB {
	h := math.Splat3(halfExtent)
	return AABB{Min: center.Sub(h), Max: center.Add(h)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// IntersectBox computes the slab entry and exit distances (tNear, tFar) of
// the ray against box. The ray crosses the box iff tNear < tFar.
// Zero direction components produce signed infinities, which fall through the
// min/max reduction; NaNs (origin on a slab plane of a parallel ray) make every
// comparison false, i.e. a miss.
func (r Ray) IntersectBox(box AABB) math.Vec2 {
	invDir := r.Direction.Recip()
	t0 := box.Min.Sub(r.Origin).Mul(invDir)
	t1 := box.Max.Sub(r.Origin).Mul(invDir)

	tNear := t0.Min(t1).MaxComponent()
	tFar := t0.Max(t1).MinComponent()
	return math.Vec2{X: tNear, Y: tFar}
}

// Hits reports whether the ray's line crosses the box.
func (r Ray) Hits(box AABB) bool {
	t := r.IntersectBox(box)
	return t.X < t.Y
}

// ScreenToRay builds a picking ray through window coordinates (x, y), with y
// measured from the bottom of the viewport. The origin is on the near plane.
func ScreenToRay(x, y float32, view, proj math.Mat4, vp math.Viewport) Ray {
	near := math.Unproject(math.Vec3{X: x, Y: y, Z: 0}, view, proj, vp)
	far := math.Unproject(math.Vec3{X: x, Y: y, Z: 1}, view, proj, vp)
	return NewRay(near, far.Sub(near).Normalize())
}
