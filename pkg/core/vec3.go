package core

import "github.com/go-gl/mathgl/mgl32"

// Vec3 is a point or direction in 3D space
type Vec3 = mgl32.Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Reflect mirrors direction d about the normal n.
// The component of d along n is flipped and the orthogonal component kept.
func Reflect(d, n Vec3) Vec3 {
	par := n.Mul(d.Dot(n))
	perp := d.Sub(par)
	return perp.Sub(par)
}

// Distance returns the euclidean distance between two points
func Distance(a, b Vec3) float32 {
	return a.Sub(b).Len()
}
