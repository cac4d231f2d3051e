package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// The outward normal follows counter-clockwise winding of V0, V1, V2.
type Triangle struct {
	V0, V1, V2 core.Vec3
	normal     core.Vec3
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2}
	t.normal = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	return t
}

// Normal returns the triangle's unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray) (SolidHit, bool) {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -parallelEpsilon && a < parallelEpsilon {
		return SolidHit{}, false
	}

	f := 1 / a
	s := ray.Origin.Sub(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return SolidHit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return SolidHit{}, false
	}

	param := f * edge2.Dot(q)
	if param <= 0 {
		return SolidHit{}, false
	}

	return SolidHit{
		Point:  ray.At(param),
		Normal: t.normal,
	}, true
}
