package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite set of points p with Normal·p = Offset
type Plane struct {
	Normal core.Vec3 // Unit normal
	Offset float32   // Signed distance from the origin along Normal
}

// NewPlane creates a plane from any non-zero normal and offset.
// The normal is normalized and the offset rescaled so the plane is unchanged.
func NewPlane(normal core.Vec3, offset float32) *Plane {
	length := normal.Len()
	return &Plane{
		Normal: normal.Mul(1 / length),
		Offset: offset / length,
	}
}

// NewPlaneThroughPoint creates the plane with the given normal that contains point
func NewPlaneThroughPoint(point, normal core.Vec3) *Plane {
	n := normal.Normalize()
	return &Plane{Normal: n, Offset: n.Dot(point)}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray) (SolidHit, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math32.Abs(denominator) < parallelEpsilon {
		return SolidHit{}, false
	}

	t := (p.Offset - p.Normal.Dot(ray.Origin)) / denominator
	if t <= 0 {
		return SolidHit{}, false
	}

	return SolidHit{
		Point:  ray.At(t),
		Normal: p.Normal,
	}, true
}
