package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float32
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (SolidHit, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Sub(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return SolidHit{}, false
	}

	sqrtD := math32.Sqrt(discriminant)

	// Try the closer root first, then the farther one when the origin is inside
	root := (-halfB - sqrtD) / a
	if root <= 0 {
		root = (-halfB + sqrtD) / a
		if root <= 0 {
			return SolidHit{}, false
		}
	}

	point := ray.At(root)
	return SolidHit{
		Point:  point,
		Normal: point.Sub(s.Center).Normalize(),
	}, true
}
