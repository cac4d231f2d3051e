package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Disc represents a circular disc in 3D space
type Disc struct {
	Center core.Vec3 // Center of the disc
	Normal core.Vec3 // Unit normal pointing "up" from the disc
	Radius float32
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float32) *Disc {
	return &Disc{
		Center: center,
		Normal: normal.Normalize(),
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the disc
func (d *Disc) Hit(ray core.Ray) (SolidHit, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math32.Abs(denom) < parallelEpsilon {
		return SolidHit{}, false
	}

	t := d.Normal.Dot(d.Center.Sub(ray.Origin)) / denom
	if t <= 0 {
		return SolidHit{}, false
	}

	// Reject points on the supporting plane beyond the radius
	point := ray.At(t)
	centerToHit := point.Sub(d.Center)
	if centerToHit.Dot(centerToHit) > d.Radius*d.Radius {
		return SolidHit{}, false
	}

	return SolidHit{
		Point:  point,
		Normal: d.Normal,
	}, true
}
