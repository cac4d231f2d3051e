package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SolidHit describes where a ray meets a solid, in world space.
// Normal is unit length and points out of the solid.
type SolidHit struct {
	Point  core.Vec3
	Normal core.Vec3
}

// Solid is a geometric primitive that can be intersected by rays.
// Hit returns the nearest intersection with a strictly positive ray
// parameter, or false when the ray misses.
type Solid interface {
	Hit(ray core.Ray) (SolidHit, bool)
}

// parallelEpsilon is the smallest |n·d| treated as a real crossing for flat solids
const parallelEpsilon = 1e-7
