package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material is a reflectance model evaluated once per light at a shaded point.
//
// All directions are unit length and point away from the surface: outgoing
// towards the viewer, incoming towards the light. The result is the light
// reflected towards the viewer for the given light intensity. Implementations
// are immutable and may be shared by any number of scene objects.
type Material interface {
	EvaluateBRDF(outgoing, incoming core.Vec3, intensity core.Color, normal core.Vec3) core.Color
}
