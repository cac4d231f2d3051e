package material

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultAlbedo is the reflectance of a mid-grey surface
const DefaultAlbedo = 0.18

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Diffuse core.Color // Surface color
	Albedo  float32    // Fraction of incident light reflected
}

// NewLambertian creates a white lambertian material with the default albedo
func NewLambertian() *Lambertian {
	return &Lambertian{Diffuse: core.White, Albedo: DefaultAlbedo}
}

// NewColoredLambertian creates a lambertian material with the given color and albedo
func NewColoredLambertian(diffuse core.Color, albedo float32) *Lambertian {
	return &Lambertian{Diffuse: diffuse, Albedo: albedo}
}

// EvaluateBRDF implements the Material interface
func (l *Lambertian) EvaluateBRDF(outgoing, incoming core.Vec3, intensity core.Color, normal core.Vec3) core.Color {
	return intensity.Multiply(diffuseTerm(l.Diffuse, l.Albedo, incoming, normal))
}

// diffuseTerm is albedo/π scaled by the clamped cosine between light and normal
func diffuseTerm(diffuse core.Color, albedo float32, incoming, normal core.Vec3) core.Color {
	cosTheta := max(0, incoming.Dot(normal))
	return diffuse.Scale(albedo / math32.Pi * cosTheta)
}
