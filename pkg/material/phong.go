package material

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Phong combines a lambertian diffuse lobe with a specular highlight
type Phong struct {
	Diffuse  core.Color // Diffuse surface color
	Albedo   float32    // Diffuse reflectance
	Specular core.Color // Highlight color
	Exponent int        // Highlight sharpness, at least 1

	// ClampSpecular clamps the view/reflection cosine at zero before raising
	// it to Exponent. When false a negative cosine is used as is, so even
	// exponents light up the side facing away from the reflection.
	ClampSpecular bool
}

// NewPhong creates a phong material
func NewPhong(diffuse core.Color, albedo float32, specular core.Color, exponent int) (*Phong, error) {
	if exponent < 1 {
		return nil, fmt.Errorf("phong exponent must be positive, got %d", exponent)
	}
	return &Phong{
		Diffuse:  diffuse,
		Albedo:   albedo,
		Specular: specular,
		Exponent: exponent,
	}, nil
}

// EvaluateBRDF implements the Material interface
func (p *Phong) EvaluateBRDF(outgoing, incoming core.Vec3, intensity core.Color, normal core.Vec3) core.Color {
	diffuse := diffuseTerm(p.Diffuse, p.Albedo, incoming, normal)

	// Mirror the light direction about the normal
	reflected := normal.Mul(2 * normal.Dot(incoming)).Sub(incoming)
	cosAlpha := outgoing.Dot(reflected)
	if p.ClampSpecular {
		cosAlpha = max(0, cosAlpha)
	}
	specular := p.Specular.Scale(math32.Pow(cosAlpha, float32(p.Exponent)))

	return intensity.Multiply(diffuse.Add(specular))
}
