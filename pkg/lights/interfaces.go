package lights

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// ErrUnsupportedLight is returned for light variants the shading pipeline cannot evaluate
var ErrUnsupportedLight = errors.New("unsupported light type")

// Light is a point or directional light source.
// Only the field matching Type is meaningful.
type Light struct {
	Type      LightType
	Position  core.Vec3  // Point lights
	Direction core.Vec3  // Directional lights, unit length
	Intensity core.Color // Emitted light
}

// LightSample describes the light arriving at a shaded point
type LightSample struct {
	Direction core.Vec3  // Unit direction from the shaded point to the light
	Distance  float32    // Distance from the shaded point to the light
	Intensity core.Color // Light arriving at the point
}

// NewPointLight creates a point light at position
func NewPointLight(position core.Vec3, intensity core.Color) Light {
	return Light{
		Type:      LightTypePoint,
		Position:  position,
		Intensity: intensity,
	}
}

// NewDirectionalLight creates a light shining along direction.
// Directional lights are declared but cannot be rendered yet; scenes that
// contain one fail validation.
func NewDirectionalLight(direction core.Vec3, intensity core.Color) Light {
	return Light{
		Type:      LightTypeDirectional,
		Direction: direction.Normalize(),
		Intensity: intensity,
	}
}

// Sample returns the light arriving at point.
// It panics for light types other than point lights.
func (l Light) Sample(point core.Vec3) LightSample {
	switch l.Type {
	case LightTypePoint:
		toLight := l.Position.Sub(point)
		distance := toLight.Len()
		return LightSample{
			Direction: toLight.Mul(1 / distance),
			Distance:  distance,
			Intensity: l.Intensity,
		}
	default:
		panic(fmt.Sprintf("lights: cannot sample %q light", l.Type))
	}
}

// Validate reports whether the light can be sampled
func (l Light) Validate() error {
	switch l.Type {
	case LightTypePoint:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedLight, l.Type)
	}
}
