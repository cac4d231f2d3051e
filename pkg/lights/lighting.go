package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Lighting is the set of lights in a scene plus a flat ambient term.
// Ambient light reaches every visible point regardless of occlusion.
type Lighting struct {
	Lights  []Light
	Ambient core.Color
}

// NewLighting creates a lighting set
func NewLighting(ambient core.Color, lights ...Light) Lighting {
	return Lighting{Lights: lights, Ambient: ambient}
}

// Validate checks that every light can be sampled
func (l Lighting) Validate() error {
	for i, light := range l.Lights {
		if err := light.Validate(); err != nil {
			return fmt.Errorf("light %d: %w", i, err)
		}
	}
	return nil
}
