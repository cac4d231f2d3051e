package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewShadowScene creates a sphere hidden from an overhead light by an opaque disc.
// The camera looks in from the side so both the occluder and the shadowed
// sphere are visible.
func NewShadowScene(width, height int) *Scene {
	camera := geometry.NewLookAtCamera(
		core.NewVec3(0, 1, 7),
		core.NewVec3(0, 0.5, 0),
		core.NewVec3(0, 1, 0),
		50, width, height,
	)
	s := NewScene("shadow", camera, core.FromRGB(0.1, 0.1, 0.12))

	white := material.NewColoredLambertian(core.White, 0.9)

	s.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), -1), white)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1), white)
	s.Add(geometry.NewDisc(core.NewVec3(0, 2.5, 0), core.NewVec3(0, 1, 0), 1.6), white)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 6, 0), core.FromRGB(10, 10, 10)))
	return s
}
