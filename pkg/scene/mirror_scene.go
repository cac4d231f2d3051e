package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorScene creates two facing spheres above a row of colored discs.
// It is meant to be rendered with reflections enabled so every visible
// surface shows what its mirror ray sees.
func NewMirrorScene(width, height int) *Scene {
	camera := geometry.NewLookAtCamera(
		core.NewVec3(0, 2, 8),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		45, width, height,
	)
	s := NewScene("mirror", camera, core.FromRGB(0.6, 0.75, 0.95))
	s.Lighting.Ambient = core.FromARGB(0, 0.05, 0.05, 0.05)

	chrome := &material.Phong{
		Diffuse:       core.FromRGB(0.9, 0.9, 0.9),
		Albedo:        0.5,
		Specular:      core.White,
		Exponent:      64,
		ClampSpecular: true,
	}
	floor := material.NewColoredLambertian(core.FromRGB(0.7, 0.7, 0.7), 0.8)

	s.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), -1), floor)
	s.Add(geometry.NewSphere(core.NewVec3(-1.2, 0, 0), 1), chrome)
	s.Add(geometry.NewSphere(core.NewVec3(1.2, 0, 0), 1), chrome)

	colors := []core.Color{
		core.FromRGB(0.9, 0.2, 0.2),
		core.FromRGB(0.2, 0.9, 0.2),
		core.FromRGB(0.2, 0.2, 0.9),
	}
	for i, c := range colors {
		x := float32(i-1) * 2.5
		s.Add(geometry.NewDisc(core.NewVec3(x, -0.99, 2.5), core.NewVec3(0, 1, 0), 0.8),
			material.NewColoredLambertian(c, 0.9))
	}

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 8, 4), core.FromRGB(8, 8, 8)))
	return s
}
