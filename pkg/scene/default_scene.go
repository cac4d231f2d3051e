package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSimpleScene creates a single white unit sphere at the origin lit by one point light
func NewSimpleScene(width, height int) *Scene {
	camera := geometry.NewLookAtCamera(
		core.NewVec3(0, 0, 5),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		45, width, height,
	)
	s := NewScene("simple", camera, core.FromRGB(0.05, 0.05, 0.1))
	s.Lighting.Ambient = core.FromARGB(0, 0.02, 0.02, 0.02)

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1), material.NewColoredLambertian(core.White, 1))
	s.AddLight(lights.NewPointLight(core.NewVec3(5, 5, 5), core.FromRGB(3, 3, 3)))
	return s
}

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene(width, height int) *Scene {
	camera := geometry.NewLookAtCamera(
		core.NewVec3(0, 1.5, 6), // Slightly above the ground, looking down
		core.NewVec3(0, 0.25, 0),
		core.NewVec3(0, 1, 0),
		40, width, height,
	)
	s := NewScene("default", camera, core.FromRGB(0.5, 0.7, 1.0))
	s.Lighting.Ambient = core.FromARGB(0, 0.03, 0.03, 0.04)

	// Create materials
	ground := material.NewColoredLambertian(core.FromRGB(0.8, 0.8, 0.8), 0.9)
	red := material.NewColoredLambertian(core.FromRGB(0.9, 0.25, 0.2), 0.9)
	green := material.NewColoredLambertian(core.FromRGB(0.3, 0.8, 0.3), 0.9)
	blue := &material.Phong{
		Diffuse:  core.FromRGB(0.2, 0.3, 0.9),
		Albedo:   0.9,
		Specular: core.FromRGB(0.4, 0.4, 0.4),
		Exponent: 32,
	}

	s.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), -1), ground)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1), blue)
	s.Add(geometry.NewSphere(core.NewVec3(-2.2, -0.4, -0.5), 0.6), red)
	s.Add(geometry.NewSphere(core.NewVec3(2.2, -0.4, -0.5), 0.6), green)
	// The red material is shared by the small pyramid face
	s.Add(geometry.NewTriangle(
		core.NewVec3(-0.6, -1, 1.8),
		core.NewVec3(0.6, -1, 1.8),
		core.NewVec3(0, -0.2, 1.5),
	), red)

	s.AddLight(lights.NewPointLight(core.NewVec3(4, 6, 4), core.FromRGB(6, 6, 6)))
	s.AddLight(lights.NewPointLight(core.NewVec3(-5, 3, 2), core.FromRGB(1.5, 1.5, 2)))
	return s
}
