package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrInvalidScene is returned by Validate for scenes that cannot be rendered
var ErrInvalidScene = errors.New("invalid scene")

// SceneObject pairs a solid with the material it is shaded with.
// The material may be shared with other objects.
type SceneObject struct {
	Solid    geometry.Solid
	Material material.Material
}

// Scene contains all the elements needed for rendering.
// A scene must not be modified while it is being rendered.
type Scene struct {
	Name       string
	Objects    []SceneObject
	Camera     geometry.Camera
	Lighting   lights.Lighting
	Background core.Color // Color of pixels whose primary ray hits nothing
}

// NewScene creates an empty scene with the given camera
func NewScene(name string, camera geometry.Camera, background core.Color) *Scene {
	return &Scene{
		Name:       name,
		Objects:    make([]SceneObject, 0),
		Camera:     camera,
		Background: background,
	}
}

// Add appends a solid shaded with mat
func (s *Scene) Add(solid geometry.Solid, mat material.Material) {
	s.Objects = append(s.Objects, SceneObject{Solid: solid, Material: mat})
}

// AddLight appends a light
func (s *Scene) AddLight(light lights.Light) {
	s.Lighting.Lights = append(s.Lighting.Lights, light)
}

// Validate checks the preconditions the renderer relies on
func (s *Scene) Validate() error {
	if err := s.Camera.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if err := s.Lighting.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	for i, object := range s.Objects {
		if object.Solid == nil {
			return fmt.Errorf("%w: object %d has no solid", ErrInvalidScene, i)
		}
		if object.Material == nil {
			return fmt.Errorf("%w: object %d has no material", ErrInvalidScene, i)
		}
	}
	return nil
}
