package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// MockMaterial implements material.Material for testing
type MockMaterial struct {
	calls  int
	evalFn func(outgoing, incoming core.Vec3, intensity core.Color, normal core.Vec3) core.Color
}

func (m *MockMaterial) EvaluateBRDF(outgoing, incoming core.Vec3, intensity core.Color, normal core.Vec3) core.Color {
	m.calls++
	return m.evalFn(outgoing, incoming, intensity, normal)
}

// MockSolid implements geometry.Solid for testing
type MockSolid struct {
	calls int
	hitFn func(ray core.Ray) (geometry.SolidHit, bool)
}

func (m *MockSolid) Hit(ray core.Ray) (geometry.SolidHit, bool) {
	m.calls++
	return m.hitFn(ray)
}

func newTestScene(objects ...scene.SceneObject) *scene.Scene {
	camera := geometry.NewCamera(0.1, 100, 90, 4, 4, mgl32.Ident4())
	s := scene.NewScene("test", camera, core.FromRGB(0.25, 0.5, 0.75))
	s.Objects = append(s.Objects, objects...)
	return s
}

func newTestRaytracer(s *scene.Scene, options RenderOptions) *Raytracer {
	return NewRaytracer(s, options, NewDiscardLogger())
}

func assertRGB(t *testing.T, got core.Color, r, g, b float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(float64(got.R), r, 1e-5) ||
		!scalar.EqualWithinAbs(float64(got.G), g, 1e-5) ||
		!scalar.EqualWithinAbs(float64(got.B), b, 1e-5) {
		t.Errorf("Expected rgb (%f, %f, %f), got (%f, %f, %f)", r, g, b, got.R, got.G, got.B)
	}
}

func TestCastRay_MissReturnsNoColor(t *testing.T) {
	s := scene.NewSimpleScene(8, 8)
	rt := newTestRaytracer(s, DefaultRenderOptions())

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 1, 0))
	if color, ok := rt.CastRay(ray, 0); ok {
		t.Errorf("Expected no color for a miss, got %v", color)
	}
}

func TestCastRay_DiffuseHitUsesLight(t *testing.T) {
	s := scene.NewSimpleScene(8, 8)
	rt := newTestRaytracer(s, DefaultRenderOptions())

	// Hits the unit sphere at (0, 0, 1) with normal +Z
	color, ok := rt.CastRay(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0)
	if !ok {
		t.Fatal("Expected the ray to hit the sphere")
	}

	// Light at (5, 5, 5) with intensity 3, white material with albedo 1
	cosTheta := 4 / math.Sqrt(66)
	expected := 3/math.Pi*cosTheta + 0.02
	assertRGB(t, color, expected, expected, expected)
	if color == s.Background {
		t.Error("Expected a lit color, not the background")
	}
}

func TestCastRay_NoLightsYieldsAmbient(t *testing.T) {
	ambient := core.FromARGB(0, 0.1, 0.2, 0.3)
	s := newTestScene()
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -3), 1), material.NewLambertian())
	s.Lighting.Ambient = ambient
	rt := newTestRaytracer(s, DefaultRenderOptions())

	color, ok := rt.CastRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0)
	if !ok {
		t.Fatal("Expected hit")
	}
	if color != ambient {
		t.Errorf("Expected exactly the ambient term, got %v", color)
	}
}

func TestCastRay_SumsLights(t *testing.T) {
	build := func(lightCount int) *scene.Scene {
		s := newTestScene()
		s.Add(geometry.NewSphere(core.NewVec3(0, 0, -3), 1), material.NewColoredLambertian(core.White, 1))
		for i := 0; i < lightCount; i++ {
			s.AddLight(lights.NewPointLight(core.NewVec3(0, 0, 0), core.FromRGB(1, 1, 1)))
		}
		return s
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	single, _ := newTestRaytracer(build(1), DefaultRenderOptions()).CastRay(ray, 0)
	double, _ := newTestRaytracer(build(2), DefaultRenderOptions()).CastRay(ray, 0)

	assertRGB(t, single, 1/math.Pi, 1/math.Pi, 1/math.Pi)
	assertRGB(t, double, 2/math.Pi, 2/math.Pi, 2/math.Pi)
}

// buildOccluderScene puts a unit sphere at the origin, a light above it and
// an optional horizontal plane at height planeY.
func buildOccluderScene(planeY float32, withPlane bool) *scene.Scene {
	s := newTestScene()
	white := material.NewColoredLambertian(core.White, 1)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1), white)
	if withPlane {
		s.Add(geometry.NewPlane(core.NewVec3(0, 1, 0), planeY), white)
	}
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 5, 0), core.FromRGB(4, 4, 4)))
	return s
}

func TestCastRay_Shadowing(t *testing.T) {
	// Hits the sphere at (0, 0.8, 0.6) where the light is above the horizon
	ray := core.NewRay(core.NewVec3(0, 0.8, 5), core.NewVec3(0, 0, -1))

	tests := []struct {
		name         string
		planeY       float32
		withPlane    bool
		expectShadow bool
	}{
		{"no occluder", 0, false, false},
		{"plane between sphere and light", 2, true, true},
		{"plane beyond the light", 6, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newTestRaytracer(buildOccluderScene(tt.planeY, tt.withPlane), DefaultRenderOptions())

			color, ok := rt.CastRay(ray, 0)
			if !ok {
				t.Fatal("Expected the ray to hit the sphere")
			}

			if tt.expectShadow {
				if color != core.Black {
					t.Errorf("Expected zero contribution in full shadow, got %v", color)
				}
				if rt.Stats().OccludedShadowRays != 1 {
					t.Errorf("Expected one occluded shadow ray, got %d", rt.Stats().OccludedShadowRays)
				}
				return
			}
			if color.R <= 0 {
				t.Errorf("Expected lit point, got %v", color)
			}
		})
	}
}

func TestCastRay_ShadowBiasAvoidsSelfShadowing(t *testing.T) {
	options := DefaultRenderOptions()
	rt := newTestRaytracer(buildOccluderScene(0, false), options)

	for _, x := range []float32{-0.6, -0.3, 0, 0.3, 0.6} {
		ray := core.NewRay(core.NewVec3(x, 0.7, 5), core.NewVec3(0, 0, -1))
		if _, ok := rt.CastRay(ray, 0); !ok {
			t.Fatalf("Expected hit for x=%f", x)
		}
	}
	if occluded := rt.Stats().OccludedShadowRays; occluded != 0 {
		t.Errorf("Expected no self-shadowing, got %d occluded shadow rays", occluded)
	}
}

func TestNearestHit_PicksClosestAndFirstOnTies(t *testing.T) {
	mat := material.NewLambertian()
	s := newTestScene()
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -10), 1), mat)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -4), 1), mat)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -4), 1), mat)
	rt := newTestRaytracer(s, DefaultRenderOptions())

	hit, ok := rt.NearestHit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Index != 1 {
		t.Errorf("Expected the first of the two nearest spheres, got index %d", hit.Index)
	}
	if !scalar.EqualWithinAbs(float64(hit.Distance), 3, 1e-5) {
		t.Errorf("Expected distance 3, got %f", hit.Distance)
	}
}

// newCorridorScene builds two facing mirrors at z = -1 and z = 1 with a light between them
func newCorridorScene(mat material.Material) *scene.Scene {
	s := newTestScene()
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 1), -1), mat)
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, -1), -1), mat)
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 0, 0), core.White))
	return s
}

func TestCastRay_NoReflectionAtDepthZero(t *testing.T) {
	mat := &MockMaterial{evalFn: func(_, _ core.Vec3, intensity core.Color, _ core.Vec3) core.Color {
		return intensity
	}}
	rt := newTestRaytracer(newCorridorScene(mat), DefaultRenderOptions())

	if _, ok := rt.CastRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0); !ok {
		t.Fatal("Expected hit")
	}

	stats := rt.Stats()
	if stats.ReflectionRays != 0 {
		t.Errorf("Expected no reflection rays, got %d", stats.ReflectionRays)
	}
	if stats.MaxDepth != 0 {
		t.Errorf("Expected depth to stay at 0, got %d", stats.MaxDepth)
	}
	if mat.calls != 1 {
		t.Errorf("Expected one shading call, got %d", mat.calls)
	}
}

func TestCastRay_ReflectionDepthIsBounded(t *testing.T) {
	for _, maxDepth := range []int{1, 2, 5} {
		mat := &MockMaterial{evalFn: func(_, _ core.Vec3, intensity core.Color, _ core.Vec3) core.Color {
			return intensity
		}}
		options := DefaultRenderOptions()
		options.MaxRayDepth = maxDepth
		rt := newTestRaytracer(newCorridorScene(mat), options)

		color, ok := rt.CastRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0)
		if !ok {
			t.Fatalf("depth %d: expected hit", maxDepth)
		}

		stats := rt.Stats()
		if stats.MaxDepth != maxDepth {
			t.Errorf("depth %d: expected recursion to reach exactly %d, got %d", maxDepth, maxDepth, stats.MaxDepth)
		}
		if stats.ReflectionRays != maxDepth {
			t.Errorf("depth %d: expected %d reflection rays, got %d", maxDepth, maxDepth, stats.ReflectionRays)
		}
		// Only the deepest hit is shaded
		if mat.calls != 1 {
			t.Errorf("depth %d: expected one shading call, got %d", maxDepth, mat.calls)
		}
		assertRGB(t, color, 1, 1, 1)
	}
}

func TestCastRay_ReflectionDiscardsDirectLight(t *testing.T) {
	// A single lit mirror whose reflected ray escapes the scene
	s := newTestScene()
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, 1), -1), material.NewColoredLambertian(core.White, 1))
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 0, 0), core.White))

	options := DefaultRenderOptions()
	options.MaxRayDepth = 1
	rt := newTestRaytracer(s, options)

	if color, ok := rt.CastRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0); ok {
		t.Errorf("Expected the escaped reflection to decide the result, got %v", color)
	}
}

func TestCastRay_ReflectedRayUsesMirrorDirection(t *testing.T) {
	var reflected []core.Ray
	solid := &MockSolid{}
	solid.hitFn = func(ray core.Ray) (geometry.SolidHit, bool) {
		if solid.calls == 1 {
			return geometry.SolidHit{Point: core.NewVec3(0, 0, -1), Normal: core.NewVec3(0, 1, 0)}, true
		}
		reflected = append(reflected, ray)
		return geometry.SolidHit{}, false
	}
	s := newTestScene(scene.SceneObject{Solid: solid, Material: material.NewLambertian()})

	options := RenderOptions{ShadowBias: 0.01, MaxRayDepth: 1}
	rt := newTestRaytracer(s, options)
	rt.CastRay(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, -1).Normalize()), 0)

	if len(reflected) != 1 {
		t.Fatalf("Expected one reflected ray, got %d", len(reflected))
	}
	if !reflected[0].Origin.ApproxEqualThreshold(core.NewVec3(0, 0.01, -1), 1e-6) {
		t.Errorf("Expected origin offset along the normal, got %v", reflected[0].Origin)
	}
	if !reflected[0].Direction.ApproxEqualThreshold(core.NewVec3(0, 1, -1).Normalize(), 1e-5) {
		t.Errorf("Expected mirrored direction, got %v", reflected[0].Direction)
	}
}

func TestCastRay_DirectionalLightPanics(t *testing.T) {
	s := newTestScene()
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -3), 1), material.NewLambertian())
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.White))
	rt := newTestRaytracer(s, DefaultRenderOptions())

	defer func() {
		if recover() == nil {
			t.Error("Expected shading with a directional light to panic")
		}
	}()
	rt.CastRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0)
}

func TestDraw_BackgroundAndClamping(t *testing.T) {
	s := newTestScene()
	s.Camera = geometry.NewLookAtCamera(
		core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 45, 9, 9)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1), material.NewColoredLambertian(core.White, 1))
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 0, 5), core.FromRGB(100, 100, 100)))
	rt := newTestRaytracer(s, DefaultRenderOptions())

	frame, err := rt.Draw()
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if frame.Width() != 9 || frame.Height() != 9 {
		t.Fatalf("Expected 9x9 frame, got %dx%d", frame.Width(), frame.Height())
	}

	corner, _ := frame.At(0, 0)
	if corner != s.Background {
		t.Errorf("Expected background in the corner, got %v", corner)
	}

	center, _ := frame.At(4, 4)
	if center.R != 1 || center.G != 1 || center.B != 1 {
		t.Errorf("Expected the over-exposed center to clamp to 1, got %v", center)
	}

	stats := rt.Stats()
	if stats.Pixels != 81 || stats.PrimaryRays != 81 {
		t.Errorf("Expected 81 pixels and primary rays, got %+v", stats)
	}
	if stats.Hits == 0 || stats.Hits == 81 {
		t.Errorf("Expected some but not all pixels to hit, got %d", stats.Hits)
	}
}

func TestDraw_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (*scene.Scene, RenderOptions)
		wantErr error
	}{
		{
			name: "directional light",
			build: func() (*scene.Scene, RenderOptions) {
				s := scene.NewSimpleScene(4, 4)
				s.AddLight(lights.NewDirectionalLight(core.NewVec3(0, -1, 0), core.White))
				return s, DefaultRenderOptions()
			},
			wantErr: lights.ErrUnsupportedLight,
		},
		{
			name: "degenerate resolution",
			build: func() (*scene.Scene, RenderOptions) {
				return scene.NewSimpleScene(0, 4), DefaultRenderOptions()
			},
			wantErr: geometry.ErrDegenerateResolution,
		},
		{
			name: "negative depth",
			build: func() (*scene.Scene, RenderOptions) {
				return scene.NewSimpleScene(4, 4), RenderOptions{ShadowBias: 1e-4, MaxRayDepth: -1}
			},
			wantErr: ErrInvalidOptions,
		},
		{
			name: "negative bias",
			build: func() (*scene.Scene, RenderOptions) {
				return scene.NewSimpleScene(4, 4), RenderOptions{ShadowBias: -1}
			},
			wantErr: ErrInvalidOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, options := tt.build()
			frame, err := newTestRaytracer(s, options).Draw()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if frame != nil {
				t.Error("Expected no frame on error")
			}
		})
	}
}

func TestDraw_BuiltInScenes(t *testing.T) {
	for _, info := range scene.ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := scene.Create(info.ID, 16, 12)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			options := DefaultRenderOptions()
			options.MaxRayDepth = info.RecommendedDepth

			rt := newTestRaytracer(s, options)
			frame, err := rt.Draw()
			if err != nil {
				t.Fatalf("Draw: %v", err)
			}
			for i, c := range frame.Cells() {
				for _, channel := range []float32{c.A, c.R, c.G, c.B} {
					if channel < 0 || channel > 1 || math.IsNaN(float64(channel)) {
						t.Fatalf("Cell %d out of range: %v", i, c)
					}
				}
			}
			if rt.Stats().MaxDepth > options.MaxRayDepth {
				t.Errorf("Expected depth <= %d, got %d", options.MaxRayDepth, rt.Stats().MaxDepth)
			}
		})
	}
}
