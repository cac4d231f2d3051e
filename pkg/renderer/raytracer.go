package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidOptions is returned for render options outside their valid range
var ErrInvalidOptions = errors.New("invalid render options")

// RenderOptions contains rendering configuration
type RenderOptions struct {
	// ShadowBias is how far secondary rays start along the surface normal.
	// It must exceed the solids' own intersection error but stay well below
	// visible feature sizes.
	ShadowBias float32
	// MaxRayDepth is the number of mirror bounces; 0 disables reflection
	MaxRayDepth int
}

// DefaultRenderOptions returns sensible default values
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ShadowBias:  1e-4,
		MaxRayDepth: 0,
	}
}

// Validate checks that the options are usable
func (o RenderOptions) Validate() error {
	if o.ShadowBias < 0 {
		return fmt.Errorf("%w: negative shadow bias %g", ErrInvalidOptions, o.ShadowBias)
	}
	if o.MaxRayDepth < 0 {
		return fmt.Errorf("%w: negative max ray depth %d", ErrInvalidOptions, o.MaxRayDepth)
	}
	return nil
}

// Intersection is the nearest hit of a ray in the scene
type Intersection struct {
	geometry.SolidHit
	Object   scene.SceneObject
	Index    int     // Position of Object in the scene
	Distance float32 // Distance from the ray origin to the hit point
}

// Raytracer renders a scene by direct lighting with shadow rays and
// optional mirror reflection.
//
// The scene is only read. A Raytracer keeps per-render statistics and is not
// safe for concurrent use.
type Raytracer struct {
	scene   *scene.Scene
	options RenderOptions
	logger  core.Logger
	id      string
	stats   RenderStats
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, options RenderOptions, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:   s,
		options: options,
		logger:  logger,
		id:      uuid.NewString(),
	}
}

// ID returns the identifier used in this raytracer's log lines
func (rt *Raytracer) ID() string {
	return rt.id
}

// SetLogger replaces the logger; nil restores the default stdout logger
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	rt.logger = logger
}

// Stats returns the counters collected since the raytracer was created
func (rt *Raytracer) Stats() RenderStats {
	return rt.stats
}

// Draw renders the scene into a frame the size of the camera's resolution.
// Pixels whose primary ray hits nothing keep the background color; all
// other pixels are clamped to [0, 1].
func (rt *Raytracer) Draw() (*core.Frame[core.Color], error) {
	if err := rt.scene.Validate(); err != nil {
		return nil, err
	}
	if err := rt.options.Validate(); err != nil {
		return nil, err
	}

	camera := rt.scene.Camera
	frame := core.NewFrame(camera.Width, camera.Height, rt.scene.Background)

	rt.logger.Printf("Render %s: scene %q at %dx%d, %d objects, %d lights, max depth %d\n",
		rt.id, rt.scene.Name, camera.Width, camera.Height,
		len(rt.scene.Objects), len(rt.scene.Lighting.Lights), rt.options.MaxRayDepth)

	startTime := time.Now()
	for y := 0; y < camera.Height; y++ {
		for x := 0; x < camera.Width; x++ {
			rt.stats.Pixels++
			rt.stats.PrimaryRays++
			if color, ok := rt.CastRay(camera.PixelRay(x, y), 0); ok {
				frame.Set(x, y, color.Clamped())
			}
		}
	}

	rt.logger.Printf("Render %s completed in %v: %s\n", rt.id, time.Since(startTime), rt.stats)
	return frame, nil
}

// CastRay returns the light travelling back along ray, or false when the
// ray escapes the scene.
//
// Below MaxRayDepth only the mirror-reflected ray contributes; the direct
// light at the hit point is not blended in. At MaxRayDepth the result is the
// shadow-tested direct light plus the ambient term.
func (rt *Raytracer) CastRay(ray core.Ray, depth int) (core.Color, bool) {
	rt.stats.observeDepth(depth)

	hit, ok := rt.NearestHit(ray)
	if !ok {
		return core.Color{}, false
	}
	rt.stats.Hits++

	// Secondary rays start just above the surface to avoid self-intersection
	origin := hit.Point.Add(hit.Normal.Mul(rt.options.ShadowBias))

	if depth < rt.options.MaxRayDepth {
		rt.stats.ReflectionRays++
		reflected := core.NewRay(origin, core.Reflect(ray.Direction, hit.Normal))
		return rt.CastRay(reflected, depth+1)
	}

	direct := rt.directLighting(ray, hit, origin)
	return direct.Add(rt.scene.Lighting.Ambient), true
}

// NearestHit finds the closest object along ray by testing every object.
// Ties keep the object that appears first in the scene.
func (rt *Raytracer) NearestHit(ray core.Ray) (Intersection, bool) {
	var nearest Intersection
	found := false

	for i, object := range rt.scene.Objects {
		hit, isHit := object.Solid.Hit(ray)
		if !isHit {
			continue
		}
		distance := core.Distance(hit.Point, ray.Origin)
		if !found || distance < nearest.Distance {
			nearest = Intersection{SolidHit: hit, Object: object, Index: i, Distance: distance}
			found = true
		}
	}

	return nearest, found
}

// directLighting sums the shadow-tested contribution of every light
func (rt *Raytracer) directLighting(ray core.Ray, hit Intersection, origin core.Vec3) core.Color {
	outgoing := ray.Direction.Mul(-1)
	total := core.Black

	for _, light := range rt.scene.Lighting.Lights {
		sample := light.Sample(hit.Point)
		if rt.occluded(core.NewRay(origin, sample.Direction), sample.Distance) {
			continue
		}
		total = total.Add(hit.Object.Material.EvaluateBRDF(outgoing, sample.Direction, sample.Intensity, hit.Normal))
	}

	return total
}

// occluded reports whether any object lies along ray closer than maxDistance
func (rt *Raytracer) occluded(ray core.Ray, maxDistance float32) bool {
	rt.stats.ShadowRays++
	for _, object := range rt.scene.Objects {
		hit, isHit := object.Solid.Hit(ray)
		if isHit && core.Distance(hit.Point, ray.Origin) < maxDistance {
			rt.stats.OccludedShadowRays++
			return true
		}
	}
	return false
}

// Draw renders s with a fresh raytracer that logs to stdout
func Draw(s *scene.Scene, options RenderOptions) (*core.Frame[core.Color], error) {
	return NewRaytracer(s, options, nil).Draw()
}
