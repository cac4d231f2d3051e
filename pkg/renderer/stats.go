package renderer

import "fmt"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Pixels             int `json:"pixels"`             // Pixels visited by Draw
	PrimaryRays        int `json:"primaryRays"`        // Camera rays cast by Draw
	ReflectionRays     int `json:"reflectionRays"`     // Mirror rays spawned by CastRay
	ShadowRays         int `json:"shadowRays"`         // Visibility rays towards lights
	OccludedShadowRays int `json:"occludedShadowRays"` // Shadow rays that found a blocker
	Hits               int `json:"hits"`               // Rays that hit any object
	MaxDepth           int `json:"maxDepth"`           // Deepest CastRay depth reached
}

// observeDepth records that CastRay ran at depth
func (s *RenderStats) observeDepth(depth int) {
	s.MaxDepth = max(s.MaxDepth, depth)
}

// String formats the counters for log output
func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d primary rays, %d hits, %d reflection rays, %d shadow rays (%d occluded), max depth %d",
		s.Pixels, s.PrimaryRays, s.Hits, s.ReflectionRays, s.ShadowRays, s.OccludedShadowRays, s.MaxDepth)
}
