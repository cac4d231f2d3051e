package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Create for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID               string `json:"id"`               // Name passed to Create
	DisplayName      string `json:"displayName"`      // UI display name
	Description      string `json:"description"`      // Optional description
	RecommendedDepth int    `json:"recommendedDepth"` // Reflection depth the scene was composed for
}

type sceneEntry struct {
	info   SceneInfo
	create func(width, height int) *Scene
}

var builtInScenes = map[string]sceneEntry{
	"default": {
		info: SceneInfo{
			DisplayName: "Default Scene",
			Description: "Diffuse and phong spheres on a ground plane with two point lights",
		},
		create: NewDefaultScene,
	},
	"simple": {
		info: SceneInfo{
			DisplayName: "Simple Sphere",
			Description: "One unit sphere and one point light",
		},
		create: NewSimpleScene,
	},
	"shadow": {
		info: SceneInfo{
			DisplayName: "Shadow",
			Description: "Sphere fully shadowed by a disc between it and the light",
		},
		create: NewShadowScene,
	},
	"mirror": {
		info: SceneInfo{
			DisplayName:      "Mirror Spheres",
			Description:      "Facing spheres rendered through reflection rays",
			RecommendedDepth: 3,
		},
		create: NewMirrorScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for id, entry := range builtInScenes {
		info := entry.info
		info.ID = id
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Lookup returns the metadata of a built-in scene
func Lookup(name string) (SceneInfo, bool) {
	entry, ok := builtInScenes[name]
	if !ok {
		return SceneInfo{}, false
	}
	info := entry.info
	info.ID = name
	return info, true
}

// Create builds the named scene for a width x height image
func Create(name string, width, height int) (*Scene, error) {
	entry, ok := builtInScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return entry.create(width, height), nil
}
