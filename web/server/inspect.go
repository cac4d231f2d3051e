package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ObjectIndex  int                    `json:"objectIndex"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float32             `json:"point"`
	Normal       [3]float32             `json:"normal"`
	Distance     float32                `json:"distance"`
	Properties   map[string]interface{} `json:"properties"`
}

func vecArray(v core.Vec3) [3]float32 {
	return [3]float32{v.X(), v.Y(), v.Z()}
}

func colorArray(c core.Color) [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

func hexColor(c core.Color) string {
	r, g, b := c.Clamped().AsRGBU8s()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["diffuse"] = colorArray(m.Diffuse)
		properties["albedo"] = m.Albedo
		properties["color"] = hexColor(m.Diffuse)
		return "lambertian", properties

	case *material.Phong:
		properties["diffuse"] = colorArray(m.Diffuse)
		properties["albedo"] = m.Albedo
		properties["specular"] = colorArray(m.Specular)
		properties["exponent"] = m.Exponent
		properties["clampSpecular"] = m.ClampSpecular
		properties["color"] = hexColor(m.Diffuse)
		return "phong", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(solid geometry.Solid) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := solid.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["normal"] = vecArray(geom.Normal)
		properties["offset"] = geom.Offset
		return "plane", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float32{vecArray(geom.V0), vecArray(geom.V1), vecArray(geom.V2)}
		properties["normal"] = vecArray(geom.Normal())
		return "triangle", properties

	case *geometry.Disc:
		properties["center"] = vecArray(geom.Center)
		properties["normal"] = vecArray(geom.Normal)
		properties["radius"] = geom.Radius
		return "disc", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the primary ray through the pixel center and returns the nearest object hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) (renderer.Intersection, bool) {
	raytracer := renderer.NewRaytracer(sceneObj, renderer.DefaultRenderOptions(), renderer.NewDiscardLogger())
	return raytracer.NearestHit(sceneObj.Camera.PixelRay(pixelX, pixelY))
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sceneName := query.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	width, err := parseIntParam(query, "width", 640, minImageSize, maxImageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}
	height, err := parseIntParam(query, "height", 480, minImageSize, maxImageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Pixel coordinates are required
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, "Missing x or y coordinate")
		return
	}
	pixelX, err := parseIntParam(query, "x", 0, 0, width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds: "+err.Error())
		return
	}
	pixelY, err := parseIntParam(query, "y", 0, 0, height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds: "+err.Error())
		return
	}

	sceneObj, err := scene.Create(sceneName, width, height)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown scene: "+sceneName)
		return
	}

	hit, ok := inspectPixel(sceneObj, pixelX, pixelY)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, ObjectIndex: -1})
		return
	}

	materialType, materialProps := extractMaterialInfo(hit.Object.Material)
	geometryType, geometryProps := extractGeometryInfo(hit.Object.Solid)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		ObjectIndex:  hit.Index,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.Distance,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
