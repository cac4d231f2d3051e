package server

import (
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/imageio"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string  `json:"scene"`      // Built-in scene name
	Width      int     `json:"width"`      // Image width
	Height     int     `json:"height"`     // Image height
	MaxDepth   int     `json:"maxDepth"`   // Reflection depth
	ShadowBias float64 `json:"shadowBias"` // Offset of secondary rays
	Format     string  `json:"format"`     // "png" or "json"
}

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	ID        string               `json:"id"`
	Scene     string               `json:"scene"`
	ImageData string               `json:"imageData"` // Base64 encoded PNG
	Stats     renderer.RenderStats `json:"stats"`
	Console   []ConsoleMessage     `json:"console"`
	ElapsedMs int64                `json:"elapsedMs"`
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene"), Format: query.Get("format")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	info, ok := scene.Lookup(req.Scene)
	if !ok {
		return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, req.Scene)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 640, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 480, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", info.RecommendedDepth, 0, maxRayDepth); err != nil {
		return nil, err
	}
	defaultBias := float64(renderer.DefaultRenderOptions().ShadowBias)
	if req.ShadowBias, err = parseFloatParam(query, "shadowBias", defaultBias, 0, maxBias); err != nil {
		return nil, err
	}

	switch req.Format {
	case "":
		req.Format = "png"
	case "png", "json":
	default:
		return nil, fmt.Errorf("format must be png or json, got: %s", req.Format)
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.MaxDepth > 4 {
		log.Printf("Render warning: Large image with deep reflection may render slowly")
	}

	return req, nil
}

// handleRender renders a built-in scene and returns it as a PNG or as JSON with stats and log lines
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := scene.Create(req.Scene, req.Width, req.Height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	console := newConsole(64)
	options := renderer.RenderOptions{
		ShadowBias:  float32(req.ShadowBias),
		MaxRayDepth: req.MaxDepth,
	}
	raytracer := renderer.NewRaytracer(sceneObj, options, nil)
	raytracer.SetLogger(NewWebLogger(raytracer.ID(), console.messages))

	startTime := time.Now()
	frame, err := raytracer.Draw()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, lights.ErrUnsupportedLight) || errors.Is(err, renderer.ErrInvalidOptions) {
			status = http.StatusBadRequest
		}
		writeError(w, status, fmt.Sprintf("Render error: %v", err))
		return
	}
	elapsed := time.Since(startTime)
	img := imageio.ToImage(frame)

	if req.Format == "png" {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("X-Render-Id", raytracer.ID())
		w.WriteHeader(http.StatusOK)
		if err := png.Encode(w, img); err != nil {
			log.Printf("Error writing PNG: %v", err)
		}
		return
	}

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, RenderResponse{
		ID:        raytracer.ID(),
		Scene:     req.Scene,
		ImageData: imageData,
		Stats:     raytracer.Stats(),
		Console:   console.drain(),
		ElapsedMs: elapsed.Milliseconds(),
	})
}
