package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/imageio"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Height    int
	MaxDepth  int // -1 uses the scene's recommended depth
	Bias      float64
	Output    string // Empty writes to output/<scene>/render_<timestamp>.png
	Caption   bool
}

func main() {
	config, showHelp := parseFlags()

	if showHelp {
		printHelp()
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	if err := run(config); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (Config, bool) {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene name (see -help)")
	flag.IntVar(&config.Width, "width", 640, "Image width in pixels")
	flag.IntVar(&config.Height, "height", 480, "Image height in pixels")
	flag.IntVar(&config.MaxDepth, "depth", -1, "Reflection depth, -1 for the scene's recommendation")
	flag.Float64Var(&config.Bias, "bias", float64(renderer.DefaultRenderOptions().ShadowBias), "Offset of secondary rays along the surface normal")
	flag.StringVar(&config.Output, "out", "", "Output file (.png, .bmp, .tif, .tiff)")
	flag.BoolVar(&config.Caption, "caption", false, "Draw the scene name and render time onto the image")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()
	return config, *help
}

func printHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output defaults to output/<scene>/render_<timestamp>.png")
}

// createScene builds a built-in scene by name
func createScene(sceneType string, width, height int) (*scene.Scene, scene.SceneInfo, error) {
	info, ok := scene.Lookup(sceneType)
	if !ok {
		return nil, scene.SceneInfo{}, fmt.Errorf("%w: %q", scene.ErrUnknownScene, sceneType)
	}
	s, err := scene.Create(sceneType, width, height)
	if err != nil {
		return nil, scene.SceneInfo{}, err
	}
	return s, info, nil
}

// renderOptions resolves the command line options against the scene's recommendation
func renderOptions(config Config, info scene.SceneInfo) renderer.RenderOptions {
	options := renderer.DefaultRenderOptions()
	options.ShadowBias = float32(config.Bias)
	options.MaxRayDepth = config.MaxDepth
	if config.MaxDepth < 0 {
		options.MaxRayDepth = info.RecommendedDepth
	}
	return options
}

// outputPath returns the file the render is written to, creating its directory
func outputPath(config Config, now time.Time) (string, error) {
	filename := config.Output
	if filename == "" {
		timestamp := now.Format("20060102_150405")
		filename = filepath.Join("output", config.SceneType, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return filename, nil
}

func run(config Config) error {
	selectedScene, info, err := createScene(config.SceneType, config.Width, config.Height)
	if err != nil {
		return err
	}
	fmt.Printf("Using %s scene...\n", info.DisplayName)

	options := renderOptions(config, info)
	raytracer := renderer.NewRaytracer(selectedScene, options, renderer.NewDefaultLogger())

	startTime := time.Now()
	frame, err := raytracer.Draw()
	if err != nil {
		return err
	}
	renderTime := time.Since(startTime)

	img := imageio.ToImage(frame)
	fmt.Printf("Average luminance: %.3f\n", imageio.AverageLuminance(img))

	var output image.Image = img
	if config.Caption {
		output = imageio.Annotate(img, fmt.Sprintf("%s  depth %d  %v", info.ID, options.MaxRayDepth, renderTime.Round(time.Millisecond)))
	}

	filename, err := outputPath(config, time.Now())
	if err != nil {
		return err
	}
	if err := imageio.Save(filename, output); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}
