package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrUnsupportedFormat is returned when a file extension has no encoder
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ToImage converts a rendered frame to an 8-bit image.
// Channels are clamped and truncated; alpha is always opaque.
func ToImage(frame *core.Frame[core.Color]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width(), frame.Height()))
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			c, _ := frame.At(x, y)
			r, g, b := c.Clamped().AsRGBU8s()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Save encodes img to path, choosing the format from the extension:
// .png, .bmp, .tif or .tiff
func Save(path string, img image.Image) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if err := encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

type encodeFunc func(f *os.File, img image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return func(f *os.File, img image.Image) error { return png.Encode(f, img) }, nil
	case ".bmp":
		return func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }, nil
	case ".tif", ".tiff":
		return func(f *os.File, img image.Image) error {
			return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Annotate returns a copy of img with caption drawn in the bottom-left corner
func Annotate(img image.Image, caption string) image.Image {
	if caption == "" {
		return img
	}

	dc := gg.NewContextForImage(img)
	height := float64(dc.Height())

	// Drop shadow
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(caption, 5, height-3, 0, 0)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(caption, 4, height-4, 0, 0)

	return dc.Image()
}

// LoadFrame decodes a PNG, JPEG, BMP or TIFF file into an opaque color frame
func LoadFrame(path string) (*core.Frame[core.Color], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is detected from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	frame := core.NewFrame(bounds.Dx(), bounds.Dy(), core.Black)
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			// RGBA returns uint32 in [0, 65535]
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			frame.Set(x, y, core.FromRGB(float32(r)/65535, float32(g)/65535, float32(b)/65535))
		}
	}
	return frame, nil
}

// AverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func AverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 65535
		}
	}
	return total / float64(bounds.Dx()*bounds.Dy())
}
