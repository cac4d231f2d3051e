package geometry

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var (
	// ErrDegenerateResolution is returned for cameras with a zero-area image
	ErrDegenerateResolution = errors.New("camera resolution must be at least 1x1")
	// ErrDegenerateEye is returned when the eye transform is not a rigid motion
	ErrDegenerateEye = errors.New("camera eye transform must contain only rotation and translation")
)

// Camera maps pixels to world-space rays.
//
// The eye transform takes view space to world space: the view-space origin is
// the eye, the camera looks down -Z and +Y is up. Near and Far are carried for
// callers but no clipping happens during tracing.
type Camera struct {
	Near   float32    // Distance from the eye to the near clipping plane
	Far    float32    // Distance from the eye to the far clipping plane
	VFov   float32    // Vertical field of view in degrees
	Width  int        // Image width in pixels
	Height int        // Image height in pixels
	Eye    mgl32.Mat4 // View space to world space, rotation and translation only
}

// NewCamera creates a camera
func NewCamera(near, far, vfov float32, width, height int, eye mgl32.Mat4) Camera {
	return Camera{
		Near:   near,
		Far:    far,
		VFov:   vfov,
		Width:  width,
		Height: height,
		Eye:    eye,
	}
}

// DefaultCamera returns a 640x480 camera at the origin looking down -Z
func DefaultCamera() Camera {
	return NewCamera(0.1, 1000, 70, 640, 480, mgl32.Ident4())
}

// NewLookAtCamera creates a camera at from looking towards to
func NewLookAtCamera(from, to, up core.Vec3, vfov float32, width, height int) Camera {
	// LookAtV builds world -> view; the camera needs the inverse
	eye := mgl32.LookAtV(from, to, up).Inv()
	camera := DefaultCamera()
	camera.VFov = vfov
	camera.Width = width
	camera.Height = height
	camera.Eye = eye
	return camera
}

// PixelToWorld returns the world-space point at the center of pixel (x, y)
// on the image plane one unit in front of the eye.
func (c Camera) PixelToWorld(x, y int) core.Vec3 {
	pixelWidth := 1 / float32(c.Width)
	pixelHeight := 1 / float32(c.Height)

	// Screen coordinates in [0, 1], offset to the pixel center
	screenX := float32(x)*pixelWidth + pixelWidth/2
	screenY := float32(y)*pixelHeight + pixelHeight/2

	// Normalized device coordinates: x grows right, y grows up
	ndcX := screenX*2 - 1
	ndcY := 1 - screenY*2

	imageWidth, imageHeight := c.ImageSize()
	view := mgl32.Vec4{ndcX * imageWidth / 2, ndcY * imageHeight / 2, -1, 1}
	return c.Eye.Mul4x1(view).Vec3()
}

// WorldEye returns the position of the eye in world space
func (c Camera) WorldEye() core.Vec3 {
	return c.Eye.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

// PixelRay returns the ray from the eye through the center of pixel (x, y).
// The direction is unit length.
func (c Camera) PixelRay(x, y int) core.Ray {
	eye := c.WorldEye()
	direction := c.PixelToWorld(x, y).Sub(eye).Normalize()
	return core.NewRay(eye, direction)
}

// Aspect returns width / height of the image
func (c Camera) Aspect() float32 {
	return float32(c.Width) / float32(c.Height)
}

// ImageSize returns the size of the image plane in view space at unit distance
func (c Camera) ImageSize() (width, height float32) {
	height = 2 * math32.Tan(mgl32.DegToRad(c.VFov)/2)
	width = height * c.Aspect()
	return width, height
}

// Validate checks the preconditions ray generation relies on
func (c Camera) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrDegenerateResolution, c.Width, c.Height)
	}

	for _, v := range c.Eye {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite entry", ErrDegenerateEye)
		}
	}

	// Rotation block must be orthonormal: R·Rᵀ = I rules out scale and shear
	rotation := c.Eye.Mat3()
	if !rotation.Mul3(rotation.Transpose()).ApproxEqualThreshold(mgl32.Ident3(), 1e-4) {
		return fmt.Errorf("%w: rotation block is not orthonormal", ErrDegenerateEye)
	}

	// Bottom row must stay affine
	if !c.Eye.Row(3).ApproxEqualThreshold(mgl32.Vec4{0, 0, 0, 1}, 1e-4) {
		return fmt.Errorf("%w: projective bottom row", ErrDegenerateEye)
	}
	return nil
}
