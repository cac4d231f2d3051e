package core

// Color holds radiance or reflectance as alpha plus RGB.
// Channels are unbounded while light is being accumulated; clamp before
// converting to bytes.
type Color struct {
	A, R, G, B float32
}

// NewColor creates a color from alpha, red, green and blue channels
func NewColor(a, r, g, b float32) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// FromRGB creates an opaque color
func FromRGB(r, g, b float32) Color {
	return NewColor(1, r, g, b)
}

// FromARGB creates a color with explicit alpha
func FromARGB(a, r, g, b float32) Color {
	return NewColor(a, r, g, b)
}

// FromRGBU8s creates an opaque color from 8-bit channels
func FromRGBU8s(r, g, b uint8) Color {
	return FromRGB(componentAsFloat(r), componentAsFloat(g), componentAsFloat(b))
}

// FromARGBU8s creates a color from 8-bit channels
func FromARGBU8s(a, r, g, b uint8) Color {
	return FromARGB(componentAsFloat(a), componentAsFloat(r), componentAsFloat(g), componentAsFloat(b))
}

// Black is the additive identity
var Black = FromARGB(0, 0, 0, 0)

// White is opaque white, the identity for Multiply
var White = FromRGB(1, 1, 1)

// Add returns the component-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.A + other.A, c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the component-wise product, used for tinting
func (c Color) Multiply(other Color) Color {
	return Color{c.A * other.A, c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale multiplies every channel by s
func (c Color) Scale(s float32) Color {
	return Color{c.A * s, c.R * s, c.G * s, c.B * s}
}

// Clamped projects every channel into [0, 1]
func (c Color) Clamped() Color {
	return Color{
		A: clampComponent(c.A),
		R: clampComponent(c.R),
		G: clampComponent(c.G),
		B: clampComponent(c.B),
	}
}

// AsARGBU8s truncates each channel times 255 to a byte.
// Channels outside [0, 1] overflow; call Clamped first.
func (c Color) AsARGBU8s() (a, r, g, b uint8) {
	return componentAsByte(c.A), componentAsByte(c.R), componentAsByte(c.G), componentAsByte(c.B)
}

// AsRGBU8s is AsARGBU8s without the alpha channel
func (c Color) AsRGBU8s() (r, g, b uint8) {
	return componentAsByte(c.R), componentAsByte(c.G), componentAsByte(c.B)
}

// SumColors folds colors with Add starting from Black
func SumColors(colors ...Color) Color {
	sum := Black
	for _, c := range colors {
		sum = sum.Add(c)
	}
	return sum
}

// MultiplyColors folds colors with Multiply starting from White
func MultiplyColors(colors ...Color) Color {
	product := White
	for _, c := range colors {
		product = product.Multiply(c)
	}
	return product
}

// MixColors returns the weighted sum of colors.
// Extra entries in the longer slice are ignored.
func MixColors(colors []Color, weights []float32) Color {
	mixed := Black
	for i := 0; i < len(colors) && i < len(weights); i++ {
		mixed = mixed.Add(colors[i].Scale(weights[i]))
	}
	return mixed
}

func componentAsByte(component float32) uint8 {
	return uint8(component * 255)
}

func componentAsFloat(component uint8) float32 {
	return float32(component) / 255
}

func clampComponent(component float32) float32 {
	return max(0, min(1, component))
}
