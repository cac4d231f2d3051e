package core

import "fmt"

// Frame is a fixed-size row-major 2D buffer
type Frame[T any] struct {
	width  int
	height int
	cells  []T
}

// NewFrame creates a width x height frame with every cell set to fill
func NewFrame[T any](width, height int, fill T) *Frame[T] {
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Frame[T]{width: width, height: height, cells: cells}
}

// Width returns the number of columns
func (f *Frame[T]) Width() int {
	return f.width
}

// Height returns the number of rows
func (f *Frame[T]) Height() int {
	return f.height
}

// At returns the value at (x, y), or false when the coordinate lies outside the frame
func (f *Frame[T]) At(x, y int) (T, bool) {
	if !f.inBounds(x, y) {
		var zero T
		return zero, false
	}
	return f.cells[y*f.width+x], true
}

// Set stores value at (x, y). Writing outside the frame panics.
func (f *Frame[T]) Set(x, y int, value T) {
	if !f.inBounds(x, y) {
		panic(fmt.Sprintf("frame: set (%d, %d) outside %dx%d", x, y, f.width, f.height))
	}
	f.cells[y*f.width+x] = value
}

// SetAll overwrites every cell with value
func (f *Frame[T]) SetAll(value T) {
	for i := range f.cells {
		f.cells[i] = value
	}
}

// Cells returns the backing row-major slice. Callers must not modify it.
func (f *Frame[T]) Cells() []T {
	return f.cells
}

func (f *Frame[T]) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}
