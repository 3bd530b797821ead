package core

import "strings"

// Canvas is an in-memory pixel buffer implementing Surface.
// The terminal front end renders it two pixel rows per text line.
type Canvas struct {
	width  int
	height int
	pixels [][]Color
}

// NewCanvas creates a cleared canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
	}
	c.allocate()
	return c
}

// allocate creates the underlying pixel storage.
func (c *Canvas) allocate() {
	c.pixels = make([][]Color, c.height)
	for y := range c.pixels {
		c.pixels[y] = make([]Color, c.width)
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the canvas area as a rectangle anchored at the origin.
func (c *Canvas) Bounds() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// Clear resets every pixel to ColorNone.
func (c *Canvas) Clear() {
	for y := range c.pixels {
		clear(c.pixels[y])
	}
}

// Set paints a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y][x] = col
}

// Get returns the pixel at the given position.
// Returns ColorNone for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ColorNone
	}
	return c.pixels[y][x]
}

// FillRect paints the part of r that lies on the canvas.
func (c *Canvas) FillRect(r Rect, col Color) {
	clip := r.Intersect(c.Bounds())
	if clip.Empty() {
		return
	}
	for y := clip.Y; y < clip.Bottom(); y++ {
		row := c.pixels[y]
		for x := clip.X; x < clip.Right(); x++ {
			row[x] = col
		}
	}
}

// Count returns how many pixels have the given color.
func (c *Canvas) Count(col Color) int {
	n := 0
	for _, row := range c.pixels {
		for _, p := range row {
			if p == col {
				n++
			}
		}
	}
	return n
}

// String renders the canvas one character per pixel: '.' for background,
// '#' for anything painted. Used for debugging and tests.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			if c.pixels[y][x] == ColorNone {
				sb.WriteRune('.')
			} else {
				sb.WriteRune('#')
			}
		}
	}
	return sb.String()
}

var _ Surface = (*Canvas)(nil)
