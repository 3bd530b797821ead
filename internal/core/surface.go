package core

// Surface is the immediate-mode drawing target the renderer paints on.
// Coordinates are pixels; implementations clip anything off-surface.
type Surface interface {
	// Clear resets every pixel to the background.
	Clear()

	// FillRect paints a solid rectangle.
	FillRect(r Rect, c Color)
}
