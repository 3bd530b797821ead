package core

import "testing"

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(8, 6)

	if c.Width() != 8 {
		t.Errorf("Width() = %d, expected 8", c.Width())
	}
	if c.Height() != 6 {
		t.Errorf("Height() = %d, expected 6", c.Height())
	}
	if n := c.Count(ColorNone); n != 48 {
		t.Errorf("New canvas should be all background, got %d background pixels", n)
	}
}

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(5, 5, ColorRed)
	if c.Get(5, 5) != ColorRed {
		t.Errorf("Get(5, 5) = %v, expected red", c.Get(5, 5))
	}

	// Out of bounds should be silent
	c.Set(-1, 0, ColorRed)
	c.Set(100, 0, ColorRed)
	c.Set(0, -1, ColorRed)
	c.Set(0, 100, ColorRed)

	if c.Get(-1, 0) != ColorNone {
		t.Error("Out of bounds Get should return ColorNone")
	}
	if c.Count(ColorRed) != 1 {
		t.Errorf("Count(red) = %d, expected 1", c.Count(ColorRed))
	}
}

func TestCanvasFillRectClips(t *testing.T) {
	c := NewCanvas(4, 3)
	c.FillRect(NewRect(2, 1, 10, 10), ColorBlue)

	expected := "....\n..##\n..##"
	if got := c.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	c.FillRect(NewRect(-5, -5, 2, 2), ColorGreen) // fully outside
	if c.Count(ColorGreen) != 0 {
		t.Error("FillRect outside the canvas should paint nothing")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(5, 5)
	c.FillRect(c.Bounds(), ColorGray)
	c.Clear()

	if n := c.Count(ColorNone); n != 25 {
		t.Errorf("After Clear, expected 25 background pixels, got %d", n)
	}
}
