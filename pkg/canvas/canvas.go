// Package canvas defines the 2D drawing surface the fireworks show renders
// onto, plus the surfaces shipped with it: an Ebitengine screen, an in-memory
// RGBA raster, a tcell terminal and a recording display list.
package canvas

import "image/color"

// Canvas is a 2D drawing surface sized once at startup.
type Canvas interface {
	// Size returns the logical width and height in canvas units.
	Size() (width, height int)
	// Clear erases the whole surface.
	Clear()
	// FillCircle paints a filled circle centred on (x, y).
	FillCircle(x, y, radius float64, clr color.Color)
}

// Circle is one recorded FillCircle call.
type Circle struct {
	X, Y   float64
	Radius float64
	Color  color.NRGBA
}

// Frame is a recording Canvas: it keeps the display list of the current
// frame so it can be replayed onto another surface later (for example from
// Ebitengine's Draw after the simulation ran in Update).
type Frame struct {
	width, height int

	circles []Circle
	clears  int
}

// NewFrame creates an empty display list for a width x height surface.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:   width,
		height:  height,
		circles: make([]Circle, 0, 1024),
	}
}

// Size implements Canvas.
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Clear implements Canvas. It drops everything recorded so far.
func (f *Frame) Clear() {
	f.circles = f.circles[:0]
	f.clears++
}

// FillCircle implements Canvas.
func (f *Frame) FillCircle(x, y, radius float64, clr color.Color) {
	f.circles = append(f.circles, Circle{
		X:      x,
		Y:      y,
		Radius: radius,
		Color:  color.NRGBAModel.Convert(clr).(color.NRGBA),
	})
}

// Circles returns the circles recorded since the last Clear.
// The slice is reused by the next frame; callers must not keep it.
func (f *Frame) Circles() []Circle {
	return f.circles
}

// Clears returns how many times the frame has been cleared.
func (f *Frame) Clears() int {
	return f.clears
}

// ReplayTo clears dst and paints the recorded circles onto it.
func (f *Frame) ReplayTo(dst Canvas) {
	dst.Clear()
	for _, c := range f.circles {
		dst.FillCircle(c.X, c.Y, c.Radius, c.Color)
	}
}
