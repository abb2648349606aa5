package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// circleSegments is the polygon resolution used to approximate circles.
const circleSegments = 16

// Raster is a headless Canvas backed by an RGBA image and rasterized with
// golang.org/x/image/vector.
type Raster struct {
	img        *image.RGBA
	z          *vector.Rasterizer
	background *image.Uniform
}

// NewRaster creates a width x height raster cleared to background.
func NewRaster(width, height int, background color.Color) *Raster {
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		z:          vector.NewRasterizer(0, 0),
		background: image.NewUniform(background),
	}
	r.Clear()
	return r
}

// Size implements Canvas.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements Canvas.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), r.background, image.Point{}, draw.Src)
}

// FillCircle implements Canvas.
func (r *Raster) FillCircle(x, y, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(x-radius)), int(math.Floor(y-radius)),
		int(math.Ceil(x+radius)), int(math.Ceil(y+radius)),
	).Intersect(r.img.Bounds())
	if box.Empty() {
		return
	}

	// Rasterizer coordinates are relative to the top-left of box.
	ox, oy := x-float64(box.Min.X), y-float64(box.Min.Y)
	r.z.Reset(box.Dx(), box.Dy())
	r.z.DrawOp = draw.Over
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		px := float32(ox + radius*math.Cos(a))
		py := float32(oy + radius*math.Sin(a))
		if i == 0 {
			r.z.MoveTo(px, py)
		} else {
			r.z.LineTo(px, py)
		}
	}
	r.z.ClosePath()
	r.z.Draw(r.img, box, image.NewUniform(clr), image.Point{})
}

// Image returns the backing image. It is overwritten by later frames.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// EncodePNG writes the current frame as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}
