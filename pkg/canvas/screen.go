package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen adapts an Ebitengine image (usually the screen passed to Draw) to
// the Canvas interface.
type Screen struct {
	target *ebiten.Image
}

// NewScreen wraps target. target may be nil and set later with SetTarget.
func NewScreen(target *ebiten.Image) *Screen {
	return &Screen{target: target}
}

// SetTarget switches the image painted by subsequent calls.
func (s *Screen) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Size implements Canvas.
func (s *Screen) Size() (int, int) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements Canvas.
func (s *Screen) Clear() {
	if s.target != nil {
		s.target.Clear()
	}
}

// FillCircle implements Canvas.
func (s *Screen) FillCircle(x, y, radius float64, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(radius), clr, true)
}
