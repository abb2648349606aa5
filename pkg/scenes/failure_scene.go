package scenes

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// FailureHeading is the user-visible message shown when the show cannot
// start.
const FailureHeading = "Fireworks Show can't start"

const failureHeadingSize = 32

// FailureScene replaces the show when the scene could not be loaded.
// The frame loop of the show is never started.
type FailureScene struct {
	err  error
	face *text.GoTextFace
}

// NewFailureScene creates the failure screen for err.
func NewFailureScene(err error) *FailureScene {
	s := &FailureScene{err: err}

	source, ferr := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if ferr != nil {
		log.Printf("[FailureScene] Failed to load heading font: %v", ferr)
		return s
	}
	s.face = &text.GoTextFace{Source: source, Size: failureHeadingSize}
	return s
}

// Err returns the load error being reported.
func (s *FailureScene) Err() error {
	return s.err
}

// Update does nothing; the failure screen is static.
func (s *FailureScene) Update(deltaTime float64) {}

// Draw renders the heading centred at the top of the screen.
func (s *FailureScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	if s.face == nil {
		// Fallback: debug text if the font failed to load
		ebitenutil.DebugPrintAt(screen, FailureHeading, 8, 8)
		return
	}

	w, _ := text.Measure(FailureHeading, s.face, 0)
	x := (float64(screen.Bounds().Dx()) - w) / 2
	if x < 8 {
		x = 8
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, failureHeadingSize)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, FailureHeading, s.face, op)
}
