package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gcardoso89/fireworks-canvas/pkg/canvas"
	"github.com/gcardoso89/fireworks-canvas/pkg/fireworks"
)

// ShowScene runs a loaded fireworks show.
//
// Ebitengine separates Update and Draw, so the show steps into a recording
// frame during Update and the frame is replayed onto the screen in Draw.
type ShowScene struct {
	show   *fireworks.Show
	frame  *canvas.Frame
	screen *canvas.Screen
}

// NewShowScene creates a scene for a running show drawing on frame.
func NewShowScene(show *fireworks.Show, frame *canvas.Frame) *ShowScene {
	return &ShowScene{
		show:   show,
		frame:  frame,
		screen: canvas.NewScreen(nil),
	}
}

// Update advances the show by one frame.
func (s *ShowScene) Update(deltaTime float64) {
	s.show.Step()
}

// Draw replays the last simulated frame.
func (s *ShowScene) Draw(screen *ebiten.Image) {
	s.screen.SetTarget(screen)
	s.frame.ReplayTo(s.screen)
}

// Stop tears the show down.
func (s *ShowScene) Stop() {
	s.show.Stop()
}

// Show returns the running show.
func (s *ShowScene) Show() *fireworks.Show {
	return s.show
}
