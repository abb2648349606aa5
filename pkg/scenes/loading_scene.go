package scenes

import (
	"context"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gcardoso89/fireworks-canvas/internal/scene"
	"github.com/gcardoso89/fireworks-canvas/pkg/canvas"
	"github.com/gcardoso89/fireworks-canvas/pkg/fireworks"
	"github.com/gcardoso89/fireworks-canvas/pkg/game"
)

// loadResult is handed from the fetch goroutine back to the frame loop.
type loadResult struct {
	descriptors []scene.Descriptor
	err         error
}

// LoadingScene fetches the scene description and switches to the show once
// it arrives, or to the failure screen when it cannot be loaded.
//
// The fetch is the only asynchronous work of the application. It runs on its
// own goroutine; its result is polled from Update so the show is only ever
// built and mutated on the frame loop.
type LoadingScene struct {
	sceneManager *game.SceneManager
	show         *fireworks.Show
	frame        *canvas.Frame
	source       scene.Source
	timeout      time.Duration

	started bool
	result  chan loadResult
	cancel  context.CancelFunc
	elapsed float64
}

// NewLoadingScene creates a loading scene for show, which must draw on frame.
func NewLoadingScene(sm *game.SceneManager, show *fireworks.Show, frame *canvas.Frame, source scene.Source, timeout time.Duration) *LoadingScene {
	return &LoadingScene{
		sceneManager: sm,
		show:         show,
		frame:        frame,
		source:       source,
		timeout:      timeout,
		result:       make(chan loadResult, 1),
	}
}

// Update starts the fetch on the first frame and polls for its result.
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	if !s.started {
		s.start()
		return
	}

	select {
	case res := <-s.result:
		s.cancel()
		s.finish(res)
	default:
	}
}

func (s *LoadingScene) start() {
	s.started = true

	ctx := context.Background()
	if s.timeout > 0 {
		ctx, s.cancel = context.WithTimeout(ctx, s.timeout)
	} else {
		ctx, s.cancel = context.WithCancel(ctx)
	}

	log.Printf("[LoadingScene] Fetching scene from %s", s.source)
	go func() {
		descriptors, err := s.source.Load(ctx)
		s.result <- loadResult{descriptors: descriptors, err: err}
	}()
}

func (s *LoadingScene) finish(res loadResult) {
	var err error
	if res.err != nil {
		err = &fireworks.SceneLoadError{Source: s.source.String(), Err: res.err}
	} else {
		err = s.show.Play(s.source.String(), res.descriptors)
	}

	if err != nil {
		log.Printf("[LoadingScene] %v", err)
		s.sceneManager.SwitchTo(NewFailureScene(err))
		return
	}

	log.Printf("[LoadingScene] Scene loaded in %.2fs", s.elapsed)
	s.sceneManager.SwitchTo(NewShowScene(s.show, s.frame))
}

// Stop cancels a fetch still in flight.
func (s *LoadingScene) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Draw shows a discreet loading hint. The canvas itself is not touched
// until the show starts.
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ebitenutil.DebugPrintAt(screen, "Loading fireworks...", 8, 8)
}
