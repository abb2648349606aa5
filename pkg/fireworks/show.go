package fireworks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/gcardoso89/fireworks-canvas/internal/scene"
	"github.com/gcardoso89/fireworks-canvas/pkg/canvas"
	"github.com/gcardoso89/fireworks-canvas/pkg/timing"
)

// Show owns the canvas and the fire elements of a scene.
//
// Lifecycle: NewShow -> Load (or Play) -> Step every frame -> Stop. A show
// whose scene failed to load never starts: Step leaves the canvas untouched.
// A Show is driven by a single frame loop and is not safe for concurrent use.
type Show struct {
	canvas canvas.Canvas
	clock  timing.Clock
	rng    *rand.Rand
	opts   Options

	elements []FireElement
	running  bool
	cycles   int
}

// NewShow creates a stopped show drawing on c. A nil clock uses the system
// clock; a nil rng is seeded from the clock.
func NewShow(c canvas.Canvas, clock timing.Clock, rng *rand.Rand, opts Options) *Show {
	if clock == nil {
		clock = timing.NewSystemClock()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}
	return &Show{
		canvas: c,
		clock:  clock,
		rng:    rng,
		opts:   opts,
	}
}

// Load fetches the scene from src and starts the show.
// Any failure is returned as a *SceneLoadError and the show stays stopped.
func (s *Show) Load(ctx context.Context, src scene.Source) error {
	descriptors, err := src.Load(ctx)
	if err != nil {
		return &SceneLoadError{Source: src.String(), Err: err}
	}
	return s.Play(src.String(), descriptors)
}

// Play builds the fire elements from already fetched descriptors and starts
// the show. Unknown element types are skipped with a log line unless the
// show is strict.
func (s *Show) Play(source string, descriptors []scene.Descriptor) error {
	elements, err := s.build(descriptors)
	if err != nil {
		return &SceneLoadError{Source: source, Err: err}
	}

	s.elements = elements
	s.cycles = 0
	s.running = true

	log.Printf("[Show] Started %d fire element(s) from %s", len(elements), source)
	return nil
}

func (s *Show) build(descriptors []scene.Descriptor) ([]FireElement, error) {
	width, height := s.canvas.Size()

	elements := make([]FireElement, 0, len(descriptors))
	for i, d := range descriptors {
		el, err := NewElement(d, float64(width), float64(height), s.opts, s.rng)
		if err != nil {
			if errors.Is(err, ErrUnknownElementType) && !s.opts.Strict {
				log.Printf("[Show] skipping fire element #%d: %v", i, err)
				continue
			}
			return nil, fmt.Errorf("fire element #%d: %w", i, err)
		}
		elements = append(elements, el)
	}

	if len(elements) == 0 {
		return nil, scene.ErrNoElements
	}
	return elements, nil
}

// Step runs one frame: clear the canvas, advance every element, and restart
// them all together when every one of them has ended.
func (s *Show) Step() {
	if !s.running {
		return
	}

	s.canvas.Clear()

	now := s.clock.Now()
	allEnded := true
	for _, el := range s.elements {
		el.Advance(now, s.canvas)
		if !el.Ended() {
			allEnded = false
		}
	}

	if allEnded {
		for _, el := range s.elements {
			el.Reset()
		}
		s.cycles++
		log.Printf("[Show] Cycle %d complete, restarting %d fire element(s)", s.cycles, len(s.elements))
	}
}

// Stop halts the show and cancels every pending element event.
func (s *Show) Stop() {
	if !s.running {
		return
	}
	for _, el := range s.elements {
		el.Reset()
	}
	s.running = false
	log.Printf("[Show] Stopped after %d cycle(s)", s.cycles)
}

// Running reports whether Step animates the canvas.
func (s *Show) Running() bool { return s.running }

// Elements returns the fire elements in scene order.
func (s *Show) Elements() []FireElement { return s.elements }

// Cycles returns how many times the show restarted.
func (s *Show) Cycles() int { return s.cycles }

// Canvas returns the surface the show draws on.
func (s *Show) Canvas() canvas.Canvas { return s.canvas }
