package fireworks

import (
	"math/rand"
	"time"

	"github.com/gcardoso89/fireworks-canvas/pkg/canvas"
	"github.com/gcardoso89/fireworks-canvas/pkg/components"
	"github.com/gcardoso89/fireworks-canvas/pkg/timing"
	"github.com/gcardoso89/fireworks-canvas/pkg/utils"
)

// Fountain is a continuous upward jet of particles from a point on the
// bottom edge of the canvas.
//
// Lifecycle: idle -> waiting -> emitting -> stopping -> ended. While
// emitting, particles that leave their column are re-emitted; while
// stopping they are retired instead, and the fountain ends once the whole
// pool is retired.
type Fountain struct {
	gates    components.PhaseGates
	timeline *timing.Timeline
	rng      *rand.Rand

	// X, Y is the emission origin on the canvas.
	X, Y   float64
	Colour utils.RGB

	Begin    time.Duration
	Duration time.Duration

	particles []*components.Particle
}

// NewFountain creates a fountain at (x, y) whose particles climb to about
// ceiling (a negative offset from the canvas bottom) plus up to jitter.
// The particle pool is allocated once here and reused every cycle.
func NewFountain(x, y, ceiling float64, colour utils.RGB, begin, duration time.Duration, opts Options, rng *rand.Rand) *Fountain {
	f := &Fountain{
		timeline:  timing.NewTimeline(),
		rng:       rng,
		X:         x,
		Y:         y,
		Colour:    colour,
		Begin:     begin,
		Duration:  duration,
		particles: make([]*components.Particle, 0, opts.FountainParticles),
	}
	for i := 0; i < opts.FountainParticles; i++ {
		p := components.NewParticle(x, y, opts.FountainRadius, colour, rng)
		p.MaxY = ceiling + rng.Float64()*opts.CeilingJitter
		f.particles = append(f.particles, p)
	}
	return f
}

// Kind implements FireElement.
func (f *Fountain) Kind() ElementKind { return KindFountain }

// Particles returns the particle pool.
func (f *Fountain) Particles() []*components.Particle { return f.particles }

// Advance implements FireElement.
func (f *Fountain) Advance(now time.Time, c canvas.Canvas) {
	f.timeline.Fire(now)

	if !f.gates.Started {
		f.timeline.After(now, f.Begin, func(due time.Time) {
			f.gates.CanStart = true
			f.timeline.After(due, f.Duration, func(time.Time) {
				f.gates.CanStop = true
			})
		})
		f.gates.Started = true
	}

	if !f.gates.CanStart {
		return
	}

	width, height := c.Size()
	w, h := float64(width), float64(height)

	for _, p := range f.particles {
		if p.Done {
			continue
		}

		p.X += p.VX
		p.Y += p.VY

		if p.X+p.Radius > w || p.X-p.Radius < 0 || p.Y+p.Radius < h+p.MaxY {
			if f.gates.CanStop {
				p.Done = true
				continue
			}
			p.Recycle(f.rng)
		}

		p.Draw(c)
	}

	f.gates.Ended = f.gates.CanStop && f.allDone()
}

func (f *Fountain) allDone() bool {
	for _, p := range f.particles {
		if !p.Done {
			return false
		}
	}
	return true
}

// Reset implements FireElement.
func (f *Fountain) Reset() {
	for _, p := range f.particles {
		p.Reinitialize(f.rng)
	}
	f.timeline.Clear()
	f.gates.Reset()
}

// Ended implements FireElement.
func (f *Fountain) Ended() bool { return f.gates.Ended }

// Phase implements FireElement.
func (f *Fountain) Phase() components.Phase { return f.gates.Phase() }

// Gates implements FireElement.
func (f *Fountain) Gates() components.PhaseGates { return f.gates }
