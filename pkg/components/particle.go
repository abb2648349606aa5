package components

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/gcardoso89/fireworks-canvas/pkg/canvas"
	"github.com/gcardoso89/fireworks-canvas/pkg/timing"
	"github.com/gcardoso89/fireworks-canvas/pkg/utils"
)

// DefaultParticleRadius is the radius of every particle and projectile.
const DefaultParticleRadius = 2.0

// inertColour is painted for particles that have not had their first
// post-emission kick yet.
var inertColour = color.NRGBA{A: 255}

// LifeSpan describes the visible lifetime of a burst particle: it starts
// fading after a random delay in [FadeAfterMin, FadeAfterMax) and is done
// FadeOut later.
type LifeSpan struct {
	FadeAfterMin time.Duration
	FadeAfterMax time.Duration
	FadeOut      time.Duration
}

// DefaultLifeSpan is the lifetime of a rocket burst particle.
var DefaultLifeSpan = LifeSpan{
	FadeAfterMin: 400 * time.Millisecond,
	FadeAfterMax: 850 * time.Millisecond,
	FadeOut:      500 * time.Millisecond,
}

// Particle is a single simulated point mass.
//
// The owning fire element integrates its position; a particle only knows how
// to resample itself, draw itself and count down its own lifetime.
type Particle struct {
	// Position and velocity (canvas units, units per frame)
	X, Y   float64
	VX, VY float64

	// Emission point
	InitX, InitY float64

	Radius  float64
	Colour  utils.RGB
	Opacity float64

	// Burst particles move along Angle (radians) at Speed, which decays
	// every frame.
	Angle float64
	Speed float64

	// MaxY is the (negative) ceiling offset from the canvas bottom above
	// which a fountain particle leaves its column.
	MaxY float64

	// Lifecycle flags
	Ready  bool // first post-emission velocity kick received
	Fading bool // opacity is decreasing
	Done   bool // excluded from simulation and drawing until Reinitialize
}

// NewParticle creates a particle emitted from (x, y). The emission point
// sits two radii below the origin.
func NewParticle(x, y, radius float64, colour utils.RGB, rng *rand.Rand) *Particle {
	if radius <= 0 {
		radius = DefaultParticleRadius
	}
	p := &Particle{
		InitX:   x,
		InitY:   y + radius*2,
		Radius:  radius,
		Colour:  colour,
		Opacity: 1,
		Speed:   rng.Float64()*-30 - 2,
	}
	p.Reinitialize(rng)
	return p
}

// Reinitialize puts the particle back on its emission point with a fresh
// strong upward velocity and clears every lifecycle flag.
func (p *Particle) Reinitialize(rng *rand.Rand) {
	p.Done = false
	p.Ready = false
	p.Fading = false
	p.Opacity = 1

	p.X = p.InitX
	p.Y = p.InitY

	p.VX = rng.Float64()*4 - 2
	p.VY = rng.Float64()*-100 - 7
}

// Recycle re-emits a fountain particle that left its column and marks it
// ready, which switches it from the inert colour to its own.
func (p *Particle) Recycle(rng *rand.Rand) {
	p.X = p.InitX
	p.Y = p.InitY - p.Radius
	p.VX = rng.Float64()*4 - 2
	p.VY = rng.Float64()*-10 - 5
	p.Ready = true
}

// Draw paints the particle at its current position. Done particles are not
// drawn.
func (p *Particle) Draw(c canvas.Canvas) {
	if p.Done {
		return
	}
	if !p.Ready {
		c.FillCircle(p.X, p.Y, p.Radius, inertColour)
		return
	}
	c.FillCircle(p.X, p.Y, p.Radius, p.Colour.WithOpacity(p.Opacity))
}

// ScheduleLifeCountdown arms the finite visible lifetime of a burst
// particle on tl: the particle starts fading after a random delay and is
// done life.FadeOut after that.
func (p *Particle) ScheduleLifeCountdown(tl *timing.Timeline, now time.Time, life LifeSpan, rng *rand.Rand) {
	delay := life.FadeAfterMin
	if spread := life.FadeAfterMax - life.FadeAfterMin; spread > 0 {
		delay += time.Duration(rng.Float64() * float64(spread))
	}
	tl.After(now, delay, func(due time.Time) {
		p.Fading = true
		tl.After(due, life.FadeOut, func(time.Time) {
			p.Done = true
		})
	})
}
