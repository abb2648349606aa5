package fireworks

import (
	"math"
	"math/rand"
	"time"

	"github.com/gcardoso89/fireworks-canvas/pkg/canvas"
	"github.com/gcardoso89/fireworks-canvas/pkg/components"
	"github.com/gcardoso89/fireworks-canvas/pkg/timing"
	"github.com/gcardoso89/fireworks-canvas/pkg/utils"
)

// Rocket is a projectile that rises at constant velocity and then bursts
// into a radial cloud of fading particles.
//
// Lifecycle: idle -> waiting -> rising -> bursting -> ended. The burst
// starts when the active duration elapses or when the projectile crosses
// the top clamp, whichever comes first.
type Rocket struct {
	gates    components.PhaseGates
	timeline *timing.Timeline
	rng      *rand.Rand
	opts     Options

	// Launch point and per-frame velocity of the projectile.
	InitX, InitY float64
	VX, VY       float64
	// Current projectile position.
	X, Y float64

	Colour utils.RGB

	Begin    time.Duration
	Duration time.Duration

	// burst is nil until the first bursting frame.
	burst []*components.Particle
}

// NewRocket creates a rocket launched from (x, y) with a per-frame velocity
// (vx, vy). Canvas y grows downward, so a rising rocket has vy < 0.
func NewRocket(x, y, vx, vy float64, colour utils.RGB, begin, duration time.Duration, opts Options, rng *rand.Rand) *Rocket {
	return &Rocket{
		timeline: timing.NewTimeline(),
		rng:      rng,
		opts:     opts,
		InitX:    x,
		InitY:    y,
		VX:       vx,
		VY:       vy,
		X:        x,
		Y:        y,
		Colour:   colour,
		Begin:    begin,
		Duration: duration,
	}
}

// Kind implements FireElement.
func (r *Rocket) Kind() ElementKind { return KindRocket }

// Burst returns the burst particles, or nil before the burst.
func (r *Rocket) Burst() []*components.Particle { return r.burst }

// Advance implements FireElement.
func (r *Rocket) Advance(now time.Time, c canvas.Canvas) {
	r.timeline.Fire(now)

	if !r.gates.Started {
		r.timeline.After(now, r.Begin, func(due time.Time) {
			r.gates.CanStart = true
			r.timeline.After(due, r.Duration, func(time.Time) {
				r.gates.CanStop = true
			})
		})
		r.gates.Started = true
	}

	if !r.gates.CanStart {
		return
	}

	if !r.gates.CanStop {
		r.rise(c)
		return
	}

	if r.burst == nil {
		r.explode(now)
	}
	r.animateBurst(c)
}

// rise moves the projectile one frame. Crossing the top clamp forces the
// burst and the projectile is not drawn beyond it.
func (r *Rocket) rise(c canvas.Canvas) {
	r.X += r.VX
	r.Y += r.VY

	if r.Y < r.opts.TopClamp {
		r.gates.CanStop = true
		return
	}

	c.FillCircle(r.X, r.Y, r.opts.RocketRadius, r.Colour.WithOpacity(1))
}

// explode allocates the burst pool at the projectile position.
func (r *Rocket) explode(now time.Time) {
	r.burst = make([]*components.Particle, 0, r.opts.RocketParticles)
	for i := 0; i < r.opts.RocketParticles; i++ {
		p := components.NewParticle(r.X, r.Y, r.opts.RocketRadius, r.Colour, r.rng)
		p.Angle = r.rng.Float64() * 2 * math.Pi
		p.Ready = true
		p.ScheduleLifeCountdown(r.timeline, now, r.opts.Life, r.rng)
		r.burst = append(r.burst, p)
	}
}

func (r *Rocket) animateBurst(c canvas.Canvas) {
	ended := true
	for _, p := range r.burst {
		if p.Done {
			continue
		}
		ended = false

		p.Speed *= r.opts.Drag
		p.X += math.Cos(p.Angle) * p.Speed
		p.Y += math.Sin(p.Angle)*p.Speed + r.opts.Gravity

		if p.Fading {
			p.Opacity = math.Max(0, p.Opacity-r.opts.FadeStep)
		}

		p.Draw(c)
	}
	r.gates.Ended = ended
}

// Reset implements FireElement.
func (r *Rocket) Reset() {
	r.burst = nil
	r.X = r.InitX
	r.Y = r.InitY
	r.timeline.Clear()
	r.gates.Reset()
}

// Ended implements FireElement.
func (r *Rocket) Ended() bool { return r.gates.Ended }

// Phase implements FireElement.
func (r *Rocket) Phase() components.Phase { return r.gates.Phase() }

// Gates implements FireElement.
func (r *Rocket) Gates() components.PhaseGates { return r.gates }
