package fireworks

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gcardoso89/fireworks-canvas/pkg/canvas"
	"github.com/gcardoso89/fireworks-canvas/pkg/components"
)

// newTestRocket launches a rocket from the bottom centre of an 800 x height
// canvas, rising 10 units per frame.
func newTestRocket(height int, duration time.Duration, particles int) (*Rocket, *canvas.Frame) {
	opts := DefaultOptions()
	opts.RocketParticles = particles
	rng := rand.New(rand.NewSource(11))
	r := NewRocket(400, float64(height), 0, -10, testColour, 0, duration, opts, rng)
	return r, canvas.NewFrame(800, height)
}

// runUntilBurst advances frame by frame until the burst pool exists and
// returns the time of the burst frame.
func runUntilBurst(t *testing.T, r *Rocket, f *canvas.Frame, maxFrames int) time.Time {
	t.Helper()
	now := epoch
	for i := 0; i < maxFrames; i++ {
		advance(r, f, now)
		if r.Burst() != nil {
			return now
		}
		for _, c := range f.Circles() {
			if c.Y < r.opts.TopClamp {
				t.Fatalf("frame %d: projectile drawn at y=%v above the top clamp", i, c.Y)
			}
		}
		now = now.Add(frame)
	}
	t.Fatalf("Rocket did not burst within %d frames", maxFrames)
	return now
}

func TestRocketDurationGovernsBurst(t *testing.T) {
	r, f := newTestRocket(600, 500*time.Millisecond, 500)

	burstAt := runUntilBurst(t, r, f, 120)

	if burstAt.Before(epoch.Add(500 * time.Millisecond)) {
		t.Errorf("Burst at %v, before the duration elapsed", burstAt.Sub(epoch))
	}
	if r.Y <= r.opts.TopClamp {
		t.Errorf("Expected the burst well below the clamp, projectile at y=%v", r.Y)
	}
	if r.Y != 300 {
		t.Errorf("Expected the projectile to have risen 30 frames to y=300, got %v", r.Y)
	}
	if n := len(r.Burst()); n != 500 {
		t.Errorf("Expected 500 burst particles, got %d", n)
	}
}

func TestRocketTopClampGovernsBurst(t *testing.T) {
	r, f := newTestRocket(100, 10*time.Second, 500)

	now := epoch
	for i := 0; i <= 9; i++ {
		advance(r, f, now)
		now = now.Add(frame)
	}

	if r.Y != 10 {
		t.Fatalf("Expected projectile at y=10 after 9 rising frames, got %v", r.Y)
	}
	if !r.Gates().CanStop {
		t.Fatal("Crossing the top clamp must force the stop flag")
	}
	if len(f.Circles()) != 0 {
		t.Errorf("Projectile must not be drawn above the clamp, got %d circles", len(f.Circles()))
	}
	if r.Burst() != nil {
		t.Fatal("Burst must start on the frame after the clamp")
	}

	advance(r, f, now)
	if len(r.Burst()) != 500 {
		t.Fatalf("Expected the burst on the next frame, got %d particles", len(r.Burst()))
	}
	for _, p := range r.Burst() {
		if p.InitX != 400 || p.InitY != 10+2*p.Radius {
			t.Fatalf("Burst particle emitted from (%v, %v), want the projectile position", p.InitX, p.InitY)
		}
		if !p.Ready {
			t.Fatal("Burst particles must be ready")
		}
		if p.Angle < 0 || p.Angle >= 2*math.Pi {
			t.Fatalf("Angle %v outside [0, 2π)", p.Angle)
		}
	}
}

func TestRocketBurstMotion(t *testing.T) {
	r, f := newTestRocket(100, 10*time.Second, 1)
	now := runUntilBurst(t, r, f, 30)

	p := r.Burst()[0]
	x, y, speed := p.X, p.Y, p.Speed

	now = now.Add(frame)
	advance(r, f, now)

	wantSpeed := speed * 0.91
	wantX := x + math.Cos(p.Angle)*wantSpeed
	wantY := y + math.Sin(p.Angle)*wantSpeed + 4

	const eps = 1e-9
	if math.Abs(p.Speed-wantSpeed) > eps {
		t.Errorf("Speed = %v, want %v", p.Speed, wantSpeed)
	}
	if math.Abs(p.X-wantX) > eps || math.Abs(p.Y-wantY) > eps {
		t.Errorf("Position = (%v, %v), want (%v, %v)", p.X, p.Y, wantX, wantY)
	}
	if p.Opacity != 1 {
		t.Errorf("Opacity must not change before fading, got %v", p.Opacity)
	}

	p.Fading = true
	p.Opacity = 0.05
	advance(r, f, now.Add(frame))
	if p.Opacity != 0 {
		t.Errorf("Opacity must clamp at 0, got %v", p.Opacity)
	}
}

func TestRocketEndsWhenBurstFaded(t *testing.T) {
	r, f := newTestRocket(100, 10*time.Second, 50)
	now := runUntilBurst(t, r, f, 30)
	burstAt := now

	if r.Ended() {
		t.Fatal("Rocket must not end on its burst frame")
	}

	for i := 0; i < 200 && !r.Ended(); i++ {
		now = now.Add(frame)
		advance(r, f, now)
	}

	if !r.Ended() {
		t.Fatal("Rocket never ended")
	}
	if elapsed := now.Sub(burstAt); elapsed < 900*time.Millisecond || elapsed > 1350*time.Millisecond+frame {
		t.Errorf("Burst lasted %v, want between 900ms and 1350ms", elapsed)
	}
	for _, p := range r.Burst() {
		if !p.Done {
			t.Fatal("Ended rocket has a particle that is not done")
		}
	}
	if len(f.Circles()) != 0 {
		t.Errorf("Expected nothing drawn once ended, got %d circles", len(f.Circles()))
	}
}

func TestRocketEmptyBurstEndsImmediately(t *testing.T) {
	r, f := newTestRocket(100, 10*time.Second, 0)
	runUntilBurst(t, r, f, 30)

	if !r.Ended() {
		t.Error("Rocket with an empty burst pool must end on its burst frame")
	}
	if r.Phase() != components.PhaseEnded {
		t.Errorf("Phase = %v, want ended", r.Phase())
	}
}

func TestRocketDoneParticlesAreFrozen(t *testing.T) {
	r, f := newTestRocket(100, 10*time.Second, 2)
	now := runUntilBurst(t, r, f, 30)

	p := r.Burst()[0]
	p.Done = true
	x, y, speed, opacity := p.X, p.Y, p.Speed, p.Opacity

	advance(r, f, now.Add(frame))

	if p.X != x || p.Y != y || p.Speed != speed || p.Opacity != opacity {
		t.Error("Done burst particle was mutated")
	}
	if n := len(f.Circles()); n != 1 {
		t.Errorf("Expected only the live particle drawn, got %d circles", n)
	}
}

func TestRocketReset(t *testing.T) {
	r, f := newTestRocket(100, 10*time.Second, 20)
	runUntilBurst(t, r, f, 30)

	r.Reset()

	if r.Burst() != nil {
		t.Error("Reset must discard the burst pool")
	}
	if r.X != r.InitX || r.Y != r.InitY {
		t.Errorf("Projectile at (%v, %v), want launch point (%v, %v)", r.X, r.Y, r.InitX, r.InitY)
	}
	if r.Gates() != (components.PhaseGates{}) {
		t.Errorf("Expected gates cleared, got %+v", r.Gates())
	}
	if r.timeline.Pending() != 0 {
		t.Errorf("Expected life countdowns cancelled, got %d pending events", r.timeline.Pending())
	}
}

// Replaying the same clock offsets after a Reset reproduces the same gate
// transitions.
func TestRocketResetReplaysGateTransitions(t *testing.T) {
	r, f := newTestRocket(300, 200*time.Millisecond, 0)

	record := func(start time.Time) []components.PhaseGates {
		var seen []components.PhaseGates
		for i := 0; i < 40; i++ {
			advance(r, f, start.Add(time.Duration(i)*frame))
			seen = append(seen, r.Gates())
		}
		return seen
	}

	first := record(epoch)
	r.Reset()
	second := record(epoch.Add(time.Hour))

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("frame %d: gates %+v after reset, want %+v", i, second[i], first[i])
		}
	}
}
