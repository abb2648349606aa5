package fireworks

import (
	"fmt"
	"math/rand"

	"github.com/gcardoso89/fireworks-canvas/internal/scene"
	"github.com/gcardoso89/fireworks-canvas/pkg/utils"
)

// NewElement builds the fire element a descriptor describes on a
// width x height canvas.
//
// Positions in a descriptor are offsets from the middle of the bottom edge.
// A fountain's Position.y is its ceiling rather than its origin; fountains
// always emit from the bottom edge.
func NewElement(d scene.Descriptor, width, height float64, opts Options, rng *rand.Rand) (FireElement, error) {
	kind, ok := ParseElementKind(d.Type)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownElementType, d.Type)
	}

	colour, err := utils.ParseColour(d.Colour)
	if err != nil {
		return nil, err
	}

	originX := width/2 + float64(d.Position.X)

	switch kind {
	case KindFountain:
		return NewFountain(originX, height, float64(d.Position.Y), colour,
			d.BeginDelay(), d.ActiveDuration(), opts, rng), nil

	case KindRocket:
		if d.Velocity == nil {
			return nil, ErrMissingVelocity
		}
		divisor := opts.VelocityDivisor
		if divisor <= 0 {
			divisor = 60
		}
		vx := float64(d.Velocity.X) / divisor
		vy := -float64(d.Velocity.Y) / divisor
		return NewRocket(originX, height+float64(d.Position.Y), vx, vy, colour,
			d.BeginDelay(), d.ActiveDuration(), opts, rng), nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownElementType, d.Type)
}
