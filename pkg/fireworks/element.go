// Package fireworks implements the fireworks show: fire elements (fountains
// and rockets) that animate particles on a canvas, and the show controller
// that advances them every frame and restarts them together once they have
// all ended.
package fireworks

import (
	"strings"
	"time"

	"github.com/gcardoso89/fireworks-canvas/pkg/canvas"
	"github.com/gcardoso89/fireworks-canvas/pkg/components"
)

// ElementKind is the closed set of fire element variants.
type ElementKind int

const (
	KindUnknown ElementKind = iota
	KindFountain
	KindRocket
)

func (k ElementKind) String() string {
	switch k {
	case KindFountain:
		return "Fountain"
	case KindRocket:
		return "Rocket"
	default:
		return "Unknown"
	}
}

// ParseElementKind maps a scene type tag to an element kind.
// Matching ignores case and surrounding spaces.
func ParseElementKind(tag string) (ElementKind, bool) {
	tag = strings.TrimSpace(tag)
	switch {
	case strings.EqualFold(tag, "Fountain"):
		return KindFountain, true
	case strings.EqualFold(tag, "Rocket"):
		return KindRocket, true
	default:
		return KindUnknown, false
	}
}

// FireElement is one independently scheduled animated unit.
//
// Advance is called once per frame with the frame time. The first call of a
// cycle arms the element's start and stop events relative to that time;
// events that are due fire at the start of every call, before anything
// moves, so a zero start delay takes effect on the following frame.
type FireElement interface {
	Kind() ElementKind
	Advance(now time.Time, c canvas.Canvas)
	// Reset returns the element to its pre-start state and cancels every
	// pending event.
	Reset()
	Ended() bool
	Phase() components.Phase
	Gates() components.PhaseGates
}
