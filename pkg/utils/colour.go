package utils

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColour is returned when a colour descriptor cannot be parsed.
var ErrInvalidColour = errors.New("invalid colour")

// RGB is an opaque 8-bit colour triple.
type RGB struct {
	R, G, B uint8
}

// NormalizeHex rewrites the alternate 0x-prefixed notation into #-prefixed
// notation and adds the # when it is missing:
//
//	"0xFF8800" -> "#FF8800"
//	"ff8800"   -> "#ff8800"
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return "#" + s[2:]
	case strings.HasPrefix(s, "#"):
		return s
	default:
		return "#" + s
	}
}

// ParseColour maps a hex colour descriptor ("#rrggbb", "0xrrggbb", "#rgb")
// to an RGB triple.
func ParseColour(s string) (RGB, error) {
	hex := NormalizeHex(s)
	if len(hex) != 7 && len(hex) != 4 {
		return RGB{}, fmt.Errorf("%w %q: want 3 or 6 hex digits", ErrInvalidColour, s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("%w %q: %v", ErrInvalidColour, s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseColour is like ParseColour but panics on error.
// Only for package-level constants and tests.
func MustParseColour(s string) RGB {
	c, err := ParseColour(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithOpacity returns the colour as non-premultiplied RGBA at the given
// opacity, clamped to [0, 1].
func (c RGB) WithOpacity(opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity*255 + 0.5)}
}

// Blend mixes c towards dst by t in RGB space (t=0 -> c, t=1 -> dst).
func (c RGB) Blend(dst RGB, t float64) RGB {
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(dst.R) / 255, G: float64(dst.G) / 255, B: float64(dst.B) / 255}
	r, g, bl := a.BlendRgb(b, t).Clamped().RGB255()
	return RGB{R: r, G: g, B: bl}
}

// String returns the #rrggbb form.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
