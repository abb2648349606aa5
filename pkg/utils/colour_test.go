package utils

import (
	"errors"
	"testing"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{name: "hash notation", input: "#FF8800", want: RGB{R: 255, G: 136, B: 0}},
		{name: "0x notation", input: "0x20FF40", want: RGB{R: 32, G: 255, B: 64}},
		{name: "upper 0X notation", input: "0X0000ff", want: RGB{R: 0, G: 0, B: 255}},
		{name: "no prefix", input: "abcdef", want: RGB{R: 171, G: 205, B: 239}},
		{name: "surrounding space", input: "  #000000 ", want: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColour(tt.input)
			if err != nil {
				t.Fatalf("ParseColour(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColour(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColourInvalid(t *testing.T) {
	for _, input := range []string{"", "0xZZZZZZ", "#12345", "red"} {
		if _, err := ParseColour(input); !errors.Is(err, ErrInvalidColour) {
			t.Errorf("ParseColour(%q) error = %v, want ErrInvalidColour", input, err)
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	if got := NormalizeHex("0x112233"); got != "#112233" {
		t.Errorf("NormalizeHex(0x112233) = %q", got)
	}
	if got := NormalizeHex("#112233"); got != "#112233" {
		t.Errorf("NormalizeHex(#112233) = %q", got)
	}
}

func TestRGBWithOpacity(t *testing.T) {
	c := RGB{R: 10, G: 20, B: 30}

	if got := c.WithOpacity(1).A; got != 255 {
		t.Errorf("Expected alpha 255 at full opacity, got %d", got)
	}
	if got := c.WithOpacity(-0.3).A; got != 0 {
		t.Errorf("Expected negative opacity to clamp to 0, got %d", got)
	}
	if got := c.WithOpacity(0.5).A; got != 128 {
		t.Errorf("Expected alpha 128 at half opacity, got %d", got)
	}
}

func TestRGBBlend(t *testing.T) {
	white := RGB{R: 255, G: 255, B: 255}
	black := RGB{}

	if got := white.Blend(black, 0); got != white {
		t.Errorf("Blend(t=0) = %v, want %v", got, white)
	}
	if got := white.Blend(black, 1); got != black {
		t.Errorf("Blend(t=1) = %v, want %v", got, black)
	}
	if got := white.String(); got != "#ffffff" {
		t.Errorf("String() = %q", got)
	}
}
