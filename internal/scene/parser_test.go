package scene

import (
	"errors"
	"testing"
	"time"
)

const testSceneXML = `<?xml version="1.0" encoding="UTF-8"?>
<Fireworks>
  <Firework begin="1000" type="Fountain" colour="0x20FF40" duration="5000">
    <Position x="-200" y="-300"/>
  </Firework>
  <Firework begin="2500" type="Rocket" colour="#FF0000" duration="2000">
    <Position x="50" y="0"/>
    <Velocity x="-50" y="600"/>
  </Firework>
</Fireworks>`

const testSceneYAML = `fireworks:
  - type: Fountain
    colour: "0x20FF40"
    begin: 1000
    duration: 5000
    position: {x: -200, y: -300}
  - type: Rocket
    colour: "#FF0000"
    begin: 2500
    duration: 2000
    position: {x: 50, y: 0}
    velocity: {x: -50, y: 600}
`

func checkTestScene(t *testing.T, got []Descriptor) {
	t.Helper()

	if len(got) != 2 {
		t.Fatalf("Expected 2 descriptors, got %d", len(got))
	}

	fountain := got[0]
	if fountain.Type != "Fountain" || fountain.Colour != "0x20FF40" {
		t.Errorf("Unexpected fountain header: %+v", fountain)
	}
	if fountain.BeginDelay() != time.Second || fountain.ActiveDuration() != 5*time.Second {
		t.Errorf("Unexpected fountain timing: begin=%v duration=%v", fountain.BeginDelay(), fountain.ActiveDuration())
	}
	if fountain.Position != (Vector{X: -200, Y: -300}) {
		t.Errorf("Unexpected fountain position: %+v", fountain.Position)
	}
	if fountain.Velocity != nil {
		t.Errorf("Fountain should have no velocity, got %+v", fountain.Velocity)
	}

	rocket := got[1]
	if rocket.Type != "Rocket" || rocket.Velocity == nil {
		t.Fatalf("Unexpected rocket: %+v", rocket)
	}
	if *rocket.Velocity != (Vector{X: -50, Y: 600}) {
		t.Errorf("Unexpected rocket velocity: %+v", *rocket.Velocity)
	}
}

func TestParseXML(t *testing.T) {
	got, err := Parse([]byte(testSceneXML), FormatXML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	checkTestScene(t, got)
}

func TestParseYAML(t *testing.T) {
	got, err := Parse([]byte(testSceneYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	checkTestScene(t, got)
}

func TestParseKeepsUnknownTypes(t *testing.T) {
	doc := `<Fireworks>
  <Firework begin="0" type="Catherine Wheel" colour="#FFFFFF" duration="100"><Position x="0" y="0"/></Firework>
</Fireworks>`

	got, err := Parse([]byte(doc), FormatXML)
	if err != nil {
		t.Fatalf("Unknown element types must be left to the show, got error: %v", err)
	}
	if got[0].Type != "Catherine Wheel" {
		t.Errorf("Unexpected type %q", got[0].Type)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed XML", doc: `<Fireworks><Firework`},
		{name: "wrong root", doc: `<Show><Firework type="Rocket"/></Show>`},
		{name: "non numeric begin", doc: `<Fireworks><Firework type="Fountain" colour="#fff" begin="soon" duration="1"/></Fireworks>`},
		{name: "non numeric position", doc: `<Fireworks><Firework type="Fountain" colour="#fff" begin="0" duration="1"><Position x="left" y="0"/></Firework></Fireworks>`},
		{name: "negative duration", doc: `<Fireworks><Firework type="Fountain" colour="#fff" begin="0" duration="-1"/></Fireworks>`},
		{name: "missing type", doc: `<Fireworks><Firework colour="#fff" begin="0" duration="1"/></Fireworks>`},
		{name: "missing colour", doc: `<Fireworks><Firework type="Fountain" begin="0" duration="1"/></Fireworks>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc), FormatXML); err == nil {
				t.Errorf("Expected Parse to fail for %s", tt.name)
			}
		})
	}
}

func TestParseEmptyScene(t *testing.T) {
	_, err := Parse([]byte(`<Fireworks></Fireworks>`), FormatXML)
	if !errors.Is(err, ErrNoElements) {
		t.Errorf("Expected ErrNoElements, got %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
		want Format
	}{
		{name: "xml extension", file: "show.xml", data: "fireworks: []", want: FormatXML},
		{name: "yaml extension", file: "show.YAML", data: "<Fireworks/>", want: FormatYAML},
		{name: "yml extension", file: "show.yml", want: FormatYAML},
		{name: "sniff xml", file: "show", data: "  <?xml version=\"1.0\"?>", want: FormatXML},
		{name: "sniff yaml", file: "", data: "fireworks:", want: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.file, []byte(tt.data)); got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}
