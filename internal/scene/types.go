// Package scene provides the data structures and loaders for fireworks scene
// descriptions.
//
// A scene is an ordered list of fire element descriptors. It is authored as
// XML (the historical format) or YAML:
//
//	<Fireworks>
//	  <Firework begin="1000" type="Fountain" colour="0x20FF40" duration="5000">
//	    <Position x="-200" y="-300"/>
//	  </Firework>
//	  <Firework begin="3000" type="Rocket" colour="#FF0000" duration="2000">
//	    <Position x="0" y="0"/>
//	    <Velocity x="-50" y="600"/>
//	  </Firework>
//	</Fireworks>
package scene

import (
	"encoding/xml"
	"time"
)

// Document is the root of a scene file.
type Document struct {
	XMLName  xml.Name     `xml:"Fireworks" yaml:"-"`
	Elements []Descriptor `xml:"Firework" yaml:"fireworks"`
}

// Descriptor describes one fire element.
//
// Type is kept as the raw tag string; mapping it to an element kind (and
// deciding what to do with unknown tags) is up to the show.
type Descriptor struct {
	Type     string  `xml:"type,attr" yaml:"type"`
	Colour   string  `xml:"colour,attr" yaml:"colour"`
	Begin    int     `xml:"begin,attr" yaml:"begin"`       // start delay (ms)
	Duration int     `xml:"duration,attr" yaml:"duration"` // active phase length (ms)
	Position Vector  `xml:"Position" yaml:"position"`
	Velocity *Vector `xml:"Velocity" yaml:"velocity,omitempty"` // projectiles only, units per second
}

// Vector is an integer pair. Positions are offsets from a canvas-relative
// origin (horizontal centre, bottom edge).
type Vector struct {
	X int `xml:"x,attr" yaml:"x"`
	Y int `xml:"y,attr" yaml:"y"`
}

// BeginDelay returns the start delay.
func (d Descriptor) BeginDelay() time.Duration {
	return time.Duration(d.Begin) * time.Millisecond
}

// ActiveDuration returns the active phase length.
func (d Descriptor) ActiveDuration() time.Duration {
	return time.Duration(d.Duration) * time.Millisecond
}
