package scene

import (
	"encoding/xml"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoElements is returned for a scene without any fire element.
var ErrNoElements = errors.New("scene contains no fire elements")

// Format is the encoding of a scene document.
type Format int

const (
	FormatXML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "xml"
}

// DetectFormat picks the encoding from the file name, falling back to
// sniffing the content: documents starting with '<' are XML, anything else
// is YAML.
func DetectFormat(name string, data []byte) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".xml":
		return FormatXML
	case ".yaml", ".yml":
		return FormatYAML
	}
	if strings.HasPrefix(strings.TrimSpace(string(data)), "<") {
		return FormatXML
	}
	return FormatYAML
}

// Parse decodes a scene document and validates every descriptor.
//
// Malformed numeric fields are rejected here so that a bad scene fails at
// load time instead of producing NaN positions mid-show.
func Parse(data []byte, format Format) ([]Descriptor, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
		}
	default:
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse scene XML: %w", err)
		}
	}

	if len(doc.Elements) == 0 {
		return nil, ErrNoElements
	}

	for i := range doc.Elements {
		doc.Elements[i].Type = strings.TrimSpace(doc.Elements[i].Type)
		if err := validateDescriptor(doc.Elements[i]); err != nil {
			return nil, fmt.Errorf("fire element #%d: %w", i, err)
		}
	}

	return doc.Elements, nil
}

// validateDescriptor checks the fields common to every element kind.
// Kind-specific requirements (a rocket needs a velocity) are checked when
// the element is built.
func validateDescriptor(d Descriptor) error {
	if d.Type == "" {
		return fmt.Errorf("type is required")
	}
	if d.Colour == "" {
		return fmt.Errorf("colour is required")
	}
	if d.Begin < 0 {
		return fmt.Errorf("begin cannot be negative, got %d", d.Begin)
	}
	if d.Duration < 0 {
		return fmt.Errorf("duration cannot be negative, got %d", d.Duration)
	}
	return nil
}
