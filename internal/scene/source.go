package scene

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gcardoso89/fireworks-canvas/pkg/embedded"
)

// maxSceneSize bounds how much of a remote scene is read.
const maxSceneSize = 4 << 20

// Source provides the descriptors of a scene. Load is the single blocking
// operation of the show and is called once.
type Source interface {
	Load(ctx context.Context) ([]Descriptor, error)
	String() string
}

// NewSource returns the source for location: http(s) URLs are fetched,
// "data/..." paths are read from the embedded data when present, anything
// else from the filesystem.
func NewSource(location string, timeout time.Duration) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{URL: location, Client: &http.Client{Timeout: timeout}}
	}
	return &FileSource{Path: location}
}

// FileSource reads a scene from the embedded data or the filesystem.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) ([]Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if embedded.Exists(s.Path) {
		data, err = embedded.ReadFile(s.Path)
	} else {
		data, err = os.ReadFile(s.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", s.Path, err)
	}

	descriptors, err := Parse(data, DetectFormat(s.Path, data))
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Path, err)
	}
	return descriptors, nil
}

func (s *FileSource) String() string {
	return s.Path
}

// HTTPSource fetches a scene over HTTP(S).
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Load implements Source.
func (s *HTTPSource) Load(ctx context.Context) ([]Descriptor, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid scene URL %s: %w", s.URL, err)
	}
	req.Header.Set("Accept", "application/xml, text/xml, application/yaml, */*")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scene %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch scene %s: unexpected status %s", s.URL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSceneSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", s.URL, err)
	}

	descriptors, err := Parse(data, s.format(resp, data))
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.URL, err)
	}
	return descriptors, nil
}

// format prefers the URL extension, then the content type, then sniffing.
func (s *HTTPSource) format(resp *http.Response, data []byte) Format {
	name := s.URL
	if u, err := url.Parse(s.URL); err == nil {
		name = u.Path
	}
	if strings.Contains(name, ".") {
		return DetectFormat(name, data)
	}
	ct := resp.Header.Get("Content-Type")
	switch {
	case strings.Contains(ct, "xml"):
		return FormatXML
	case strings.Contains(ct, "yaml"):
		return FormatYAML
	}
	return DetectFormat("", data)
}

func (s *HTTPSource) String() string {
	return s.URL
}

// StaticSource serves descriptors that are already in memory.
type StaticSource struct {
	Name        string
	Descriptors []Descriptor
	Err         error
}

// Load implements Source.
func (s *StaticSource) Load(ctx context.Context) ([]Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]Descriptor, len(s.Descriptors))
	copy(out, s.Descriptors)
	return out, nil
}

func (s *StaticSource) String() string {
	if s.Name == "" {
		return "static"
	}
	return s.Name
}
