package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gcardoso89/fireworks-canvas/pkg/config"
	"github.com/gcardoso89/fireworks-canvas/pkg/scenes"
)

func TestResolveSize(t *testing.T) {
	tests := []struct {
		name                string
		window              config.WindowConfig
		screenW, screenH    int
		wantWidth, wantHeight int
	}{
		{"configured", config.WindowConfig{Width: 1024, Height: 768}, 1920, 1080, 1024, 768},
		{"viewport", config.WindowConfig{}, 1920, 1080, 1920, 1080},
		{"mixed", config.WindowConfig{Width: 640}, 1920, 1080, 640, 1080},
		{"fallback", config.WindowConfig{}, 0, 0, FallbackWidth, FallbackHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ResolveSize(tt.window, tt.screenW, tt.screenH)
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("ResolveSize() = %dx%d, want %dx%d", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestNewApp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "window:\n  width: 640\n  height: 480\nscene: missing.xml\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	a, err := NewApp(Config{Verbose: true, ConfigPath: path, Scene: "override.xml"})
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}

	if w, h := a.Layout(0, 0); w != 640 || h != 480 {
		t.Errorf("Layout() = %dx%d, want 640x480", w, h)
	}
	if a.ShowConfig().Scene != "override.xml" {
		t.Errorf("Scene = %q, want the override", a.ShowConfig().Scene)
	}
	if _, ok := a.GetSceneManager().GetCurrentScene().(*scenes.LoadingScene); !ok {
		t.Errorf("Expected to start on the loading scene, got %T", a.GetSceneManager().GetCurrentScene())
	}
}

func TestNewAppMissingConfig(t *testing.T) {
	_, err := NewApp(Config{Verbose: true, ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")})
	if err == nil {
		t.Fatal("Expected an error for a missing config file")
	}
}
