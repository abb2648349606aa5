// Package app wraps the fireworks show as an ebiten.Game.
//
// Initialization lives here rather than in package main so the desktop
// entry point (main.go) and the mobile binding (mobile/mobile.go) share it.
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gcardoso89/fireworks-canvas/internal/scene"
	"github.com/gcardoso89/fireworks-canvas/pkg/canvas"
	"github.com/gcardoso89/fireworks-canvas/pkg/config"
	"github.com/gcardoso89/fireworks-canvas/pkg/fireworks"
	"github.com/gcardoso89/fireworks-canvas/pkg/game"
	"github.com/gcardoso89/fireworks-canvas/pkg/scenes"
	"github.com/gcardoso89/fireworks-canvas/pkg/timing"
)

// Fallback canvas size when neither the config nor the host provides one.
const (
	FallbackWidth  = 800
	FallbackHeight = 600
)

// Config defines the application startup options.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// ConfigPath is the show configuration file; empty means the embedded
	// default.
	ConfigPath string
	// Scene overrides the scene location of the configuration.
	Scene string
	// ScreenWidth and ScreenHeight are the host viewport size, used when the
	// configuration leaves the window size at 0.
	ScreenWidth  int
	ScreenHeight int
}

// App implements ebiten.Game.
type App struct {
	sceneManager *game.SceneManager
	showConfig   *config.ShowConfig
	width        int
	height       int
	verbose      bool
}

// NewApp loads the configuration and prepares the show.
//
// embedded.Init must be called before this function.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	showConfig, err := config.LoadShowConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("show config: %w", err)
	}
	log.Printf("[Config] Loaded show config from %s", configPath)

	if cfg.Scene != "" {
		showConfig.Scene = cfg.Scene
	}

	width, height := ResolveSize(showConfig.Window, cfg.ScreenWidth, cfg.ScreenHeight)
	log.Printf("[App] Canvas %dx%d", width, height)

	seed := showConfig.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	frame := canvas.NewFrame(width, height)
	show := fireworks.NewShow(frame, timing.NewSystemClock(), rand.New(rand.NewSource(seed)),
		fireworks.OptionsFromConfig(showConfig))
	source := scene.NewSource(showConfig.Scene, showConfig.FetchTimeout)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewLoadingScene(sceneManager, show, frame, source, showConfig.FetchTimeout))

	return &App{
		sceneManager: sceneManager,
		showConfig:   showConfig,
		width:        width,
		height:       height,
		verbose:      cfg.Verbose,
	}, nil
}

// ResolveSize picks the canvas size: the configured window size, else the
// host viewport, else the fallback.
func ResolveSize(window config.WindowConfig, screenWidth, screenHeight int) (int, int) {
	width, height := window.Width, window.Height
	if width == 0 {
		width = screenWidth
	}
	if height == 0 {
		height = screenHeight
	}
	if width <= 0 {
		width = FallbackWidth
	}
	if height <= 0 {
		height = FallbackHeight
	}
	return width, height
}

// Update updates the active scene.
// Called every tick (typically 60 times per second).
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.Stop()
		log.Printf("[App] Window closed")
		return ebiten.Termination
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw draws the active scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout returns the canvas size, fixed at startup.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// ShowConfig returns the loaded show configuration.
func (a *App) ShowConfig() *config.ShowConfig {
	return a.showConfig
}

// GetSceneManager returns the scene manager.
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose reports whether verbose logging is enabled.
func (a *App) IsVerbose() bool {
	return a.verbose
}
