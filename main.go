// Command fireworks plays a looping fireworks show in a window sized to the
// monitor.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	-config <path>   Show configuration (default: embedded data/config.yaml)
//	-scene <source>  Scene file, embedded data/ path or http(s) URL
//	-verbose         Enable log output
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gcardoso89/fireworks-canvas/pkg/app"
	"github.com/gcardoso89/fireworks-canvas/pkg/embedded"
)

var (
	configFlag  = flag.String("config", "", "Show configuration file (default: embedded data/config.yaml)")
	sceneFlag   = flag.String("scene", "", "Scene source: file, embedded data/ path or http(s) URL")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	screenWidth, screenHeight := ebiten.Monitor().Size()

	fireworksApp, err := app.NewApp(app.Config{
		Verbose:      *verboseFlag,
		ConfigPath:   *configFlag,
		Scene:        *sceneFlag,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	width, height := fireworksApp.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(fireworksApp.ShowConfig().Window.Title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(fireworksApp); err != nil {
		log.Fatal(err)
	}
}
