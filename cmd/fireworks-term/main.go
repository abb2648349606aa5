// Package main plays the fireworks show in a terminal.
//
// Usage:
//
//	go run ./cmd/fireworks-term [flags]
//
// Flags:
//
//	--config <path>    Show configuration (default data/config.yaml)
//	--scene <source>   Scene file or http(s) URL, overrides the configuration
//	--cell <w>x<h>     Canvas units per terminal cell (default 8x16)
//	--verbose          Log to stderr after exit
//
// Controls:
//
//	Q/Escape/Ctrl-C   - Quit
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gcardoso89/fireworks-canvas/internal/scene"
	"github.com/gcardoso89/fireworks-canvas/pkg/canvas"
	"github.com/gcardoso89/fireworks-canvas/pkg/config"
	"github.com/gcardoso89/fireworks-canvas/pkg/fireworks"
	"github.com/gcardoso89/fireworks-canvas/pkg/timing"
)

const frameDuration = time.Second / 60

var (
	configFlag  = flag.String("config", config.DefaultConfigPath, "Show configuration file")
	sceneFlag   = flag.String("scene", "", "Scene file or http(s) URL (overrides the configuration)")
	cellFlag    = flag.String("cell", fmt.Sprintf("%dx%d", canvas.DefaultCellWidth, canvas.DefaultCellHeight), "Canvas units per terminal cell, WxH")
	verboseFlag = flag.Bool("verbose", false, "Print the log after exit")
)

func main() {
	flag.Parse()

	// The terminal belongs to the show; log lines are buffered and printed
	// after the screen is released.
	var logBuf bytes.Buffer
	if *verboseFlag {
		log.SetOutput(&logBuf)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprint(os.Stderr, logBuf.String())
		fmt.Fprintf(os.Stderr, "Fireworks Show can't start: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprint(os.Stderr, logBuf.String())
}

func run() error {
	var cellW, cellH float64
	if _, err := fmt.Sscanf(*cellFlag, "%fx%f", &cellW, &cellH); err != nil {
		return fmt.Errorf("invalid --cell %q: %w", *cellFlag, err)
	}

	cfg, err := config.LoadShowConfig(*configFlag)
	if err != nil {
		return err
	}
	if *sceneFlag != "" {
		cfg.Scene = *sceneFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()

	term := canvas.NewTerminal(screen, cellW, cellH)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	show := fireworks.NewShow(term, timing.NewSystemClock(), rand.New(rand.NewSource(seed)),
		fireworks.OptionsFromConfig(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()
	if err := show.Load(ctx, scene.NewSource(cfg.Scene, cfg.FetchTimeout)); err != nil {
		return err
	}
	defer show.Stop()

	loop(screen, term, show)
	return nil
}

// loop steps the show at 60 Hz until the user quits.
func loop(screen tcell.Screen, term *canvas.Terminal, show *fireworks.Show) {
	events := make(chan tcell.Event, 10)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
					return
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			show.Step()
			term.Present()
		}
	}
}
