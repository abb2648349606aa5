// Package main renders a fireworks show headlessly to numbered PNG frames.
//
// The show runs on a virtual clock advanced by exactly one frame (1/60 s)
// per step, so a given seed always produces the same frames.
//
// Usage:
//
//	go run ./cmd/fireworks-render [flags]
//
// Flags:
//
//	--config <path>   Show configuration (default data/config.yaml)
//	--scene <source>  Scene file or http(s) URL, overrides the configuration
//	--frames <n>      Number of frames to simulate (default 600)
//	--every <k>       Write every k-th frame (default 1)
//	--size <w>x<h>    Canvas size (default: configured window size or 800x600)
//	--seed <n>        Random seed (default: configured seed or 1)
//	--out <dir>       Output directory (default frames)
//	--verbose         Enable verbose logging
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

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
	framesFlag  = flag.Int("frames", 600, "Number of frames to simulate")
	everyFlag   = flag.Int("every", 1, "Write every k-th frame")
	sizeFlag    = flag.String("size", "", "Canvas size WxH (default: configured window size or 800x600)")
	seedFlag    = flag.Int64("seed", 0, "Random seed (default: configured seed or 1)")
	outFlag     = flag.String("out", "frames", "Output directory")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fireworks Show can't start: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *everyFlag < 1 {
		return fmt.Errorf("--every must be at least 1, got %d", *everyFlag)
	}

	cfg, err := config.LoadShowConfig(*configFlag)
	if err != nil {
		return err
	}
	if *sceneFlag != "" {
		cfg.Scene = *sceneFlag
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	if *sizeFlag != "" {
		if _, err := fmt.Sscanf(*sizeFlag, "%dx%d", &width, &height); err != nil {
			return fmt.Errorf("invalid --size %q: %w", *sizeFlag, err)
		}
	}
	if width <= 0 || height <= 0 {
		width, height = 800, 600
	}

	seed := *seedFlag
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = 1
	}

	raster := canvas.NewRaster(width, height, color.Black)
	clock := timing.NewManualClock(time.Unix(0, 0))
	show := fireworks.NewShow(raster, clock, rand.New(rand.NewSource(seed)), fireworks.OptionsFromConfig(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()
	if err := show.Load(ctx, scene.NewSource(cfg.Scene, cfg.FetchTimeout)); err != nil {
		return err
	}
	defer show.Stop()

	if err := os.MkdirAll(*outFlag, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	written := 0
	for i := 0; i < *framesFlag; i++ {
		show.Step()
		clock.Advance(frameDuration)

		if i%*everyFlag != 0 {
			continue
		}
		path := filepath.Join(*outFlag, fmt.Sprintf("frame_%05d.png", i))
		if err := writeFrame(raster, path); err != nil {
			return err
		}
		written++
	}

	fmt.Printf("Wrote %d frame(s) of %dx%d to %s (%d show cycle(s) completed)\n",
		written, width, height, *outFlag, show.Cycles())
	return nil
}

func writeFrame(raster *canvas.Raster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := raster.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
