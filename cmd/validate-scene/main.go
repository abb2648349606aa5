// Package main validates a fireworks scene file and reports every fire
// element it describes.
//
// Usage:
//
//	go run ./cmd/validate-scene [--strict] [scene]
//
// The scene defaults to data/fireworks.xml and may be a file path or an
// http(s) URL. Unknown element types are warnings, or errors with --strict.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gcardoso89/fireworks-canvas/internal/scene"
	"github.com/gcardoso89/fireworks-canvas/pkg/config"
	"github.com/gcardoso89/fireworks-canvas/pkg/fireworks"
)

var (
	strictFlag  = flag.Bool("strict", false, "Treat unknown element types as errors")
	timeoutFlag = flag.Duration("timeout", config.DefaultFetchTimeout, "Fetch timeout for URLs")
)

func main() {
	flag.Parse()

	location := config.DefaultScenePath
	if flag.NArg() > 0 {
		location = flag.Arg(0)
	}

	src := scene.NewSource(location, *timeoutFlag)
	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	descriptors, err := src.Load(ctx)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", src, err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s: %d fire element(s)\n", src, len(descriptors))

	opts := fireworks.DefaultOptions()
	rng := rand.New(rand.NewSource(1))

	errorsFound, warnings := 0, 0
	for i, d := range descriptors {
		_, err := fireworks.NewElement(d, 800, 600, opts, rng)
		switch {
		case err == nil:
			fmt.Printf("✅ #%d %-8s colour=%s begin=%v duration=%v\n", i, d.Type, d.Colour, d.BeginDelay(), d.ActiveDuration())
		case errors.Is(err, fireworks.ErrUnknownElementType) && !*strictFlag:
			fmt.Printf("⚠️  #%d skipped: %v\n", i, err)
			warnings++
		default:
			fmt.Printf("❌ #%d: %v\n", i, err)
			errorsFound++
		}
	}

	if errorsFound > 0 {
		fmt.Printf("❌ %d error(s), %d warning(s)\n", errorsFound, warnings)
		os.Exit(1)
	}
	if warnings == len(descriptors) {
		fmt.Printf("❌ no playable fire elements\n")
		os.Exit(1)
	}
	fmt.Printf("✅ scene is valid (%d warning(s)), full cycle ≥ %v\n", warnings, longestCycle(descriptors))
}

// longestCycle is the latest scheduled stop of any element, a lower bound on
// the length of one show cycle.
func longestCycle(descriptors []scene.Descriptor) time.Duration {
	var longest time.Duration
	for _, d := range descriptors {
		if end := d.BeginDelay() + d.ActiveDuration(); end > longest {
			longest = end
		}
	}
	return longest
}
