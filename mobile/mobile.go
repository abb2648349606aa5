//go:build mobile

// Package mobile provides the ebitenmobile binding.
//
// This file is only compiled with -tags mobile:
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gcardoso89.fireworks -o build/android/fireworks.aar -v ./mobile
//
//	# iOS (macOS only)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Fireworks.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gcardoso89/fireworks-canvas/pkg/app"
	"github.com/gcardoso89/fireworks-canvas/pkg/embedded"
)

func init() {
	// dataFS is declared in embed.go
	embedded.Init(dataFS)

	// The configured window size is 0 (monitor size) by default; on mobile
	// Layout falls back to a fixed logical canvas that Ebitengine scales.
	fireworksApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	mobile.SetGame(fireworksApp)
}

// Dummy is an empty exported function so ebitenmobile recognizes the package.
func Dummy() {}
