package fireworks

import (
	"github.com/gcardoso89/fireworks-canvas/pkg/components"
	"github.com/gcardoso89/fireworks-canvas/pkg/config"
)

// Options tunes the simulation. The zero value is not usable; start from
// DefaultOptions or OptionsFromConfig.
type Options struct {
	FountainParticles int
	FountainRadius    float64
	CeilingJitter     float64

	RocketParticles int
	RocketRadius    float64
	TopClamp        float64
	Drag            float64
	Gravity         float64
	FadeStep        float64
	Life            components.LifeSpan

	VelocityDivisor float64

	// Strict rejects scenes that contain unknown element types.
	Strict bool
}

// DefaultOptions returns the built-in tuning.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultShowConfig())
}

// OptionsFromConfig converts a loaded show configuration.
func OptionsFromConfig(cfg *config.ShowConfig) Options {
	return Options{
		FountainParticles: cfg.Fountain.Particles,
		FountainRadius:    cfg.Fountain.Radius,
		CeilingJitter:     cfg.Fountain.CeilingJitter,

		RocketParticles: cfg.Rocket.Particles,
		RocketRadius:    cfg.Rocket.Radius,
		TopClamp:        cfg.Rocket.TopClamp,
		Drag:            cfg.Rocket.Drag,
		Gravity:         cfg.Rocket.Gravity,
		FadeStep:        cfg.Rocket.FadeStep,
		Life: components.LifeSpan{
			FadeAfterMin: cfg.Rocket.LifeMin,
			FadeAfterMax: cfg.Rocket.LifeMax,
			FadeOut:      cfg.Rocket.FadeOut,
		},

		VelocityDivisor: cfg.VelocityDivisor,
		Strict:          cfg.Strict,
	}
}
