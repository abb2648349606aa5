package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gcardoso89/fireworks-canvas/pkg/embedded"
)

// DefaultConfigPath is the embedded default configuration.
const DefaultConfigPath = "data/config.yaml"

// Defaults of the simulation.
const (
	DefaultScenePath        = "data/fireworks.xml"
	DefaultWindowTitle      = "Fireworks"
	DefaultFountainParticle = 200
	DefaultRocketParticles  = 500
	DefaultParticleRadius   = 2.0
	DefaultCeilingJitter    = 100.0
	DefaultTopClamp         = 20.0
	DefaultDrag             = 0.91
	DefaultGravity          = 4.0
	DefaultFadeStep         = 0.1
	DefaultVelocityDivisor  = 60.0
	DefaultFetchTimeout     = 10 * time.Second
	DefaultLifeMin          = 400 * time.Millisecond
	DefaultLifeMax          = 850 * time.Millisecond
	DefaultFadeOut          = 500 * time.Millisecond
)

// ShowConfig is the application configuration.
type ShowConfig struct {
	Window WindowConfig `yaml:"window"`

	// Scene is a "data/..." embedded path, a file path or an http(s) URL.
	Scene string `yaml:"scene"`
	// FetchTimeout bounds the one-shot scene fetch.
	FetchTimeout time.Duration `yaml:"fetchTimeout"`
	// Seed for particle sampling; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
	// Strict turns unknown element types into a load failure instead of a
	// logged skip.
	Strict bool `yaml:"strict"`
	// VelocityDivisor converts scene velocities (units per second) to
	// units per frame.
	VelocityDivisor float64 `yaml:"velocityDivisor"`

	Fountain FountainConfig `yaml:"fountain"`
	Rocket   RocketConfig   `yaml:"rocket"`
}

// WindowConfig sizes the canvas. Zero width or height means the size of
// the monitor, like a browser viewport.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// FountainConfig tunes fountains.
type FountainConfig struct {
	Particles int `yaml:"particles"`
	// ParticlesSet distinguishes an explicit 0 from a missing value.
	ParticlesSet  bool    `yaml:"-"`
	Radius        float64 `yaml:"radius"`
	CeilingJitter float64 `yaml:"ceilingJitter"`
}

// RocketConfig tunes rockets and their bursts.
type RocketConfig struct {
	Particles    int     `yaml:"particles"`
	ParticlesSet bool    `yaml:"-"`
	Radius       float64 `yaml:"radius"`
	// TopClamp is the height (from the canvas top) at which a rising
	// rocket bursts regardless of its duration.
	TopClamp float64 `yaml:"topClamp"`
	// Drag is the per-frame speed multiplier of burst particles.
	Drag float64 `yaml:"drag"`
	// Gravity is the constant per-frame downward bias of burst particles.
	Gravity  float64 `yaml:"gravity"`
	FadeStep float64 `yaml:"fadeStep"`

	LifeMin time.Duration `yaml:"lifeMin"`
	LifeMax time.Duration `yaml:"lifeMax"`
	FadeOut time.Duration `yaml:"fadeOut"`
}

// rawCounts is used to detect explicitly configured particle counts.
type rawCounts struct {
	Fountain struct {
		Particles *int `yaml:"particles"`
	} `yaml:"fountain"`
	Rocket struct {
		Particles *int `yaml:"particles"`
	} `yaml:"rocket"`
}

// DefaultShowConfig returns the built-in configuration.
func DefaultShowConfig() *ShowConfig {
	cfg := &ShowConfig{}
	applyShowDefaults(cfg)
	return cfg
}

// LoadShowConfig loads the configuration from a YAML file. "data/..." paths
// are read from the embedded data when present.
func LoadShowConfig(path string) (*ShowConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read show config file %s: %w", path, err)
	}

	cfg, err := ParseShowConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid show config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseShowConfig decodes, defaults and validates a YAML configuration.
func ParseShowConfig(data []byte) (*ShowConfig, error) {
	var cfg ShowConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse show config YAML: %w", err)
	}

	var counts rawCounts
	if err := yaml.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("failed to parse show config YAML: %w", err)
	}
	cfg.Fountain.ParticlesSet = counts.Fountain.Particles != nil
	cfg.Rocket.ParticlesSet = counts.Rocket.Particles != nil

	applyShowDefaults(&cfg)

	if err := validateShowConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyShowDefaults fills every missing optional field.
func applyShowDefaults(cfg *ShowConfig) {
	if cfg.Window.Title == "" {
		cfg.Window.Title = DefaultWindowTitle
	}
	if cfg.Scene == "" {
		cfg.Scene = DefaultScenePath
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.VelocityDivisor == 0 {
		cfg.VelocityDivisor = DefaultVelocityDivisor
	}

	// An explicit "particles: 0" is allowed (an empty pool).
	if !cfg.Fountain.ParticlesSet && cfg.Fountain.Particles == 0 {
		cfg.Fountain.Particles = DefaultFountainParticle
	}
	if cfg.Fountain.Radius == 0 {
		cfg.Fountain.Radius = DefaultParticleRadius
	}
	if cfg.Fountain.CeilingJitter == 0 {
		cfg.Fountain.CeilingJitter = DefaultCeilingJitter
	}

	if !cfg.Rocket.ParticlesSet && cfg.Rocket.Particles == 0 {
		cfg.Rocket.Particles = DefaultRocketParticles
	}
	if cfg.Rocket.Radius == 0 {
		cfg.Rocket.Radius = DefaultParticleRadius
	}
	if cfg.Rocket.TopClamp == 0 {
		cfg.Rocket.TopClamp = DefaultTopClamp
	}
	if cfg.Rocket.Drag == 0 {
		cfg.Rocket.Drag = DefaultDrag
	}
	if cfg.Rocket.Gravity == 0 {
		cfg.Rocket.Gravity = DefaultGravity
	}
	if cfg.Rocket.FadeStep == 0 {
		cfg.Rocket.FadeStep = DefaultFadeStep
	}
	if cfg.Rocket.LifeMin == 0 {
		cfg.Rocket.LifeMin = DefaultLifeMin
	}
	if cfg.Rocket.LifeMax == 0 {
		cfg.Rocket.LifeMax = DefaultLifeMax
	}
	if cfg.Rocket.FadeOut == 0 {
		cfg.Rocket.FadeOut = DefaultFadeOut
	}
}

// validateShowConfig checks ranges.
func validateShowConfig(cfg *ShowConfig) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size cannot be negative, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.FetchTimeout < 0 {
		return fmt.Errorf("fetchTimeout cannot be negative, got %v", cfg.FetchTimeout)
	}
	if cfg.VelocityDivisor < 0 {
		return fmt.Errorf("velocityDivisor must be positive, got %v", cfg.VelocityDivisor)
	}
	if cfg.Fountain.Particles < 0 {
		return fmt.Errorf("fountain.particles cannot be negative, got %d", cfg.Fountain.Particles)
	}
	if cfg.Rocket.Particles < 0 {
		return fmt.Errorf("rocket.particles cannot be negative, got %d", cfg.Rocket.Particles)
	}
	if cfg.Fountain.Radius < 0 || cfg.Rocket.Radius < 0 {
		return fmt.Errorf("particle radius cannot be negative")
	}
	if cfg.Rocket.Drag < 0 || cfg.Rocket.Drag > 1 {
		return fmt.Errorf("rocket.drag must be between 0 and 1, got %v", cfg.Rocket.Drag)
	}
	if cfg.Rocket.FadeStep < 0 {
		return fmt.Errorf("rocket.fadeStep cannot be negative, got %v", cfg.Rocket.FadeStep)
	}
	if cfg.Rocket.LifeMin < 0 || cfg.Rocket.LifeMax < cfg.Rocket.LifeMin {
		return fmt.Errorf("rocket life range invalid: lifeMin=%v lifeMax=%v", cfg.Rocket.LifeMin, cfg.Rocket.LifeMax)
	}
	if cfg.Rocket.FadeOut < 0 {
		return fmt.Errorf("rocket.fadeOut cannot be negative, got %v", cfg.Rocket.FadeOut)
	}
	return nil
}
