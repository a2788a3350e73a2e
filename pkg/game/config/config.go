// Package config reads the game settings from the environment and the
// command line. Flags win over environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Config holds every runtime setting.
type Config struct {
	Renderer     string        `env:"SOLITAIRE_RENDERER"      envDefault:"tui"`
	Content      string        `env:"SOLITAIRE_CONTENT"`
	Locale       string        `env:"SOLITAIRE_LOCALE"        envDefault:"en"`
	Seed         uint64        `env:"SOLITAIRE_SEED"          envDefault:"0"`
	RecycleFor   time.Duration `env:"SOLITAIRE_RECYCLE_FOR"   envDefault:"4s"`
	CelebrateFor time.Duration `env:"SOLITAIRE_CELEBRATE_FOR" envDefault:"8s"`
	ShareURL     string        `env:"SOLITAIRE_SHARE_URL"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags binds command-line flags to c, using its current values as
// the defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer to use: tui or ebiten")
	fs.StringVar(&c.Content, "content", c.Content, "journey file (.toml, .yaml); empty uses the bundled journeys")
	fs.StringVar(&c.Locale, "locale", c.Locale, "message language")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "shuffle seed; 0 picks a random one")
	fs.DurationVar(&c.RecycleFor, "recycle-for", c.RecycleFor, "how long confetti keeps spawning after a win")
	fs.DurationVar(&c.CelebrateFor, "celebrate-for", c.CelebrateFor, "how long the celebration stays on screen")
	fs.StringVar(&c.ShareURL, "share-url", c.ShareURL, "site link appended to the share text")
}

// Load parses the environment, then args on top of it.
func Load(name string, args []string) (Config, error) {
	cfg, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	if c.Locale == "" {
		return errors.New("locale must not be empty")
	}
	if c.RecycleFor <= 0 || c.CelebrateFor <= 0 {
		return fmt.Errorf("celebration durations must be positive, got %s and %s", c.RecycleFor, c.CelebrateFor)
	}
	if c.RecycleFor > c.CelebrateFor {
		return fmt.Errorf("recycle-for (%s) must not exceed celebrate-for (%s)", c.RecycleFor, c.CelebrateFor)
	}
	return nil
}
