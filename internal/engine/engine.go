package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
)

type engine struct {
	roller dice.Roller
}

// Config configures the engine. Roller defaults to the toolkit's crypto roller.
type Config struct {
	Roller dice.Roller
}

// Validate fills defaults
func (cfg *Config) Validate() error {
	if cfg.Roller == nil {
		cfg.Roller = dice.DefaultRoller
	}
	return nil
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{roller: cfg.Roller}, nil
}
