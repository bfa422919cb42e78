// Package config loads process configuration from environment variables,
// optionally seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)

var dotenvLoaded sync.Once

// Load fills v from the environment according to its `env` struct tags.
// The first call also loads ./.env when present; variables already set in the
// environment win over the file.
//
//	type Host struct {
//		TickRate int    `env:"BREAKOUT_TICK_RATE" envDefault:"60"`
//		LogFile  string `env:"BREAKOUT_LOG_FILE" envDefault:"breakout.log"`
//	}
func Load[T any](v *T) error {
	dotenvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
