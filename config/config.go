// Package config reads game settings from the environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/minaorangina/hanabi/game"
	"github.com/sirupsen/logrus"
)

// Config holds everything needed to start a game
type Config struct {
	NumPlayers int    `env:"HANABI_PLAYERS,default=3"`
	HandSize   int    `env:"HANABI_HAND_SIZE,default=5"`
	NumHints   int    `env:"HANABI_HINTS,default=8"`
	NumLives   int    `env:"HANABI_LIVES,default=3"`
	Seed       int64  `env:"HANABI_SEED"`
	LogLevel   string `env:"HANABI_LOG_LEVEL,default=info"`
}

// Load reads envFiles into the environment, without overriding variables
// that are already set, then decodes the environment. Missing files are skipped.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var c Config
	if err := envdecode.StrictDecode(&c); err != nil && !noFieldsSet(err) {
		return nil, fmt.Errorf("decoding environment: %w", err)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return nil, err
	}

	return &c, nil
}

func noFieldsSet(err error) bool {
	return errors.Is(err, envdecode.ErrInvalidTarget) || errors.Is(err, envdecode.ErrNoTargetFieldsAreSet)
}

// Options returns the game options, logging to logger
func (c *Config) Options(logger logrus.FieldLogger) game.Options {
	return game.Options{
		NumPlayers: c.NumPlayers,
		HandSize:   c.HandSize,
		NumHints:   c.NumHints,
		NumLives:   c.NumLives,
		Logger:     logger,
	}
}

// Rand returns the random source for the deck shuffle.
// A zero seed means a different game every run.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Logger returns a logger at the configured level
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
