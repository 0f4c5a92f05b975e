package config

import (
	"os"
	"path/filepath"
	"testing"

	utils "github.com/minaorangina/hanabi/internal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"HANABI_PLAYERS", "HANABI_HAND_SIZE", "HANABI_HINTS", "HANABI_LIVES", "HANABI_SEED", "HANABI_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		c, err := Load()
		utils.AssertNoError(t, err)

		assert.Equal(t, &Config{NumPlayers: 3, HandSize: 5, NumHints: 8, NumLives: 3, LogLevel: "info"}, c)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HANABI_PLAYERS", "4")
		t.Setenv("HANABI_HAND_SIZE", "4")
		t.Setenv("HANABI_SEED", "12")
		t.Setenv("HANABI_LOG_LEVEL", "debug")

		c, err := Load()
		utils.AssertNoError(t, err)

		assert.Equal(t, 4, c.NumPlayers)
		assert.Equal(t, 4, c.HandSize)
		assert.Equal(t, int64(12), c.Seed)
		assert.Equal(t, logrus.DebugLevel, c.Logger().GetLevel())
	})

	t.Run("env file fills in unset variables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HANABI_LIVES", "1")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("HANABI_HINTS=2\nHANABI_LIVES=9\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("HANABI_HINTS") })

		c, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
		utils.AssertNoError(t, err)

		assert.Equal(t, 2, c.NumHints)
		assert.Equal(t, 1, c.NumLives)
	})

	t.Run("bad values fail", func(t *testing.T) {
		cases := []struct {
			key, value string
		}{
			{"HANABI_PLAYERS", "lots"},
			{"HANABI_HINTS", "8.5"},
			{"HANABI_SEED", "not-a-number"},
		}

		for _, c := range cases {
			t.Run(c.key, func(t *testing.T) {
				clearEnv(t)
				t.Setenv(c.key, c.value)

				cfg, err := Load()
				utils.AssertErrored(t, err)
				assert.Nil(t, cfg)
			})
		}
	})

	t.Run("bad log level fails", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HANABI_LOG_LEVEL", "loud")

		_, err := Load()
		utils.AssertErrored(t, err)
	})
}

func TestConfigOptions(t *testing.T) {
	c := &Config{NumPlayers: 2, HandSize: 5, NumHints: 8, NumLives: 3, Seed: 5}
	logger := logrus.New()

	opts := c.Options(logger)
	assert.Equal(t, 2, opts.NumPlayers)
	assert.Equal(t, 5, opts.HandSize)
	assert.Equal(t, 8, opts.NumHints)
	assert.Equal(t, 3, opts.NumLives)
	assert.Equal(t, logger, opts.Logger)

	t.Run("seeded random source repeats", func(t *testing.T) {
		assert.Equal(t, c.Rand().Int63(), c.Rand().Int63())
	})
}
