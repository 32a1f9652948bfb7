// Package config provides the tournament launcher's configuration: an HCL
// file describing the table and its seats, plus the environment-variable
// contract each bot subprocess reads at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names a bot subprocess reads at startup.
const (
	// EnvSeed provides the tournament's random seed, for deterministic replay.
	EnvSeed = "POKERFORBOTS_SEED"

	// EnvBotID provides a unique identifier for the bot instance.
	EnvBotID = "POKERFORBOTS_BOT_ID"

	// EnvTimeLimitMS is the BotHarness's restricted-mode decision deadline.
	EnvTimeLimitMS = "POKERFORBOTS_TIME_LIMIT_MS"

	// EnvMemoryLimitMB is the BotHarness's restricted-mode memory ceiling.
	EnvMemoryLimitMB = "POKERFORBOTS_MEMORY_LIMIT_MB"
)

// BotConfig holds the configuration a bot subprocess reads from its
// environment when the harness spawns it in Restricted mode.
type BotConfig struct {
	Seed             int64
	BotID            string
	TimeLimitMS      int64
	MemoryLimitMB    int64
}

// FromEnv parses a BotConfig from the process environment. Every field is
// optional; zero values fall back to the harness's own defaults.
func FromEnv() (*BotConfig, error) {
	cfg := &BotConfig{}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	cfg.BotID = os.Getenv(EnvBotID)

	if v := os.Getenv(EnvTimeLimitMS); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvTimeLimitMS, err)
		}
		cfg.TimeLimitMS = ms
	}

	if v := os.Getenv(EnvMemoryLimitMB); v != "" {
		mb, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvMemoryLimitMB, err)
		}
		cfg.MemoryLimitMB = mb
	}

	return cfg, nil
}
