package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/harness"
)

func TestBuildSeatsConstructsOneBotPerSeat(t *testing.T) {
	cfg := config.DefaultTournamentConfig()
	logger := zerolog.Nop()

	seats, err := buildSeats(cfg, &logger)
	require.NoError(t, err)
	assert.Len(t, seats, len(cfg.Seats))
}

func TestBuildSeatsRejectsUnknownStrategy(t *testing.T) {
	cfg := config.DefaultTournamentConfig()
	cfg.Seats[0].Strategy = "bluffmaster9000"
	logger := zerolog.Nop()

	_, err := buildSeats(cfg, &logger)
	assert.Error(t, err)
}

func TestBuildSupervisorDefaultsToUnrestricted(t *testing.T) {
	cfg := config.DefaultTournamentConfig()

	sup, cleanup, err := buildSupervisor(cfg, false)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, harness.Unrestricted, sup.Mode)
}

func TestBlindsScheduleConvertsEveryConfiguredLevel(t *testing.T) {
	cfg := config.DefaultTournamentConfig()

	schedule := blindsSchedule(cfg)
	require.Len(t, schedule, len(cfg.Blinds))
	for i, lvl := range cfg.Blinds {
		assert.Equal(t, lvl.Round, schedule[i].Round)
		assert.Equal(t, lvl.SmallBlind, schedule[i].SmallBlind)
		assert.Equal(t, lvl.BigBlind, schedule[i].BigBlind)
	}
}
