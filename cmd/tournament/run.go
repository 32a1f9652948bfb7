package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/holdem-engine/internal/bots"
	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/engine"
	"github.com/lox/holdem-engine/internal/harness"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/internal/state"
)

// RunCmd seats a tournament from an HCL config file and plays it to
// completion, one hand at a time, until a single seat remains.
type RunCmd struct {
	Config     string `kong:"default='tournament.hcl',help='Path to the tournament HCL config file'"`
	MaxHands   int    `kong:"default='10000',help='Safety cap on hands played before giving up'"`
	Restricted bool   `kong:"help='Supervise every bot call with a deadline and memory ceiling'"`
}

func (c *RunCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading tournament config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid tournament config: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Str("component", "tournament").Logger()

	seatBots, err := buildSeats(cfg, &logger)
	if err != nil {
		return err
	}

	supervisor, cleanup, err := buildSupervisor(cfg, c.Restricted)
	if err != nil {
		return err
	}
	defer cleanup()

	tourn := engine.NewTournament(cfg.Tournament.Seed, seatBots, cfg.Tournament.StartingStack,
		engine.WithBlindsSchedule(blindsSchedule(cfg)),
		engine.WithSupervisor(supervisor),
	)
	defer func() {
		if err := tourn.Close(); err != nil {
			logger.Warn().Err(err).Msg("error closing bots")
		}
	}()

	ctx := context.Background()
	for hands := 0; hands < c.MaxHands && !tourn.Finished(); hands++ {
		record, err := tourn.PlayHand(ctx)
		if err != nil {
			return fmt.Errorf("hand %d: %w", hands, err)
		}
		logger.Info().Str("hand_id", record.HandID).Int("hand", hands).Msg("hand complete")
	}

	if seat, ok := tourn.Winner(); ok {
		logger.Info().Int("seat", seat).Msg("tournament complete")
	} else {
		logger.Warn().Msg("tournament stopped before a winner emerged (max hands reached)")
	}
	return nil
}

func buildSeats(cfg *config.TournamentConfig, logger *zerolog.Logger) ([]bots.Bot, error) {
	seatBots := make([]bots.Bot, 0, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		seatSeed := cfg.Tournament.Seed + int64(i) + 1
		b, err := bots.New(seat.Strategy, randutil.New(seatSeed), seatSeed)
		if err != nil {
			return nil, fmt.Errorf("seat %s: %w", seat.Name, err)
		}
		logger.Debug().Str("seat", seat.Name).Str("strategy", seat.Strategy).Msg("seated bot")
		seatBots = append(seatBots, b)
	}
	return seatBots, nil
}

func buildSupervisor(cfg *config.TournamentConfig, restricted bool) (*harness.Supervisor, func(), error) {
	sup := &harness.Supervisor{Mode: harness.Unrestricted}
	if !restricted && !cfg.Tournament.Restricted {
		return sup, func() {}, nil
	}

	illegalFile, err := os.OpenFile(cfg.Tournament.IllegalLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening illegal moves log: %w", err)
	}
	execFile, err := os.OpenFile(cfg.Tournament.ExecLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		illegalFile.Close()
		return nil, nil, fmt.Errorf("opening bot execution log: %w", err)
	}

	illegalLog := zerolog.New(illegalFile).With().Timestamp().Logger()
	execLog := zerolog.New(execFile).With().Timestamp().Logger()

	timeLimit := time.Duration(cfg.Tournament.TimeLimitMS) * time.Millisecond
	if timeLimit <= 0 {
		timeLimit = 100 * time.Millisecond
	}

	sup.Mode = harness.Restricted
	sup.TimeLimit = timeLimit
	sup.MemoryLimitBytes = uint64(cfg.Tournament.MemoryLimitMB) * 1024 * 1024
	sup.IllegalLog = &illegalLog
	sup.ExecLog = &execLog

	return sup, func() {
		illegalFile.Close()
		execFile.Close()
	}, nil
}

func blindsSchedule(cfg *config.TournamentConfig) []state.BlindLevel {
	schedule := make([]state.BlindLevel, len(cfg.Blinds))
	for i, lvl := range cfg.Blinds {
		schedule[i] = state.BlindLevel{Round: lvl.Round, SmallBlind: lvl.SmallBlind, BigBlind: lvl.BigBlind}
	}
	return schedule
}
