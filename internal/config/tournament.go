package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// TournamentConfig is the HCL-decoded description of a tournament the
// launcher starts: its starting stack/blinds and the seats to fill.
type TournamentConfig struct {
	Tournament TournamentSettings `hcl:"tournament,block"`
	Blinds     []BlindLevelConfig `hcl:"blind_level,block"`
	Seats      []SeatConfig       `hcl:"seat,block"`
}

// TournamentSettings is the tournament-wide configuration block.
type TournamentSettings struct {
	Seed          int64  `hcl:"seed,optional"`
	StartingStack int    `hcl:"starting_stack,optional"`
	IllegalLog    string `hcl:"illegal_log,optional"`
	ExecLog       string `hcl:"exec_log,optional"`
	Restricted    bool   `hcl:"restricted,optional"`
	TimeLimitMS   int64  `hcl:"time_limit_ms,optional"`
	MemoryLimitMB int64  `hcl:"memory_limit_mb,optional"`
}

// BlindLevelConfig is one entry of the blinds schedule block.
type BlindLevelConfig struct {
	Round      int `hcl:"round"`
	SmallBlind int `hcl:"small_blind"`
	BigBlind   int `hcl:"big_blind"`
}

// SeatConfig names one bot to seat at the table.
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
}

// DefaultTournamentConfig is used when no config file is given.
func DefaultTournamentConfig() *TournamentConfig {
	return &TournamentConfig{
		Tournament: TournamentSettings{
			Seed:          1,
			StartingStack: 1000,
			IllegalLog:    "illegal_moves.log",
			ExecLog:       "bot_execution.log",
		},
		Blinds: []BlindLevelConfig{
			{Round: 0, SmallBlind: 10, BigBlind: 20},
		},
		Seats: []SeatConfig{
			{Name: "seat-0", Strategy: "folding"},
			{Name: "seat-1", Strategy: "calling-station"},
		},
	}
}

// Load reads a tournament config from an HCL file, or returns
// DefaultTournamentConfig if filename does not exist.
func Load(filename string) (*TournamentConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultTournamentConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg TournamentConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Tournament.StartingStack == 0 {
		cfg.Tournament.StartingStack = 1000
	}
	if cfg.Tournament.IllegalLog == "" {
		cfg.Tournament.IllegalLog = "illegal_moves.log"
	}
	if cfg.Tournament.ExecLog == "" {
		cfg.Tournament.ExecLog = "bot_execution.log"
	}
	if len(cfg.Blinds) == 0 {
		cfg.Blinds = []BlindLevelConfig{{Round: 0, SmallBlind: 10, BigBlind: 20}}
	}
	return &cfg, nil
}

// Validate checks the config is complete enough to seat a table.
func (c *TournamentConfig) Validate() error {
	if len(c.Seats) < 2 {
		return fmt.Errorf("tournament requires at least 2 seats, got %d", len(c.Seats))
	}
	if c.Tournament.StartingStack <= 0 {
		return fmt.Errorf("starting_stack must be positive")
	}
	for _, seat := range c.Seats {
		if !validStrategies[seat.Strategy] {
			return fmt.Errorf("seat %s: unknown strategy %q", seat.Name, seat.Strategy)
		}
	}
	return nil
}

var validStrategies = map[string]bool{
	"folding":         true,
	"calling-station": true,
	"random":          true,
	"aggressive":      true,
	"equity":          true,
	"percentile":      true,
}
