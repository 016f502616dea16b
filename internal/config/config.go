package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	Game GameSettings
	Log  LogSettings
}

// GameSettings contains the rules-engine tunables
type GameSettings struct {
	StartingCredit int   `hcl:"starting_credit,optional"`
	DealerStandsAt int   `hcl:"dealer_stands_at,optional"`
	Seed           int64 `hcl:"seed,optional"`
}

// LogSettings contains debug logging configuration. Logs go to a file so
// they never interleave with the interactive display.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// fileConfig mirrors Config for HCL decoding; pointer blocks so either
// block may be omitted from the file entirely.
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	Log  *LogSettings  `hcl:"log,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			StartingCredit: 100,
			DealerStandsAt: 17,
		},
		Log: LogSettings{
			Level: "info",
			File:  "blackjack.log",
		},
	}
}

// Load loads configuration from an HCL file. A missing file is not an
// error: the defaults apply.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.Game != nil {
		if raw.Game.StartingCredit != 0 {
			cfg.Game.StartingCredit = raw.Game.StartingCredit
		}
		if raw.Game.DealerStandsAt != 0 {
			cfg.Game.DealerStandsAt = raw.Game.DealerStandsAt
		}
		cfg.Game.Seed = raw.Game.Seed
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			cfg.Log.Level = raw.Log.Level
		}
		if raw.Log.File != "" {
			cfg.Log.File = raw.Log.File
		}
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.StartingCredit <= 0 {
		return fmt.Errorf("starting credit must be positive, got %d", c.Game.StartingCredit)
	}

	// The dealer must be able to stand on some live total
	if c.Game.DealerStandsAt < 2 || c.Game.DealerStandsAt > 21 {
		return fmt.Errorf("dealer stand threshold must be between 2 and 21, got %d", c.Game.DealerStandsAt)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
