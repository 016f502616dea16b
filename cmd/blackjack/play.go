package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack-cli/internal/cli"
	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// PlayCmd runs an interactive session on the terminal
type PlayCmd struct {
	Config  string `short:"c" help:"Path to an HCL config file" default:"blackjack.hcl"`
	Credit  int    `help:"Starting credit (overrides config)"`
	Seed    int64  `help:"Shuffle seed for reproducible games (overrides config)"`
	NoColor bool   `help:"Disable colored output"`
}

// Run starts the interactive game
func (p *PlayCmd) Run() error {
	cfg, err := config.Load(p.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if p.Credit != 0 {
		cfg.Game.StartingCredit = p.Credit
	}
	if p.Seed != 0 {
		cfg.Game.Seed = p.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if p.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Debug logs go to a file so they never tear the interactive display
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logLevel, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
		Level:           logLevel,
	})

	clock := quartz.NewReal()
	seed := cfg.Game.Seed
	rng := randutil.New(seed)
	if seed == 0 {
		rng = randutil.FromTime(clock.Now())
	}
	logger.Info("starting session",
		"credit", cfg.Game.StartingCredit,
		"dealerStandsAt", cfg.Game.DealerStandsAt,
		"seed", seed)

	fmt.Println(cli.HeaderStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Println()

	session := game.NewSession(game.SessionConfig{
		Interactor:     cli.NewPrompter(os.Stdin, os.Stdout),
		Display:        cli.NewRenderer(os.Stdout),
		Shuffle:        deck.RandomShuffle(rng),
		Logger:         logger,
		Clock:          clock,
		StartingCredit: cfg.Game.StartingCredit,
		DealerStandsAt: cfg.Game.DealerStandsAt,
	})

	final := session.Run()
	fmt.Println()
	fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Final credit: %d", final)))
	return nil
}
