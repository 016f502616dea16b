package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/cli"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/simulate"
)

// SimulateCmd plays many rounds non-interactively with a dealer-mimic
// player policy and reports the observed house edge.
type SimulateCmd struct {
	Rounds   int   `short:"n" help:"Number of rounds to simulate" default:"100000"`
	Workers  int   `short:"w" help:"Parallel workers (0 = GOMAXPROCS)"`
	Seed     int64 `help:"Simulation seed (0 = derive from time)"`
	StandsAt int   `help:"Dealer stand threshold" default:"17"`
	HitBelow int   `help:"Player draws while below this total (0 = same as dealer)"`
	Debug    bool  `help:"Enable debug logging"`
}

// Run executes the simulation
func (s *SimulateCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "simulate",
	})
	if s.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if s.StandsAt == 0 {
		s.StandsAt = game.DealerStandsAt
	}

	start := time.Now()
	results, err := simulate.Run(simulate.Config{
		Rounds:   s.Rounds,
		Workers:  s.Workers,
		Seed:     seed,
		StandsAt: s.StandsAt,
		HitBelow: s.HitBelow,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	elapsed := time.Since(start)

	fmt.Println(cli.HeaderStyle.Render(" Simulation results "))
	fmt.Printf("Rounds:     %d (%.0f rounds/sec)\n", results.Rounds, float64(results.Rounds)/elapsed.Seconds())
	fmt.Printf("Wins:       %d\n", results.Wins)
	fmt.Printf("Losses:     %d\n", results.Losses)
	fmt.Printf("Win rate:   %.2f%%\n", results.WinRate()*100)
	fmt.Printf("House edge: %.2f%%\n", results.HouseEdge()*100)
	return nil
}
