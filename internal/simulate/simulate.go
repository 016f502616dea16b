// Package simulate estimates the house edge of the rules engine by playing
// many non-interactive rounds with a fixed player policy.
package simulate

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Workers  int // defaults to GOMAXPROCS
	Seed     int64
	StandsAt int // dealer threshold, defaults to game.DealerStandsAt
	HitBelow int // player draws while plain value is below this, defaults to the dealer threshold
	Logger   *log.Logger
}

// Results aggregates simulated round outcomes. Every round stakes one
// unit, so the edge is simply net units lost per round.
type Results struct {
	Rounds int
	Wins   int
	Losses int
}

// WinRate returns the fraction of rounds the player won
func (r Results) WinRate() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Rounds)
}

// HouseEdge returns the average units lost per unit staked, in [-1, 1]
func (r Results) HouseEdge() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Losses-r.Wins) / float64(r.Rounds)
}

type workerResult struct {
	wins   int
	losses int
}

// Run plays cfg.Rounds rounds across parallel workers, each with an
// independently seeded rng, and aggregates the outcomes.
func Run(cfg Config) (*Results, error) {
	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > cfg.Rounds {
		workers = cfg.Rounds
	}

	standsAt := cfg.StandsAt
	if standsAt == 0 {
		standsAt = game.DealerStandsAt
	}
	hitBelow := cfg.HitBelow
	if hitBelow == 0 {
		hitBelow = standsAt
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Debug("starting simulation",
		"rounds", cfg.Rounds,
		"workers", workers,
		"standsAt", standsAt,
		"hitBelow", hitBelow)

	roundsPerWorker := cfg.Rounds / workers
	remainder := cfg.Rounds % workers

	var g errgroup.Group
	results := make(chan workerResult, workers)

	for w := 0; w < workers; w++ {
		rounds := roundsPerWorker
		if w < remainder {
			rounds++
		}

		// Independent rng per worker to avoid contention
		rng := randutil.New(cfg.Seed + int64(w))

		g.Go(func() error {
			var res workerResult
			shuffle := deck.RandomShuffle(rng)
			for i := 0; i < rounds; i++ {
				if playOneRound(shuffle, hitBelow, standsAt) {
					res.wins++
				} else {
					res.losses++
				}
			}
			results <- res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	total := &Results{Rounds: cfg.Rounds}
	for res := range results {
		total.Wins += res.wins
		total.Losses += res.losses
	}
	return total, nil
}

// playOneRound plays a single round with a dealer-mimic player policy:
// draw while the plain value is below hitBelow, then stand.
func playOneRound(shuffle deck.ShuffleFunc, hitBelow, standsAt int) bool {
	d := deck.New(shuffle)
	player, dealer, rest := game.DealOpening(d)

	for player.Value() < hitBelow {
		var card deck.Card
		card, rest = rest.DealTop()
		player = player.Add(card)
	}
	if player.Busted() {
		return false
	}

	dealer, _ = game.PlayDealer(dealer, rest, standsAt)
	return dealer.Busted() || player.Beats(dealer)
}
