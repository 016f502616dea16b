package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/deck"
)

type roundState int

const (
	playerTurn roundState = iota
	dealerResolution
	roundDone
)

// Round drives a single hand of blackjack from the opening deal to a
// win/loss outcome. State moves forward only; every transition reassigns
// immutable snapshots of the deck and hands.
type Round struct {
	interactor Interactor
	display    Display
	logger     *log.Logger
	standsAt   int
}

// NewRound creates a round controller
func NewRound(interactor Interactor, display Display, logger *log.Logger, standsAt int) *Round {
	return &Round{
		interactor: interactor,
		display:    display,
		logger:     logger,
		standsAt:   standsAt,
	}
}

// Play runs the hit/stand cycle to completion and reports whether the
// player won. The loop terminates because every hit grows the player's
// hand and positive card values force a bust eventually.
func (r *Round) Play(player, dealer Hand, d deck.Deck) bool {
	state := playerTurn
	won := false

	for state != roundDone {
		switch state {
		case playerTurn:
			if player.Busted() {
				r.logger.Debug("player busted", "value", player.Value())
				state = roundDone
				break
			}

			r.display.ShowTable(player, dealer, true)
			switch r.interactor.AskHitOrStand() {
			case Hit:
				var card deck.Card
				card, d = d.DealTop()
				player = player.Add(card)
				r.logger.Debug("player hits", "card", card.String(), "value", player.Value())
			case Stand:
				r.logger.Debug("player stands", "value", player.BestValue())
				state = dealerResolution
			}

		case dealerResolution:
			dealer, d = PlayDealer(dealer, d, r.standsAt)
			won = dealer.Busted() || player.Beats(dealer)
			r.logger.Debug("dealer resolved",
				"dealerValue", dealer.Value(),
				"dealerBusted", dealer.Busted(),
				"playerWon", won)
			state = roundDone
		}
	}

	r.display.ShowOutcome(player, dealer, won)
	return won
}
