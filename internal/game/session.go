package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/deck"
)

// DefaultStartingCredit is the bankroll a session opens with unless
// configured otherwise.
const DefaultStartingCredit = 100

type sessionState int

const (
	awaitBet sessionState = iota
	playRound
	summarize
	askContinue
	sessionExit
)

// SessionConfig carries the injected capabilities and tunables for a
// session. All interaction happens through the Interactor and Display;
// the engine never touches the terminal itself.
type SessionConfig struct {
	Interactor     Interactor
	Display        Display
	Shuffle        deck.ShuffleFunc
	Logger         *log.Logger
	Clock          quartz.Clock
	StartingCredit int
	DealerStandsAt int
}

// Session is the top-level state machine: it accepts bets, plays rounds
// and tracks the credit balance until the player quits or runs dry.
type Session struct {
	interactor Interactor
	display    Display
	shuffle    deck.ShuffleFunc
	logger     *log.Logger
	clock      quartz.Clock
	standsAt   int
	credit     int
}

// NewSession creates a session from the given configuration
func NewSession(cfg SessionConfig) *Session {
	credit := cfg.StartingCredit
	if credit == 0 {
		credit = DefaultStartingCredit
	}
	standsAt := cfg.DealerStandsAt
	if standsAt == 0 {
		standsAt = DealerStandsAt
	}
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Session{
		interactor: cfg.Interactor,
		display:    cfg.Display,
		shuffle:    cfg.Shuffle,
		logger:     logger,
		clock:      clock,
		standsAt:   standsAt,
		credit:     credit,
	}
}

// Credit returns the current balance
func (s *Session) Credit() int {
	return s.credit
}

// Run loops rounds until the player quits or the credit is exhausted and
// returns the final balance.
func (s *Session) Run() int {
	state := awaitBet
	bet := 0
	won := false

	for state != sessionExit {
		switch state {
		case awaitBet:
			bet = s.awaitValidBet()
			state = playRound

		case playRound:
			start := s.clock.Now()
			won = s.playRound()
			s.logger.Debug("round complete",
				"won", won,
				"bet", bet,
				"elapsed", s.clock.Since(start))
			state = summarize

		case summarize:
			before := s.credit
			if won {
				s.credit += bet
			} else {
				s.credit -= bet
			}
			s.display.ShowCredit(before, s.credit)
			state = askContinue

		case askContinue:
			if s.credit <= 0 {
				s.display.ShowMessage("You're out of credit. Game over.")
				s.logger.Info("session over, credit exhausted")
				state = sessionExit
				break
			}
			if s.interactor.AskPlayAgain() {
				state = awaitBet
			} else {
				s.display.ShowMessage("Thanks for playing!")
				s.logger.Info("session over, player quit", "credit", s.credit)
				state = sessionExit
			}
		}
	}

	return s.credit
}

// awaitValidBet keeps prompting until the bet is positive and covered by
// the current credit. The interactor already re-prompts on malformed
// input; this guards the range contract as well.
func (s *Session) awaitValidBet() int {
	for {
		bet := s.interactor.AskBet(s.credit)
		if bet > 0 && bet <= s.credit {
			s.logger.Debug("bet accepted", "bet", bet, "credit", s.credit)
			return bet
		}
		s.logger.Debug("bet rejected", "bet", bet, "credit", s.credit)
		s.display.ShowMessage(fmt.Sprintf("Bets must be between 1 and %d.", s.credit))
	}
}

// playRound shuffles a fresh deck, deals the opening layout and runs a
// round controller to completion.
func (s *Session) playRound() bool {
	d := deck.New(s.shuffle)
	player, dealer, rest := DealOpening(d)

	round := NewRound(s.interactor, s.display, s.logger, s.standsAt)
	return round.Play(player, dealer, rest)
}
