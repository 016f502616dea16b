package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack-cli/internal/deck"
)

func newTestRound(interactor Interactor, display Display) *Round {
	return NewRound(interactor, display, log.New(io.Discard), DealerStandsAt)
}

func TestRoundPlayerStandsDealerBusts(t *testing.T) {
	interactor := &scriptedInteractor{decisions: []Decision{Stand}}
	display := &recordingDisplay{}

	// Player holds 17, dealer holds 16 and must draw the king
	player := hand("Ts7h")
	dealer := hand("Td6h")
	d := deck.New(deck.Stacked(deck.MustParseCards("Kc")))

	won := newTestRound(interactor, display).Play(player, dealer, d)

	assert.True(t, won)
	assert.Equal(t, []bool{true}, display.outcomes)
	assert.Equal(t, 1, display.tables)
}

func TestRoundPlayerHitsAndBusts(t *testing.T) {
	interactor := &scriptedInteractor{decisions: []Decision{Hit}}
	display := &recordingDisplay{}

	player := hand("Ts6h")
	dealer := hand("Td9h")
	d := deck.New(deck.Stacked(deck.MustParseCards("Kc")))

	won := newTestRound(interactor, display).Play(player, dealer, d)

	// A bust loses immediately, the dealer never acts
	assert.False(t, won)
	assert.Equal(t, []bool{false}, display.outcomes)
}

func TestRoundPlayerHitsThenStandsAndWins(t *testing.T) {
	interactor := &scriptedInteractor{decisions: []Decision{Hit, Stand}}
	display := &recordingDisplay{}

	// Player improves 13 to 20, dealer stands on 19
	player := hand("Ts3h")
	dealer := hand("Td9h")
	d := deck.New(deck.Stacked(deck.MustParseCards("7c")))

	won := newTestRound(interactor, display).Play(player, dealer, d)

	assert.True(t, won)
	assert.Equal(t, 2, display.tables, "table shown before each decision")
}

func TestRoundTieGoesToDealer(t *testing.T) {
	interactor := &scriptedInteractor{decisions: []Decision{Stand}}
	display := &recordingDisplay{}

	player := hand("TsTh")
	dealer := hand("TdTc")

	won := newTestRound(interactor, display).Play(player, dealer, deck.New(deck.IdentityShuffle))

	assert.False(t, won, "equal totals are not a player win")
}

func TestRoundDealerHigherValueWins(t *testing.T) {
	interactor := &scriptedInteractor{decisions: []Decision{Stand}}
	display := &recordingDisplay{}

	player := hand("Ts8h")
	dealer := hand("TdTc")

	won := newTestRound(interactor, display).Play(player, dealer, deck.New(deck.IdentityShuffle))

	assert.False(t, won)
}
