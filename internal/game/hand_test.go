package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack-cli/internal/deck"
)

func hand(cards string) Hand {
	return NewHand(deck.MustParseCards(cards)...)
}

func TestHandValues(t *testing.T) {
	tests := []struct {
		name      string
		cards     string
		value     int
		alternate int
		best      int
	}{
		{name: "empty", cards: "", value: 0, alternate: 0, best: 0},
		{name: "no ace", cards: "Ts9h", value: 19, alternate: 19, best: 19},
		{name: "blackjack", cards: "AsKh", value: 11, alternate: 21, best: 21},
		{name: "soft seventeen", cards: "As6h", value: 7, alternate: 17, best: 17},
		{name: "ace counts one after draw", cards: "As6hTd", value: 17, alternate: 27, best: 17},
		{name: "two aces", cards: "AsAh", value: 2, alternate: 12, best: 12},
		{name: "bust", cards: "KhQd2s", value: 22, alternate: 22, best: 0},
		{name: "twenty one in three", cards: "7h7d7s", value: 21, alternate: 21, best: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hand(tt.cards)
			assert.Equal(t, tt.value, h.Value())
			assert.Equal(t, tt.alternate, h.AlternateValue())
			assert.Equal(t, tt.best, h.BestValue())
		})
	}
}

func TestAlternateValueOnlyWithAce(t *testing.T) {
	withAce := hand("As5d")
	assert.True(t, withAce.ContainsAce())
	assert.Equal(t, withAce.Value()+10, withAce.AlternateValue())

	noAce := hand("Ks5d")
	assert.False(t, noAce.ContainsAce())
	assert.Equal(t, noAce.Value(), noAce.AlternateValue())
}

func TestBlackjack(t *testing.T) {
	assert.True(t, hand("AsKh").Blackjack())
	assert.True(t, hand("AdTd").Blackjack())
	assert.True(t, hand("7h7d7s").Blackjack())
	assert.False(t, hand("Ts9h").Blackjack())
	assert.False(t, hand("KhQd2s").Blackjack())
}

func TestBusted(t *testing.T) {
	assert.True(t, hand("KhQd2s").Busted())
	assert.False(t, hand("KhQd").Busted())
	// Aces count one for the bust check, so this is a live hand
	assert.False(t, hand("AsKhQd").Busted())
}

func TestBeats(t *testing.T) {
	assert.True(t, hand("TsTh").Beats(hand("Td9h")), "20 beats 19")
	assert.False(t, hand("Td9h").Beats(hand("TsTh")), "19 does not beat 20")
	assert.False(t, hand("TsTh").Beats(hand("TdTc")), "equal values tie")

	// A busted hand scores zero: it never beats, and a double bust is a
	// loss for whoever calls Beats
	bust := hand("KhQd2s")
	assert.False(t, bust.Beats(hand("2h3d")))
	assert.False(t, bust.Beats(hand("KsQc3s")))
	assert.True(t, hand("2h3d").Beats(bust))
}

func TestAddDoesNotMutate(t *testing.T) {
	h := hand("Ts9h")
	grown := h.Add(deck.NewCard(deck.Clubs, deck.Two))

	assert.Equal(t, 2, h.Size())
	assert.Equal(t, 3, grown.Size())
	assert.Equal(t, 19, h.Value())
	assert.Equal(t, 21, grown.Value())
}

func TestDescribe(t *testing.T) {
	h := hand("AsKh7d")
	assert.Equal(t, "A♠ K♥ 7♦", h.Describe(false))
	assert.Equal(t, "A♠ ▇▇ ▇▇", h.Describe(true))
	assert.Equal(t, "(empty)", NewHand().Describe(false))
}
