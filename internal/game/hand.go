package game

import (
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

// BestPossible is the highest hand total that does not bust.
const BestPossible = 21

// Hand is an ordered set of cards held by one party. It has value
// semantics: Add returns a new Hand and every score is derived on demand,
// never stored.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand from the given cards
func NewHand(cards ...deck.Card) Hand {
	h := Hand{cards: make([]deck.Card, len(cards))}
	copy(h.cards, cards)
	return h
}

// Add returns a new hand with the card appended. The receiver is untouched.
func (h Hand) Add(card deck.Card) Hand {
	cards := make([]deck.Card, 0, len(h.cards)+1)
	cards = append(cards, h.cards...)
	cards = append(cards, card)
	return Hand{cards: cards}
}

// Cards returns a copy of the cards in the hand
func (h Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Size returns the number of cards in the hand
func (h Hand) Size() int {
	return len(h.cards)
}

// Value returns the plain total: the sum of base rank values, every ace
// counting one.
func (h Hand) Value() int {
	total := 0
	for _, c := range h.cards {
		total += c.Rank.BaseValue()
	}
	return total
}

// ContainsAce returns true if any card in the hand is an ace
func (h Hand) ContainsAce() bool {
	for _, c := range h.cards {
		if c.IsAce() {
			return true
		}
	}
	return false
}

// AlternateValue returns the total with one ace promoted from one to
// eleven. Hands without an ace have no alternate; the plain value is
// returned.
func (h Hand) AlternateValue() int {
	if h.ContainsAce() {
		return h.Value() + 10
	}
	return h.Value()
}

// BestValue returns the highest of the two totals that does not exceed 21,
// or 0 if the hand is bust either way.
func (h Hand) BestValue() int {
	if alt := h.AlternateValue(); alt <= BestPossible {
		return alt
	}
	if v := h.Value(); v <= BestPossible {
		return v
	}
	return 0
}

// Busted returns true if the plain total exceeds 21
func (h Hand) Busted() bool {
	return h.Value() > BestPossible
}

// Blackjack returns true if either total is exactly 21
func (h Hand) Blackjack() bool {
	return h.Value() == BestPossible || h.AlternateValue() == BestPossible
}

// Beats returns true iff this hand's best value strictly exceeds the
// other's. A busted hand has best value 0, so it never beats anything and
// a double bust counts as a loss for the caller.
func (h Hand) Beats(other Hand) bool {
	return h.BestValue() > other.BestValue()
}

// Describe renders the hand for display. With hideHole set only the first
// card is shown and the rest are masked, the way a dealer keeps cards face
// down until the player stands.
func (h Hand) Describe(hideHole bool) string {
	if len(h.cards) == 0 {
		return "(empty)"
	}

	var b strings.Builder
	if hideHole {
		b.WriteString(h.cards[0].String())
		for range h.cards[1:] {
			b.WriteString(" ▇▇")
		}
		return b.String()
	}

	for i, c := range h.cards {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
