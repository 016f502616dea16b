package deck

import rand "math/rand/v2"

// ShuffleFunc reorders a set of cards into dealing order. Implementations
// must return a permutation of the input: no duplicates, no omissions.
type ShuffleFunc func([]Card) []Card

// Deck is an ordered sequence of remaining cards. It has value semantics:
// dealing returns a new Deck rather than mutating the receiver.
type Deck struct {
	cards []Card
}

// Canonical returns the full 52-card set in suit-then-rank order.
func Canonical() []Card {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// New builds a deck of all 52 unique cards in the order produced by the
// supplied shuffle.
func New(shuffle ShuffleFunc) Deck {
	return Deck{cards: shuffle(Canonical())}
}

// RandomShuffle returns a ShuffleFunc that performs a Fisher-Yates shuffle
// on a copy of the input using the supplied rng.
func RandomShuffle(rng *rand.Rand) ShuffleFunc {
	return func(cards []Card) []Card {
		shuffled := make([]Card, len(cards))
		copy(shuffled, cards)
		for i := len(shuffled) - 1; i > 0; i-- {
			j := rng.IntN(i + 1)
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}
		return shuffled
	}
}

// IdentityShuffle keeps the canonical order. Useful for deterministic tests.
func IdentityShuffle(cards []Card) []Card {
	return cards
}

// Stacked returns a ShuffleFunc that deals the given cards in order,
// followed by the rest of the canonical set. Test fixture helper.
func Stacked(top []Card) ShuffleFunc {
	return func(cards []Card) []Card {
		seen := make(map[Card]bool, len(top))
		stacked := make([]Card, 0, len(cards))
		stacked = append(stacked, top...)
		for _, c := range top {
			seen[c] = true
		}
		for _, c := range cards {
			if !seen[c] {
				stacked = append(stacked, c)
			}
		}
		return stacked
	}
}

// DealTop removes the front card and returns it along with the remaining
// deck. Removal is strictly by position. Game rules guarantee the deck is
// never exhausted mid-round, so an empty deal is a broken invariant and
// panics rather than returning garbage.
func (d Deck) DealTop() (Card, Deck) {
	if len(d.cards) == 0 {
		panic("deck: deal from empty deck")
	}
	return d.cards[0], Deck{cards: d.cards[1:]}
}

// Remaining returns the number of cards left in the deck
func (d Deck) Remaining() int {
	return len(d.cards)
}

// Empty returns true if the deck has no cards left
func (d Deck) Empty() bool {
	return len(d.cards) == 0
}
