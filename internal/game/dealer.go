package game

import "github.com/lox/blackjack-cli/internal/deck"

// DealerStandsAt is the conventional casino threshold: the dealer draws
// while the plain hand value is below 17 and stands at 17 or more.
const DealerStandsAt = 17

// DealOpening deals the opening layout from the top of the deck: two cards
// to the player, then two to the dealer.
func DealOpening(d deck.Deck) (player, dealer Hand, rest deck.Deck) {
	var card deck.Card

	for i := 0; i < 2; i++ {
		card, d = d.DealTop()
		player = player.Add(card)
	}
	for i := 0; i < 2; i++ {
		card, d = d.DealTop()
		dealer = dealer.Add(card)
	}
	return player, dealer, d
}

// PlayDealer draws cards for the dealer until the plain hand value reaches
// standsAt. A starting value below the threshold always draws at least
// once; the result is at or above the threshold, possibly busted.
func PlayDealer(hand Hand, d deck.Deck, standsAt int) (Hand, deck.Deck) {
	for hand.Value() < standsAt {
		var card deck.Card
		card, d = d.DealTop()
		hand = hand.Add(card)
	}
	return hand, d
}
