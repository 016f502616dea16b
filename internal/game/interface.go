package game

// Decision is the player's answer to a hit-or-stand prompt
type Decision int

const (
	// Hit requests one more card
	Hit Decision = iota
	// Stand ends the player's turn with the current hand
	Stand
)

// String returns the string representation of a decision
func (d Decision) String() string {
	switch d {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// Interactor supplies the player's answers. Implementations own the
// prompt-and-read loop and must keep re-asking until the answer is valid;
// malformed input is never the engine's problem. Calls block until an
// answer is available.
type Interactor interface {
	// AskBet prompts for a wager against the current credit. The returned
	// value should satisfy 0 < bet <= credit; the engine re-asks if not.
	AskBet(credit int) int

	// AskHitOrStand prompts for the player's next move
	AskHitOrStand() Decision

	// AskPlayAgain asks whether to start another round
	AskPlayAgain() bool
}

// Display renders game state for the player. It is write-only: rendering
// cannot fail the game, so no method returns an error.
type Display interface {
	// ShowTable renders both hands mid-round. The dealer's hole cards are
	// masked while hideHole is set.
	ShowTable(player, dealer Hand, hideHole bool)

	// ShowOutcome renders the fully revealed hands with a win/lose banner
	ShowOutcome(player, dealer Hand, won bool)

	// ShowCredit reports the credit change after a round settles
	ShowCredit(before, after int)

	// ShowMessage renders a one-line notice
	ShowMessage(msg string)
}
