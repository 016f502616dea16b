package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// Renderer implements game.Display, writing styled text to a terminal.
// Rendering is fire-and-forget: write errors cannot affect the game.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// ShowTable renders both hands mid-round, masking the dealer's hole cards
// while hideHole is set.
func (r *Renderer) ShowTable(player, dealer game.Hand, hideHole bool) {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s %s\n", LabelStyle.Render("Dealer:"), r.renderHand(dealer, hideHole))
	fmt.Fprintf(r.out, "%s %s %s\n",
		LabelStyle.Render("You:   "),
		r.renderHand(player, false),
		InfoStyle.Render(fmt.Sprintf("(%s)", totalLabel(player))))
}

// ShowOutcome renders the fully revealed hands with a win/lose banner
func (r *Renderer) ShowOutcome(player, dealer game.Hand, won bool) {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s %s %s\n",
		LabelStyle.Render("Dealer:"),
		r.renderHand(dealer, false),
		InfoStyle.Render(fmt.Sprintf("(%s)", totalLabel(dealer))))
	fmt.Fprintf(r.out, "%s %s %s\n",
		LabelStyle.Render("You:   "),
		r.renderHand(player, false),
		InfoStyle.Render(fmt.Sprintf("(%s)", totalLabel(player))))

	if won {
		fmt.Fprintln(r.out, WinStyle.Render("You win!"))
	} else {
		fmt.Fprintln(r.out, LoseStyle.Render("You lose."))
	}
}

// ShowCredit reports the credit change after a round settles
func (r *Renderer) ShowCredit(before, after int) {
	style := WinStyle
	if after < before {
		style = LoseStyle
	}
	fmt.Fprintf(r.out, "%s %s\n",
		LabelStyle.Render("Credit:"),
		style.Render(fmt.Sprintf("%d → %d", before, after)))
}

// ShowMessage renders a one-line notice
func (r *Renderer) ShowMessage(msg string) {
	fmt.Fprintln(r.out, InfoStyle.Render(msg))
}

// renderHand styles each card red or black; hidden cards are masked
func (r *Renderer) renderHand(h game.Hand, hideHole bool) string {
	cards := h.Cards()
	if len(cards) == 0 {
		return InfoStyle.Render("(empty)")
	}

	parts := make([]string, 0, len(cards))
	for i, c := range cards {
		if hideHole && i > 0 {
			parts = append(parts, HiddenCardStyle.Render("▇▇"))
			continue
		}
		parts = append(parts, styleCard(c))
	}
	return strings.Join(parts, " ")
}

func styleCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// totalLabel shows the plain total, or both totals for a live soft hand
func totalLabel(h game.Hand) string {
	if best := h.BestValue(); best != 0 && best != h.Value() {
		return fmt.Sprintf("%d/%d", h.Value(), best)
	}
	return fmt.Sprintf("%d", h.Value())
}
