package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lox/blackjack-cli/internal/game"
)

// Prompter implements game.Interactor over a line-based reader and writer.
// Every Ask keeps re-prompting until the answer is valid: malformed input
// is recovered locally and never reaches the engine.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	exit    func()
}

// NewPrompter creates a prompter reading from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		exit:    func() { os.Exit(0) },
	}
}

// readLine prints the prompt and reads one trimmed line. A closed input
// stream ends the process cleanly; there is nothing left to play.
func (p *Prompter) readLine(prompt string) string {
	fmt.Fprint(p.out, PromptStyle.Render(prompt), " ")
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		p.exit()
		return ""
	}
	return strings.TrimSpace(p.scanner.Text())
}

// AskBet prompts for a wager until it is a number within 1..credit.
// A parse failure coerces to zero, which fails the range check like any
// other invalid value.
func (p *Prompter) AskBet(credit int) int {
	for {
		answer := p.readLine(fmt.Sprintf("Your bet (credit %d):", credit))
		bet, err := strconv.Atoi(answer)
		if err != nil {
			bet = 0
		}
		if bet > 0 && bet <= credit {
			return bet
		}
		fmt.Fprintln(p.out, InfoStyle.Render(fmt.Sprintf("Enter a number between 1 and %d.", credit)))
	}
}

// AskHitOrStand prompts until the answer is one of hit/stand
func (p *Prompter) AskHitOrStand() game.Decision {
	for {
		switch strings.ToLower(p.readLine("[h]it or [s]tand?")) {
		case "h", "hit":
			return game.Hit
		case "s", "stand":
			return game.Stand
		}
		fmt.Fprintln(p.out, InfoStyle.Render(`Answer "hit" or "stand".`))
	}
}

// AskPlayAgain prompts until the answer is yes or no
func (p *Prompter) AskPlayAgain() bool {
	for {
		switch strings.ToLower(p.readLine("Play another round? [y/n]")) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintln(p.out, InfoStyle.Render(`Answer "yes" or "no".`))
	}
}
