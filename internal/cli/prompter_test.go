package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack-cli/internal/game"
)

func init() {
	// Plain output so assertions see no escape sequences
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestPrompter(input string) (*Prompter, *strings.Builder) {
	out := &strings.Builder{}
	p := NewPrompter(strings.NewReader(input), out)
	p.exit = func() { panic("input closed") }
	return p, out
}

func TestAskBet(t *testing.T) {
	p, _ := newTestPrompter("25\n")
	assert.Equal(t, 25, p.AskBet(100))
}

func TestAskBetRetriesInvalidInput(t *testing.T) {
	// Garbage, negative, zero and over-credit answers all re-prompt
	p, out := newTestPrompter("abc\n-5\n0\n500\n50\n")

	assert.Equal(t, 50, p.AskBet(100))
	assert.Equal(t, 4, strings.Count(out.String(), "Enter a number between 1 and 100."))
}

func TestAskHitOrStand(t *testing.T) {
	tests := []struct {
		input    string
		expected game.Decision
	}{
		{"hit\n", game.Hit},
		{"h\n", game.Hit},
		{"HIT\n", game.Hit},
		{"stand\n", game.Stand},
		{"s\n", game.Stand},
		{"double\nwhat\nstand\n", game.Stand},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.input, "\n", ","), func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)
			assert.Equal(t, tt.expected, p.AskHitOrStand())
		})
	}
}

func TestAskPlayAgain(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"NO\n", false},
		{"maybe\nn\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.input, "\n", ","), func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)
			assert.Equal(t, tt.expected, p.AskPlayAgain())
		})
	}
}

func TestClosedInputExits(t *testing.T) {
	p, _ := newTestPrompter("")
	assert.PanicsWithValue(t, "input closed", func() { p.AskBet(100) })
}
