package deck

import (
	"testing"

	"github.com/lox/blackjack-cli/internal/randutil"
)

func TestNewDeckIsFullSet(t *testing.T) {
	shuffles := map[string]ShuffleFunc{
		"identity": IdentityShuffle,
		"random":   RandomShuffle(randutil.New(1)),
	}

	for name, shuffle := range shuffles {
		t.Run(name, func(t *testing.T) {
			d := New(shuffle)
			if d.Remaining() != 52 {
				t.Fatalf("Remaining() = %d, want 52", d.Remaining())
			}

			seen := make(map[Card]bool)
			for !d.Empty() {
				var card Card
				card, d = d.DealTop()
				if seen[card] {
					t.Errorf("duplicate card dealt: %s", card)
				}
				seen[card] = true
			}
			if len(seen) != 52 {
				t.Errorf("dealt %d unique cards, want 52", len(seen))
			}
		})
	}
}

func TestRandomShuffleIsPermutation(t *testing.T) {
	original := Canonical()
	shuffled := RandomShuffle(randutil.New(42))(original)

	if len(shuffled) != len(original) {
		t.Fatalf("shuffled %d cards, want %d", len(shuffled), len(original))
	}

	seen := make(map[Card]bool, len(shuffled))
	for _, c := range shuffled {
		seen[c] = true
	}
	for _, c := range original {
		if !seen[c] {
			t.Errorf("shuffle lost card %s", c)
		}
	}

	// The input must not be reordered in place
	canonical := Canonical()
	for i := range original {
		if original[i] != canonical[i] {
			t.Fatal("RandomShuffle mutated its input")
		}
	}
}

func TestDealTop(t *testing.T) {
	d := New(IdentityShuffle)

	card, rest := d.DealTop()
	if card != NewCard(Spades, Two) {
		t.Errorf("DealTop() = %s, want 2♠", card)
	}
	if rest.Remaining() != 51 {
		t.Errorf("Remaining() = %d, want 51", rest.Remaining())
	}
	if d.Remaining() != 52 {
		t.Errorf("original deck mutated: Remaining() = %d, want 52", d.Remaining())
	}
}

func TestDealTopEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("DealTop() on an empty deck should panic")
		}
	}()

	var d Deck
	d.DealTop()
}

func TestStacked(t *testing.T) {
	top := MustParseCards("TsKh7d")
	d := New(Stacked(top))

	if d.Remaining() != 52 {
		t.Fatalf("Remaining() = %d, want 52", d.Remaining())
	}

	for i, want := range top {
		var card Card
		card, d = d.DealTop()
		if card != want {
			t.Errorf("card %d = %s, want %s", i, card, want)
		}
	}
}
