package poker

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/joker-poker/rng"
)

func TestStandardDeckHasEveryCardOnce(t *testing.T) {
	d := NewStandardDeck(rng.NewString("standard"))
	if d.Len() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Len())
	}
	seen := make(map[Card]int)
	for _, c := range d.Cards() {
		seen[c]++
	}
	for _, s := range Suits {
		for _, r := range Ranks {
			if seen[MustCard(s, r)] != 1 {
				t.Fatalf("%v appears %d times", MustCard(s, r), seen[MustCard(s, r)])
			}
		}
	}
}

func TestStandardDeckOrder(t *testing.T) {
	cards := StandardCards()
	if cards[0] != MustCard(Club, Two) || cards[12] != MustCard(Club, Ace) || cards[13] != MustCard(Diamond, Two) {
		t.Fatal("expected suit-major, rank-minor order")
	}
}

func TestShufflePreservesCards(t *testing.T) {
	d := NewStandardDeck(rng.NewString("shuffle"))
	before := d.Cards()
	d.Shuffle()
	after := d.Cards()
	if len(after) != len(before) {
		t.Fatalf("size changed: %d -> %d", len(before), len(after))
	}
	count := make(map[Card]int)
	for _, c := range before {
		count[c]++
	}
	for _, c := range after {
		count[c]--
	}
	for c, n := range count {
		if n != 0 {
			t.Fatalf("%v count changed by %d", c, n)
		}
	}
	moved := 0
	for i := range before {
		if before[i] != after[i] {
			moved++
		}
	}
	if moved == 0 {
		t.Fatal("shuffle left the deck in order")
	}
}

func TestDrawCards(t *testing.T) {
	d := NewStandardDeck(rng.NewString("draw"))
	top := d.Cards()[51]
	cards, err := d.DrawCards(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 5 || d.Len() != 47 {
		t.Fatalf("expected 5 drawn and 47 left, got %d and %d", len(cards), d.Len())
	}
	if cards[0] != top {
		t.Fatalf("expected first draw to be the top card %v, got %v", top, cards[0])
	}

	if _, err := d.DrawCards(53); !errors.Is(err, ErrInsufficientCards) {
		t.Fatalf("expected ErrInsufficientCards, got %v", err)
	}
	if _, ok := d.TryDrawCards(53); ok {
		t.Fatal("expected TryDrawCards to report absence")
	}
	if d.Len() != 47 {
		t.Fatalf("failed draw mutated the deck: %d left", d.Len())
	}
}

func TestDrawFromEmptyDeck(t *testing.T) {
	d := NewDeck(rng.NewString("empty"))
	if _, err := d.DrawCard(); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
	if _, ok := d.TryDrawCard(); ok {
		t.Fatal("expected TryDrawCard to report absence")
	}

	d.Add(MustCard(Heart, Two))
	c, err := d.DrawCard()
	if err != nil || c != MustCard(Heart, Two) {
		t.Fatalf("unexpected draw %v, %v", c, err)
	}

	d = NewStandardDeck(nil)
	d.Clear()
	if d.Len() != 0 {
		t.Fatal("clear left cards behind")
	}
}
