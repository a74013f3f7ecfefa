package poker

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/luca-patrignani/joker-poker/rng"
)

// Deck is an ordered stack of cards. The top of the deck is the last element
// and every draw removes from there.
type Deck struct {
	cards []Card
	src   rng.Source
}

// NewDeck creates an empty deck that shuffles with src.
func NewDeck(src rng.Source) *Deck {
	if src == nil {
		src = rng.NewRandom()
	}
	return &Deck{src: src}
}

// NewStandardDeck creates the 52 card deck in suit-major, rank-minor order.
func NewStandardDeck(src rng.Source) *Deck {
	d := NewDeck(src)
	d.cards = StandardCards()
	return d
}

// StandardCards lists each suit and rank combination exactly once.
func StandardCards() []Card {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{suit: s, rank: r})
		}
	}
	return cards
}

// Add pushes cards on top of the deck.
func (d *Deck) Add(cards ...Card) {
	d.cards = append(d.cards, cards...)
}

// Len returns the number of cards left.
func (d *Deck) Len() int { return len(d.cards) }

// Cards returns a copy of the deck, bottom first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Clear removes every card.
func (d *Deck) Clear() { d.cards = d.cards[:0] }

// Shuffle permutes the deck in place.
func (d *Deck) Shuffle() {
	rng.Shuffle(d.src, len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// DrawCard removes and returns the top card. It fails with ErrEmptyDeck.
func (d *Deck) DrawCard() (Card, error) {
	c, ok := d.TryDrawCard()
	if !ok {
		return Card{}, ErrEmptyDeck
	}
	return c, nil
}

// TryDrawCard is DrawCard reporting exhaustion with false.
func (d *Deck) TryDrawCard() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// DrawCards draws n cards, the first element being the first drawn. It fails
// with ErrInsufficientCards and leaves the deck untouched when n exceeds the size.
func (d *Deck) DrawCards(n int) ([]Card, error) {
	cards, ok := d.TryDrawCards(n)
	if !ok {
		return nil, errorsmod.Wrapf(ErrInsufficientCards, "requested %d, have %d", n, len(d.cards))
	}
	return cards, nil
}

// TryDrawCards is DrawCards reporting exhaustion with false.
func (d *Deck) TryDrawCards(n int) ([]Card, bool) {
	if n < 0 || n > len(d.cards) {
		return nil, false
	}
	out := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, _ := d.TryDrawCard()
		out = append(out, c)
	}
	return out, true
}
