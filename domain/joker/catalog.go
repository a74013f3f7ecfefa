package joker

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

var (
	registry = make(map[string]*Definition)
	order    []string
)

func init() {
	for _, group := range [][]Definition{holeJokers, handJokers, countingJokers, phaseJokers, comboJokers} {
		for _, def := range group {
			register(def)
		}
	}
}

func register(def Definition) {
	if _, dup := registry[def.ID]; dup {
		panic("joker: duplicate id " + def.ID)
	}
	if !def.Rarity.Valid() {
		panic(errorsmod.Wrapf(ErrInvalidRarity, "%s: %q", def.ID, def.Rarity))
	}
	if !def.Ownership.Valid() {
		panic(errorsmod.Wrapf(ErrInvalidOwner, "%s: %q", def.ID, def.Ownership))
	}
	d := def
	registry[def.ID] = &d
	order = append(order, def.ID)
}

// Catalog lists every registered definition in registration order.
func Catalog() []Definition {
	out := make([]Definition, 0, len(order))
	for _, id := range order {
		out = append(out, *registry[id])
	}
	return out
}

// Lookup returns the definition registered under id.
func Lookup(id string) (Definition, bool) {
	def, ok := registry[id]
	if !ok {
		return Definition{}, false
	}
	return *def, true
}

// scaled is the linear payout shared by most jokers: base at level 1 plus
// step for every level above it.
func scaled(base, step, level int) int {
	return base + step*(level-1)
}

func countWhere(cards []poker.Card, pred func(poker.Card) bool) int {
	n := 0
	for _, c := range cards {
		if pred(c) {
			n++
		}
	}
	return n
}

func hasRank(cards []poker.Card, r poker.Rank) bool {
	return countWhere(cards, func(c poker.Card) bool { return c.Rank() == r }) > 0
}

func ofSuit(s poker.Suit) func(poker.Card) bool {
	return func(c poker.Card) bool { return c.Suit() == s }
}

func ofRank(r poker.Rank) func(poker.Card) bool {
	return func(c poker.Card) bool { return c.Rank() == r }
}
