package poker

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/paulhankin/poker"
)

// Describe returns a readable name for a five card hand, such as
// "ace-high straight flush".
func Describe(cards []Card) (string, error) {
	if len(cards) != 5 {
		return "", errorsmod.Wrapf(ErrInvalidHandSize, "got %d cards", len(cards))
	}
	hand := make([]poker.Card, 0, len(cards))
	for i, c := range cards {
		pc, err := toPaulhankin(c)
		if err != nil {
			return "", errorsmod.Wrapf(ErrInvalidCard, "card at idx %d: %v", i, err)
		}
		hand = append(hand, pc)
	}
	return poker.Describe(hand)
}

// toPaulhankin converts to the library encoding, where Ace is rank 1.
func toPaulhankin(c Card) (poker.Card, error) {
	return poker.MakeCard(poker.Suit(c.suit), poker.Rank(c.LowNumber()))
}
