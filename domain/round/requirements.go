package round

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// SelectionCards and SelectionJokers are the exact size of a selection.
const (
	SelectionCards  = 5
	SelectionJokers = 3
)

// Requirements is how much is on the table in a phase. The counts are
// totals, not deltas.
type Requirements struct {
	BoardCards   int `json:"boardCards"`
	BoardJokers  int `json:"boardJokers"`
	PlayerCards  int `json:"playerCards"`
	PlayerJokers int `json:"playerJokers"`
}

var requirements = map[poker.Phase]Requirements{
	poker.Flop:  {BoardCards: 3, BoardJokers: 3, PlayerCards: 2, PlayerJokers: 2},
	poker.Turn:  {BoardCards: 4, BoardJokers: 4, PlayerCards: 3, PlayerJokers: 3},
	poker.River: {BoardCards: 5, BoardJokers: 5, PlayerCards: 4, PlayerJokers: 4},
}

// RequirementsFor returns the table of a non-complete phase.
func RequirementsFor(p poker.Phase) (Requirements, error) {
	if p == poker.Complete {
		return Requirements{}, ErrRoundComplete
	}
	r, ok := requirements[p]
	if !ok {
		return Requirements{}, errorsmod.Wrapf(poker.ErrInvalidPhase, "%q", p)
	}
	return r, nil
}

// CardsNeeded is how many cards a full round deals to n players.
func CardsNeeded(players int) int {
	r := requirements[poker.River]
	return r.BoardCards + players*r.PlayerCards
}
