package round

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// Stage is the two-step view of a round: players first reshape their hand,
// then play it.
type Stage string

const (
	StageDiscard  Stage = "DISCARD"
	StageScoring  Stage = "SCORING"
	StageComplete Stage = "COMPLETE"
)

// Stage maps the current phase onto the two-step view.
func (s *State) Stage() Stage {
	switch s.phase {
	case poker.Flop, poker.Turn:
		return StageDiscard
	case poker.River:
		return StageScoring
	}
	return StageComplete
}

// CheckDiscard reports whether Discard would accept the indices.
func (s *State) CheckDiscard(playerID string, indices []int) error {
	hand, ok := s.hands[playerID]
	if !ok {
		return errorsmod.Wrapf(ErrUnknownPlayer, "%q", playerID)
	}
	if s.Stage() != StageDiscard {
		return errorsmod.Wrapf(ErrInvalidPhase, "cannot discard in %s", s.phase)
	}
	if s.discarded[playerID] {
		return ErrAlreadyDiscarded
	}
	if _, submitted := s.selections[playerID]; submitted {
		return ErrInvalidDiscard.Wrap("selection already submitted")
	}
	if len(indices) == 0 || len(indices) > len(hand) {
		return errorsmod.Wrapf(ErrInvalidDiscard, "%d indices for %d cards", len(indices), len(hand))
	}
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(hand) {
			return errorsmod.Wrapf(ErrInvalidDiscard, "index %d out of range", i)
		}
		if seen[i] {
			return errorsmod.Wrapf(ErrInvalidDiscard, "index %d repeated", i)
		}
		seen[i] = true
	}
	if left, need := s.deck.Len()-len(indices), s.reserved(); left < need {
		return errorsmod.Wrapf(ErrDeckExhausted, "discarding %d leaves %d cards, %d still to deal", len(indices), left, need)
	}
	return nil
}

// Discard throws away the hole cards at indices and replaces them from the
// deck, in place. Each player may discard once per phase, and only before
// submitting. Cards the later phases still deal are not available for
// discards. The discarded cards are returned.
func (s *State) Discard(playerID string, indices []int) ([]poker.Card, error) {
	if err := s.CheckDiscard(playerID, indices); err != nil {
		return nil, err
	}
	hand := s.hands[playerID]

	drawn, err := s.deck.DrawCards(len(indices))
	if err != nil {
		return nil, err
	}
	out := make([]poker.Card, len(indices))
	for k, i := range indices {
		out[k] = hand[i]
		hand[i] = drawn[k]
	}
	s.discarded[playerID] = true
	s.logger.Debug("cards discarded", "round", s.id, "player", playerID, "count", len(indices))
	return out, nil
}

// HasDiscarded reports whether the player already discarded this phase.
func (s *State) HasDiscarded(playerID string) bool { return s.discarded[playerID] }
