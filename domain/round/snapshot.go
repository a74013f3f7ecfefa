package round

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/domain/scoring"
)

// Snapshot is the plain data of a State.
type Snapshot struct {
	ID          string                         `json:"id"`
	Phase       poker.Phase                    `json:"phase"`
	Handicaps   scoring.HandicapSet            `json:"handicaps"`
	Deck        []poker.Card                   `json:"deck"`
	Pool        joker.PoolSnapshot             `json:"pool"`
	Board       []poker.Card                   `json:"board"`
	BoardJokers []*joker.Joker                 `json:"boardJokers"`
	Players     []string                       `json:"players"`
	Hands       map[string][]poker.Card        `json:"hands"`
	Jokers      map[string][]*joker.Joker      `json:"jokers"`
	Selections  map[string]Selection           `json:"selections,omitempty"`
	Scores      map[string]map[poker.Phase]int `json:"scores"`
	Discarded   map[string]bool                `json:"discarded,omitempty"`
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		ID:          s.id,
		Phase:       s.phase,
		Handicaps:   s.handicaps,
		Deck:        s.deck.Cards(),
		Pool:        s.pool.Snapshot(),
		Board:       s.Board(),
		BoardJokers: cloneJokers(s.boardJokers),
		Players:     s.PlayerIDs(),
		Hands:       make(map[string][]poker.Card, len(s.players)),
		Jokers:      make(map[string][]*joker.Joker, len(s.players)),
		Selections:  s.Selections(),
		Scores:      make(map[string]map[poker.Phase]int, len(s.players)),
		Discarded:   make(map[string]bool, len(s.discarded)),
	}
	for _, id := range s.players {
		snap.Hands[id] = s.Hand(id)
		snap.Jokers[id] = cloneJokers(s.jokers[id])
		scores := make(map[poker.Phase]int, len(s.scores[id]))
		for p, v := range s.scores[id] {
			scores[p] = v
		}
		snap.Scores[id] = scores
	}
	for id, v := range s.discarded {
		snap.Discarded[id] = v
	}
	return snap
}

// Restore rebuilds a State from a snapshot. WithID is ignored.
func Restore(snap Snapshot, opts ...Option) (*State, error) {
	if !snap.Phase.Valid() {
		return nil, errorsmod.Wrapf(poker.ErrInvalidPhase, "%q", snap.Phase)
	}
	if len(snap.Players) == 0 {
		return nil, ErrNoPlayers
	}
	s := newEmpty(opts)
	s.id = snap.ID
	s.phase = snap.Phase
	s.handicaps = snap.Handicaps
	s.deck = poker.NewDeck(s.src)
	s.deck.Add(snap.Deck...)
	s.pool = joker.RestorePool(s.src, snap.Pool)
	s.board = append([]poker.Card(nil), snap.Board...)
	s.boardJokers = cloneJokers(snap.BoardJokers)
	for _, id := range snap.Players {
		if _, dup := s.hands[id]; dup {
			return nil, errorsmod.Wrapf(ErrDuplicatePlayer, "%q", id)
		}
		s.players = append(s.players, id)
		s.hands[id] = append([]poker.Card(nil), snap.Hands[id]...)
		s.jokers[id] = cloneJokers(snap.Jokers[id])
		s.scores[id] = make(map[poker.Phase]int)
		for p, v := range snap.Scores[id] {
			s.scores[id][p] = v
		}
	}
	for id, sel := range snap.Selections {
		s.selections[id] = sel.clone()
	}
	for id, v := range snap.Discarded {
		s.discarded[id] = v
	}
	return s, nil
}

func cloneJokers(in []*joker.Joker) []*joker.Joker {
	if in == nil {
		return nil
	}
	out := make([]*joker.Joker, len(in))
	for i, j := range in {
		out[i] = j.Clone()
	}
	return out
}
