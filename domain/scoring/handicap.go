package scoring

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// Handicap is a rule change imposed by a boss round.
type Handicap string

const (
	FaceCardDevaluation Handicap = "FACE_CARD_DEVALUATION"
	NoHearts            Handicap = "NO_HEARTS"
	NoDiamonds          Handicap = "NO_DIAMONDS"
	NoClubs             Handicap = "NO_CLUBS"
	NoSpades            Handicap = "NO_SPADES"
	NoPairs             Handicap = "NO_PAIRS"
	NoStraights         Handicap = "NO_STRAIGHTS"
	NoFlushes           Handicap = "NO_FLUSHES"
	MaxCardValue        Handicap = "MAX_CARD_VALUE"
)

var handicaps = []Handicap{
	FaceCardDevaluation, NoHearts, NoDiamonds, NoClubs, NoSpades,
	NoPairs, NoStraights, NoFlushes, MaxCardValue,
}

var descriptions = map[Handicap]string{
	FaceCardDevaluation: "Face cards count for nothing",
	NoHearts:            "Hearts count for nothing",
	NoDiamonds:          "Diamonds count for nothing",
	NoClubs:             "Clubs count for nothing",
	NoSpades:            "Spades count for nothing",
	NoPairs:             "Pairs and Two Pairs score as High Card",
	NoStraights:         "Straights are not recognised",
	NoFlushes:           "Flushes are not recognised",
	MaxCardValue:        "Cards above the cap count for nothing",
}

var blockedSuit = map[Handicap]poker.Suit{
	NoHearts:   poker.Heart,
	NoDiamonds: poker.Diamond,
	NoClubs:    poker.Club,
	NoSpades:   poker.Spade,
}

// AllHandicaps lists every handicap in a fixed order.
func AllHandicaps() []Handicap {
	out := make([]Handicap, len(handicaps))
	copy(out, handicaps)
	return out
}

func (h Handicap) Valid() bool {
	_, ok := descriptions[h]
	return ok
}

// Description is the player-facing text of the handicap.
func (h Handicap) Description() string {
	if d, ok := descriptions[h]; ok {
		return d
	}
	return string(h)
}

// HandicapSet is the active handicaps of a round. MaxCardValue is the cap
// used by the MAX_CARD_VALUE handicap.
type HandicapSet struct {
	Handicaps    []Handicap `json:"handicaps,omitempty"`
	MaxCardValue int        `json:"maxCardValue,omitempty"`
}

// Validate rejects unknown handicaps and a MAX_CARD_VALUE handicap without
// a usable cap.
func (s HandicapSet) Validate() error {
	for _, h := range s.Handicaps {
		if !h.Valid() {
			return errorsmod.Wrapf(ErrUnknownHandicap, "%q", h)
		}
	}
	if s.Has(MaxCardValue) {
		if s.MaxCardValue == 0 {
			return ErrMissingMaxCardValue
		}
		if s.MaxCardValue < int(poker.Two) || s.MaxCardValue > int(poker.Ace) {
			return errorsmod.Wrapf(ErrInvalidMaxCardValue, "%d", s.MaxCardValue)
		}
	}
	return nil
}

// Has reports whether h is active.
func (s HandicapSet) Has(h Handicap) bool {
	for _, x := range s.Handicaps {
		if x == h {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no handicap is active.
func (s HandicapSet) IsEmpty() bool { return len(s.Handicaps) == 0 }

// Restrictions translates the handicaps into what the evaluator and the
// jokers enforce.
func (s HandicapSet) Restrictions() joker.Restrictions {
	var r joker.Restrictions
	for _, h := range s.Handicaps {
		switch h {
		case FaceCardDevaluation:
			r.FaceCardsBlank = true
		case NoHearts, NoDiamonds, NoClubs, NoSpades:
			r.BlockedSuits = append(r.BlockedSuits, blockedSuit[h])
		case NoPairs:
			r.Hand.NoPairs = true
		case NoStraights:
			r.Hand.NoStraights = true
		case NoFlushes:
			r.Hand.NoFlushes = true
		case MaxCardValue:
			r.MaxCardValue = s.MaxCardValue
		}
	}
	return r
}

// Describe lists the description of every active handicap.
func (s HandicapSet) Describe() []string {
	out := make([]string, 0, len(s.Handicaps))
	for _, h := range s.Handicaps {
		if h == MaxCardValue {
			out = append(out, fmt.Sprintf("Cards above %d count for nothing", s.MaxCardValue))
			continue
		}
		out = append(out, h.Description())
	}
	return out
}
