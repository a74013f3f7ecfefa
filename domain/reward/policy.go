package reward

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/scoring"
)

// Round turns the final scores of a round into rewards and, for the
// eliminating types, an eliminated player.
type Round interface {
	Type() RoundType
	Config() Config
	ProcessResults(scores map[string]int) Result
	Describe() string
}

// Handicapped is implemented by rounds that change the scoring rules.
type Handicapped interface {
	Handicaps() scoring.HandicapSet
}

var (
	oneAndHalf = sdkmath.LegacyNewDecWithPrec(15, 1)
	two        = sdkmath.LegacyNewDec(2)
)

// reaches reports whether score >= factor * threshold.
func reaches(score, threshold int, factor sdkmath.LegacyDec) bool {
	return sdkmath.LegacyNewDec(int64(score)).GTE(sdkmath.LegacyNewDec(int64(threshold)).Mul(factor))
}

// coins is floor(score/per)*mult. Non-positive amounts yield no reward.
func coins(score, per, mult int) []Reward {
	n := score / per * mult
	if n <= 0 {
		return nil
	}
	return []Reward{Coins(n)}
}

// New builds the policy for cfg.Type. Handicaps only matter for a boss round.
func New(cfg Config, handicaps scoring.HandicapSet) (Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Type {
	case SmallBlind:
		return &smallBlind{cfg: cfg}, nil
	case BigBlind:
		return &bigBlind{cfg: cfg}, nil
	case BossBlind:
		return NewBossBlind(BossConfig{Config: cfg, Handicaps: handicaps})
	case VSRound:
		return &vsRound{cfg: cfg}, nil
	}
	return nil, errorsmod.Wrapf(ErrUnknownRoundType, "%q", cfg.Type)
}

type smallBlind struct{ cfg Config }

func (r *smallBlind) Type() RoundType { return SmallBlind }
func (r *smallBlind) Config() Config  { return r.cfg }

func (r *smallBlind) ProcessResults(scores map[string]int) Result {
	res := newResult(scores)
	t := r.cfg.RewardThreshold
	for _, id := range sortedIDs(scores) {
		s := scores[id]
		if s < t {
			continue
		}
		res.give(id, coins(s, 100, 10)...)
		if reaches(s, t, two) {
			res.give(id, JokerOf(joker.Common))
		}
	}
	return res
}

func (r *smallBlind) Describe() string {
	return fmt.Sprintf("Small Blind: score %d for coins, %d for a joker", r.cfg.RewardThreshold, 2*r.cfg.RewardThreshold)
}

type bigBlind struct{ cfg Config }

func (r *bigBlind) Type() RoundType { return BigBlind }
func (r *bigBlind) Config() Config  { return r.cfg }

func (r *bigBlind) ProcessResults(scores map[string]int) Result {
	res := newResult(scores)
	t := r.cfg.RewardThreshold
	for _, id := range sortedIDs(scores) {
		s := scores[id]
		if s < t {
			continue
		}
		res.give(id, coins(s, 75, 10)...)
		if reaches(s, t, oneAndHalf) {
			res.give(id, JokerOf(joker.Uncommon))
		}
		if reaches(s, t, two) {
			res.give(id, coins(s, 100, 15)...)
			res.give(id, JokerOf(joker.Rare))
		}
	}
	return res
}

func (r *bigBlind) Describe() string {
	return fmt.Sprintf("Big Blind: score %d for coins, more at 1.5x and 2x", r.cfg.RewardThreshold)
}

// BossConfig is a boss round with its handicaps.
type BossConfig struct {
	Config
	Handicaps scoring.HandicapSet `json:"handicaps"`
}

type bossBlind struct{ cfg BossConfig }

// NewBossBlind fails when the handicaps are inconsistent, for instance
// MAX_CARD_VALUE without a cap.
func NewBossBlind(cfg BossConfig) (Round, error) {
	if err := cfg.Handicaps.Validate(); err != nil {
		return nil, err
	}
	cfg.Type = BossBlind
	return &bossBlind{cfg: cfg}, nil
}

func (r *bossBlind) Type() RoundType { return BossBlind }
func (r *bossBlind) Config() Config  { return r.cfg.Config }

// Handicaps returns the rule changes of the boss.
func (r *bossBlind) Handicaps() scoring.HandicapSet { return r.cfg.Handicaps }

func (r *bossBlind) ProcessResults(scores map[string]int) Result {
	res := newResult(scores)
	order := ranked(scores)
	if len(order) >= 2 {
		res.EliminatedPlayerID = order[0]
		for _, id := range order {
			if scores[id] < r.cfg.Ante {
				res.EliminatedPlayerID = id
				break
			}
		}
	}
	t := r.cfg.RewardThreshold
	for _, id := range sortedIDs(scores) {
		if id == res.EliminatedPlayerID {
			continue
		}
		s := scores[id]
		res.give(id, coins(s, 50, 15)...)
		if reaches(s, t, sdkmath.LegacyOneDec()) {
			res.give(id, JokerOf(joker.Rare))
		}
		if reaches(s, t, oneAndHalf) {
			res.give(id, coins(s, 100, 10)...)
			res.give(id, JokerOf(joker.Rare))
		}
		if reaches(s, t, two) {
			res.give(id, JokerOf(joker.Legendary))
		}
	}
	return res
}

func (r *bossBlind) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Boss Blind: the lowest score below %d is eliminated", r.cfg.Ante)
	for _, d := range r.cfg.Handicaps.Describe() {
		b.WriteString("\n  - ")
		b.WriteString(d)
	}
	return b.String()
}

type vsRound struct{ cfg Config }

func (r *vsRound) Type() RoundType { return VSRound }
func (r *vsRound) Config() Config  { return r.cfg }

func (r *vsRound) ProcessResults(scores map[string]int) Result {
	res := newResult(scores)
	order := ranked(scores)
	if len(order) == 0 {
		return res
	}
	if len(order) >= 2 {
		res.EliminatedPlayerID = order[0]
	}
	best := ""
	for _, id := range sortedIDs(scores) {
		if id == res.EliminatedPlayerID {
			continue
		}
		if best == "" || scores[id] > scores[best] {
			best = id
		}
	}
	res.give(best, coins(scores[best], 50, 10)...)
	if res.EliminatedPlayerID != "" {
		res.give(best, Reward{Kind: KindJoker, FromEliminated: true})
	}
	return res
}

func (r *vsRound) Describe() string {
	return "VS Round: the lowest score is eliminated and the best score takes one of their jokers"
}
