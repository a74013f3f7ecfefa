package reward

import (
	"sort"

	errorsmod "cosmossdk.io/errors"

	"github.com/luca-patrignani/joker-poker/domain/joker"
)

// RoundType selects the reward policy of a round.
type RoundType string

const (
	SmallBlind RoundType = "SMALL_BLIND"
	BigBlind   RoundType = "BIG_BLIND"
	BossBlind  RoundType = "BOSS_BLIND"
	VSRound    RoundType = "VS_ROUND"
)

func (t RoundType) Valid() bool {
	switch t {
	case SmallBlind, BigBlind, BossBlind, VSRound:
		return true
	}
	return false
}

// Eliminates reports whether the policy removes a player.
func (t RoundType) Eliminates() bool { return t == BossBlind || t == VSRound }

// ParseRoundType validates a round type name.
func ParseRoundType(s string) (RoundType, error) {
	t := RoundType(s)
	if !t.Valid() {
		return "", errorsmod.Wrapf(ErrUnknownRoundType, "%q", s)
	}
	return t, nil
}

// Config is what a policy needs to judge a round.
type Config struct {
	Type            RoundType `json:"type"`
	Ante            int       `json:"ante"`
	RewardThreshold int       `json:"rewardThreshold"`
	RoundNumber     int       `json:"roundNumber"`
}

// Validate rejects negative amounts and unknown types.
func (c Config) Validate() error {
	if !c.Type.Valid() {
		return errorsmod.Wrapf(ErrUnknownRoundType, "%q", c.Type)
	}
	if c.Ante < 0 || c.RewardThreshold < 0 || c.RoundNumber < 0 {
		return errorsmod.Wrapf(ErrInvalidConfig, "ante %d threshold %d round %d", c.Ante, c.RewardThreshold, c.RoundNumber)
	}
	return nil
}

type Kind string

const (
	KindCoins Kind = "COINS"
	KindJoker Kind = "JOKER"
)

// Reward is one prize. A joker reward either names the rarity to draw from
// the pool or is taken from the eliminated player.
type Reward struct {
	Kind           Kind         `json:"kind"`
	Coins          int          `json:"coins,omitempty"`
	Rarity         joker.Rarity `json:"rarity,omitempty"`
	FromEliminated bool         `json:"fromEliminated,omitempty"`
}

func Coins(n int) Reward { return Reward{Kind: KindCoins, Coins: n} }

func JokerOf(r joker.Rarity) Reward { return Reward{Kind: KindJoker, Rarity: r} }

// Result is the outcome of a round.
type Result struct {
	PlayerScores       map[string]int      `json:"playerScores"`
	Rewards            map[string][]Reward `json:"rewards"`
	EliminatedPlayerID string              `json:"eliminatedPlayerId,omitempty"`
}

// Eliminated returns the eliminated player, if any.
func (r Result) Eliminated() (string, bool) {
	return r.EliminatedPlayerID, r.EliminatedPlayerID != ""
}

// TotalCoins sums the coin rewards of a player.
func (r Result) TotalCoins(playerID string) int {
	total := 0
	for _, rw := range r.Rewards[playerID] {
		if rw.Kind == KindCoins {
			total += rw.Coins
		}
	}
	return total
}

func newResult(scores map[string]int) Result {
	res := Result{
		PlayerScores: make(map[string]int, len(scores)),
		Rewards:      make(map[string][]Reward),
	}
	for id, s := range scores {
		res.PlayerScores[id] = s
	}
	return res
}

func (r *Result) give(playerID string, rw ...Reward) {
	if len(rw) == 0 {
		return
	}
	r.Rewards[playerID] = append(r.Rewards[playerID], rw...)
}

// ranked returns the player ids by ascending score, ties by ascending id.
func ranked(scores map[string]int) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] < scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}

// sortedIDs returns the player ids in ascending order.
func sortedIDs(scores map[string]int) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
