// Package scoring turns a submitted selection into a final score: the base
// score of the evaluated hand, plus additive joker bonuses, scaled by every
// multiplicative joker bonus.
package scoring

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// MaxJokers is how many jokers a selection may play.
const MaxJokers = 3

// Input is a frozen selection together with the context it is scored in.
type Input struct {
	Hole      []poker.Card
	Played    []poker.Card
	Jokers    []*joker.Joker
	Phase     poker.Phase
	Handicaps HandicapSet
}

// Contribution is the bonus of one joker.
type Contribution struct {
	JokerID string      `json:"jokerId"`
	Name    string      `json:"name"`
	Bonus   joker.Bonus `json:"bonus"`
}

// Breakdown explains how a score was reached.
type Breakdown struct {
	Evaluation    poker.HandEvaluation `json:"evaluation"`
	Description   string               `json:"description"`
	Base          int                  `json:"base"`
	Additive      int                  `json:"additive"`
	Multiplier    sdkmath.LegacyDec    `json:"multiplier"`
	Contributions []Contribution       `json:"contributions"`
	Total         int                  `json:"total"`
}

// Score evaluates the played hand under the handicaps and applies the jokers.
// Total = (base + sum of additive bonuses) * product of (1 + percent/100),
// truncated towards zero.
func Score(in Input) (Breakdown, error) {
	if len(in.Jokers) > MaxJokers {
		return Breakdown{}, errorsmod.Wrapf(ErrTooManyJokers, "%d > %d", len(in.Jokers), MaxJokers)
	}
	if err := in.Handicaps.Validate(); err != nil {
		return Breakdown{}, err
	}
	restrictions := in.Handicaps.Restrictions()
	rules := restrictions.Rules()
	eval, err := poker.EvaluateWithRules(in.Played, rules)
	if err != nil {
		return Breakdown{}, err
	}

	ctx := joker.Context{
		Hole:         in.Hole,
		Played:       in.Played,
		Phase:        in.Phase,
		Restrictions: restrictions,
	}

	b := Breakdown{
		Evaluation:  eval,
		Description: describe(in.Played, eval, rules),
		Base:        eval.BaseScore,
		Multiplier:  sdkmath.LegacyOneDec(),
	}
	for _, j := range in.Jokers {
		bonus := j.Bonus(ctx)
		b.Contributions = append(b.Contributions, Contribution{JokerID: j.ID(), Name: j.Name(), Bonus: bonus})
		switch bonus.Kind {
		case joker.KindMultiplicative:
			factor := sdkmath.LegacyOneDec().Add(sdkmath.LegacyNewDecWithPrec(int64(bonus.Value), 2))
			b.Multiplier = b.Multiplier.Mul(factor)
		default:
			b.Additive += bonus.Value
		}
	}

	b.Total = int(sdkmath.LegacyNewDec(int64(b.Base + b.Additive)).Mul(b.Multiplier).TruncateInt64())
	return b, nil
}

// describe prefers the library description and falls back to the category
// name when rules changed the category or the library refuses the hand.
func describe(cards []poker.Card, eval poker.HandEvaluation, rules poker.Rules) string {
	if !rules.IsZero() {
		return eval.HandRank.String()
	}
	d, err := poker.Describe(cards)
	if err != nil {
		return eval.HandRank.String()
	}
	return d
}
