package joker

import "github.com/luca-patrignani/joker-poker/domain/poker"

func duringPhase(target poker.Phase, base, step int) func(int, Context) Bonus {
	return func(level int, ctx Context) Bonus {
		if ctx.Phase != target {
			return None()
		}
		return Additive(scaled(base, step, level))
	}
}

var phaseJokers = []Definition{
	{
		ID: "early_bird", Name: "Early Bird", Rarity: Common, Ownership: CommunityOwned,
		Effect:  "+50 for hands scored on the flop (+25 per level)",
		Compute: duringPhase(poker.Flop, 50, 25),
	},
	{
		ID: "turncoat", Name: "Turncoat", Rarity: Common, Ownership: CommunityOwned,
		Effect:  "+60 for hands scored on the turn (+30 per level)",
		Compute: duringPhase(poker.Turn, 60, 30),
	},
	{
		ID: "river_rat", Name: "River Rat", Rarity: Uncommon, Ownership: CommunityOwned,
		Effect:  "+75 for hands scored on the river (+35 per level)",
		Compute: duringPhase(poker.River, 75, 35),
	},
	{
		ID: "flopped_set", Name: "Flopped Set", Rarity: Rare, Ownership: PlayerOwned,
		Effect: "+200 for Three of a Kind scored on the flop (+50 per level)",
		Compute: func(level int, ctx Context) Bonus {
			if ctx.Phase != poker.Flop {
				return None()
			}
			eval, ok := ctx.PlayedEvaluation()
			if !ok || eval.HandRank != poker.ThreeOfAKind {
				return None()
			}
			return Additive(scaled(200, 50, level))
		},
	},
}
