package joker

import "github.com/luca-patrignani/joker-poker/domain/poker"

// category pays when the played hand evaluates to exactly rank.
func category(rank poker.HandRank, base, step int) func(int, Context) Bonus {
	return func(level int, ctx Context) Bonus {
		eval, ok := ctx.PlayedEvaluation()
		if !ok || eval.HandRank != rank {
			return None()
		}
		return Additive(scaled(base, step, level))
	}
}

var handJokers = []Definition{
	{
		ID: "four_horsemen", Name: "Four Horsemen", Rarity: Rare, Ownership: PlayerOwned,
		Effect:  "+400 when the played hand is Four of a Kind (+100 per level)",
		Compute: category(poker.FourOfAKind, 400, 100),
	},
	{
		ID: "twin_towers", Name: "Twin Towers", Rarity: Common, Ownership: PlayerOwned,
		Effect:  "+80 when the played hand is Two Pair (+40 per level)",
		Compute: category(poker.TwoPair, 80, 40),
	},
	{
		ID: "flush_fund", Name: "Flush Fund", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect:  "+150 when the played hand is a Flush (+50 per level)",
		Compute: category(poker.Flush, 150, 50),
	},
	{
		ID: "straight_shooter", Name: "Straight Shooter", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect:  "+120 when the played hand is a Straight (+40 per level)",
		Compute: category(poker.Straight, 120, 40),
	},
	{
		ID: "royal_decree", Name: "Royal Decree", Rarity: Legendary, Ownership: PlayerOwned,
		Effect:  "+1000 when the played hand is a Royal Flush (+250 per level)",
		Compute: category(poker.RoyalFlush, 1000, 250),
	},
	{
		ID: "full_boat", Name: "Full Boat", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect:  "+200 when the played hand is a Full House (+50 per level)",
		Compute: category(poker.FullHouse, 200, 50),
	},
	{
		ID: "color_run", Name: "Color Run", Rarity: Legendary, Ownership: PlayerOwned,
		Effect:  "+600 when the played hand is a Straight Flush (+150 per level)",
		Compute: category(poker.StraightFlush, 600, 150),
	},
	{
		ID: "nothing_doing", Name: "Nothing Doing", Rarity: Common, Ownership: PlayerOwned,
		Effect:  "+60 when the played hand is only a High Card (+30 per level)",
		Compute: category(poker.HighCard, 60, 30),
	},
	{
		ID: "lucky_pair", Name: "Lucky Pair", Rarity: Common, Ownership: PlayerOwned,
		Effect:  "+40 when the played hand is a Pair (+20 per level)",
		Compute: category(poker.Pair, 40, 20),
	},
	{
		ID: "steel_wheel", Name: "Steel Wheel", Rarity: Legendary, Ownership: PlayerOwned,
		Effect: "+750 when the played hand is the A-2-3-4-5 Straight Flush (+250 per level)",
		Compute: func(level int, ctx Context) Bonus {
			eval, ok := ctx.PlayedEvaluation()
			if !ok || eval.HandRank != poker.StraightFlush || !eval.IsWheel() {
				return None()
			}
			return Additive(scaled(750, 250, level))
		},
	},
	{
		ID: "wheel_of_fortune", Name: "Wheel of Fortune", Rarity: Rare, Ownership: PlayerOwned,
		Effect: "+200 when the played hand is the A-2-3-4-5 Straight (+50 per level)",
		Compute: func(level int, ctx Context) Bonus {
			eval, ok := ctx.PlayedEvaluation()
			if !ok || eval.HandRank != poker.Straight || !eval.IsWheel() {
				return None()
			}
			return Additive(scaled(200, 50, level))
		},
	},
	{
		ID: "broadway", Name: "Broadway", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect: "+180 when the played hand is a Ten-to-Ace Straight (+60 per level)",
		Compute: func(level int, ctx Context) Bonus {
			eval, ok := ctx.PlayedEvaluation()
			if !ok || eval.HandRank != poker.Straight || eval.HighCard.Rank() != poker.Ace {
				return None()
			}
			return Additive(scaled(180, 60, level))
		},
	},
	{
		ID: "dead_mans_hand", Name: "Dead Man's Hand", Rarity: Unique, Ownership: PlayerOwned,
		Effect: "+300 when the played hand is Two Pair of Aces and Eights (+100 per level)",
		Compute: func(level int, ctx Context) Bonus {
			eval, ok := ctx.PlayedEvaluation()
			if !ok || eval.HandRank != poker.TwoPair || eval.SecondHighCard == nil {
				return None()
			}
			if eval.HighCard.Rank() != poker.Ace || eval.SecondHighCard.Rank() != poker.Eight {
				return None()
			}
			return Additive(scaled(300, 100, level))
		},
	},
	{
		ID: "set_miner", Name: "Set Miner", Rarity: Rare, Ownership: PlayerOwned,
		Effect: "+150 when the played hand is Three of a Kind built on one of your played hole cards (+50 per level)",
		Compute: func(level int, ctx Context) Bonus {
			eval, ok := ctx.PlayedEvaluation()
			if !ok || eval.HandRank != poker.ThreeOfAKind {
				return None()
			}
			for _, c := range ctx.Hole {
				if c.Rank() == eval.HighCard.Rank() && poker.ContainsCard(ctx.Played, c) {
					return Additive(scaled(150, 50, level))
				}
			}
			return None()
		},
	},
	{
		ID: "pocket_power", Name: "Pocket Power", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect: "+70 when the played hand is a Pair made from your hole cards (+35 per level)",
		Compute: func(level int, ctx Context) Bonus {
			eval, ok := ctx.PlayedEvaluation()
			if !ok || eval.HandRank != poker.Pair {
				return None()
			}
			pairRank := eval.HighCard.Rank()
			n := 0
			for _, c := range ctx.Hole {
				if c.Rank() == pairRank && poker.ContainsCard(ctx.Played, c) {
					n++
				}
			}
			if n < 2 {
				return None()
			}
			return Additive(scaled(70, 35, level))
		},
	},
	{
		ID: "hole_in_one", Name: "Hole in One", Rarity: Rare, Ownership: PlayerOwned,
		Effect: "+180 when the played hand is a Flush using at least two of your hole cards (+60 per level)",
		Compute: func(level int, ctx Context) Bonus {
			eval, ok := ctx.PlayedEvaluation()
			if !ok || eval.HandRank != poker.Flush || ctx.HolePlayed() < 2 {
				return None()
			}
			return Additive(scaled(180, 60, level))
		},
	},
}
