package joker

import (
	"fmt"
	"sort"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// pocketPair pays when the countable hole cards hold at least two of rank.
func pocketPair(rank poker.Rank, base, step int) func(int, Context) Bonus {
	return func(level int, ctx Context) Bonus {
		hole := ctx.Countable(ctx.Hole)
		if countWhere(hole, ofRank(rank)) < 2 {
			return None()
		}
		return Additive(scaled(base, step, level))
	}
}

// holeCombo pays when the hole holds both ranks. With suited set the two
// cards must share a suit; with offsuit set they must not.
func holeCombo(a, b poker.Rank, suited, offsuit bool, base, step int) func(int, Context) Bonus {
	return func(level int, ctx Context) Bonus {
		hole := ctx.Countable(ctx.Hole)
		for _, x := range hole {
			if x.Rank() != a {
				continue
			}
			for _, y := range hole {
				if y.Rank() != b || x == y {
					continue
				}
				same := x.Suit() == y.Suit()
				if (suited && !same) || (offsuit && same) {
					continue
				}
				return Additive(scaled(base, step, level))
			}
		}
		return None()
	}
}

func pocketEffect(name string, base, step int) string {
	return fmt.Sprintf("+%d when your hole cards hold a pair of %s (+%d per level)", base, name, step)
}

var holeJokers = []Definition{
	{
		ID: "pocket_aces", Name: "Pocket Rockets", Rarity: Rare, Ownership: PlayerOwned,
		Effect:  pocketEffect("Aces", 100, 50),
		Compute: pocketPair(poker.Ace, 100, 50),
	},
	{
		ID: "pocket_kings", Name: "Cowboys", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect:  pocketEffect("Kings", 90, 45),
		Compute: pocketPair(poker.King, 90, 45),
	},
	{
		ID: "pocket_queens", Name: "Ladies", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect:  pocketEffect("Queens", 80, 40),
		Compute: pocketPair(poker.Queen, 80, 40),
	},
	{
		ID: "pocket_jacks", Name: "Fishhooks", Rarity: Common, Ownership: PlayerOwned,
		Effect:  pocketEffect("Jacks", 70, 35),
		Compute: pocketPair(poker.Jack, 70, 35),
	},
	{
		ID: "pocket_tens", Name: "Dimes", Rarity: Common, Ownership: PlayerOwned,
		Effect:  pocketEffect("Tens", 60, 30),
		Compute: pocketPair(poker.Ten, 60, 30),
	},
	{
		ID: "pocket_nines", Name: "Niners", Rarity: Common, Ownership: PlayerOwned,
		Effect:  pocketEffect("Nines", 55, 25),
		Compute: pocketPair(poker.Nine, 55, 25),
	},
	{
		ID: "pocket_eights", Name: "Snowmen", Rarity: Common, Ownership: PlayerOwned,
		Effect:  pocketEffect("Eights", 50, 25),
		Compute: pocketPair(poker.Eight, 50, 25),
	},
	{
		ID: "pocket_sevens", Name: "Hockey Sticks", Rarity: Common, Ownership: PlayerOwned,
		Effect:  pocketEffect("Sevens", 45, 20),
		Compute: pocketPair(poker.Seven, 45, 20),
	},
	{
		ID: "pocket_fives", Name: "Speed Limit", Rarity: Common, Ownership: PlayerOwned,
		Effect:  pocketEffect("Fives", 40, 20),
		Compute: pocketPair(poker.Five, 40, 20),
	},
	{
		ID: "pocket_deuces", Name: "Ducks", Rarity: Common, Ownership: PlayerOwned,
		Effect:  pocketEffect("Twos", 35, 20),
		Compute: pocketPair(poker.Two, 35, 20),
	},
	{
		ID: "big_slick", Name: "Big Slick", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect:  "+60 when your hole cards hold an Ace and a King of any suits (+30 per level)",
		Compute: holeCombo(poker.Ace, poker.King, false, false, 60, 30),
	},
	{
		ID: "suited_slick", Name: "Suited Slick", Rarity: Rare, Ownership: PlayerOwned,
		Effect:  "+90 when your hole cards hold an Ace and a King of the same suit (+45 per level)",
		Compute: holeCombo(poker.Ace, poker.King, true, false, 90, 45),
	},
	{
		ID: "big_chick", Name: "Big Chick", Rarity: Common, Ownership: PlayerOwned,
		Effect:  "+50 when your hole cards hold an Ace and a Queen (+25 per level)",
		Compute: holeCombo(poker.Ace, poker.Queen, false, false, 50, 25),
	},
	{
		ID: "texas_dolly", Name: "Texas Dolly", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect:  "+80 when your hole cards hold a Ten and a Two (+40 per level)",
		Compute: holeCombo(poker.Ten, poker.Two, false, false, 80, 40),
	},
	{
		ID: "the_hammer", Name: "The Hammer", Rarity: Rare, Ownership: PlayerOwned,
		Effect:  "+120 when your hole cards hold an offsuit Seven and Two (+60 per level)",
		Compute: holeCombo(poker.Seven, poker.Two, false, true, 120, 60),
	},
	{
		ID: "suited_connectors", Name: "Suited Connectors", Rarity: Common, Ownership: PlayerOwned,
		Effect: "+40 when two hole cards share a suit and sit next to each other in rank (+20 per level)",
		Compute: func(level int, ctx Context) Bonus {
			hole := ctx.Countable(ctx.Hole)
			for i, x := range hole {
				for _, y := range hole[i+1:] {
					if x.Suit() != y.Suit() {
						continue
					}
					d := x.ToNumber() - y.ToNumber()
					low := x.LowNumber() - y.LowNumber()
					if d == 1 || d == -1 || low == 1 || low == -1 {
						return Additive(scaled(40, 20, level))
					}
				}
			}
			return None()
		},
	},
	{
		ID: "any_pocket_pair", Name: "Pocket Pair", Rarity: Common, Ownership: PlayerOwned,
		Effect: "+30 when two of your hole cards share a rank (+15 per level)",
		Compute: func(level int, ctx Context) Bonus {
			seen := make(map[poker.Rank]bool)
			for _, c := range ctx.Countable(ctx.Hole) {
				if seen[c.Rank()] {
					return Additive(scaled(30, 15, level))
				}
				seen[c.Rank()] = true
			}
			return None()
		},
	},
	{
		ID: "top_deck", Name: "Top Deck", Rarity: Common, Ownership: PlayerOwned,
		Effect: "Your highest hole card's value times (2 + level)",
		Compute: func(level int, ctx Context) Bonus {
			hole := ctx.Countable(ctx.Hole)
			if len(hole) == 0 {
				return None()
			}
			sort.Slice(hole, func(i, j int) bool { return hole[i].ToNumber() > hole[j].ToNumber() })
			return Additive(hole[0].ToNumber() * (2 + level))
		},
	},
}
