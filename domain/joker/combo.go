package joker

import (
	"sort"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// values returns the distinct numeric values of cards in ascending order,
// listing an Ace both as 1 and as 14.
func values(cards []poker.Card) []int {
	seen := make(map[int]bool)
	for _, c := range cards {
		seen[c.ToNumber()] = true
		if c.Rank() == poker.Ace {
			seen[1] = true
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// longestRun scans sorted distinct values for the longest window whose
// neighbours differ by one, bridging at most gaps single missing ranks.
// An Ace counted at both ends of the same run only counts once.
func longestRun(vals []int, gaps int) int {
	best := 0
	for start := range vals {
		used := 0
		end := start
		for end+1 < len(vals) {
			d := vals[end+1] - vals[end]
			if d == 2 && used < gaps {
				used++
			} else if d != 1 {
				break
			}
			end++
		}
		n := end - start + 1
		if vals[start] == 1 && vals[end] == 14 {
			n--
		}
		if n > best {
			best = n
		}
	}
	return best
}

func pow3(n int) int {
	out := 1
	for i := 0; i < n; i++ {
		out *= 3
	}
	return out
}

var comboJokers = []Definition{
	{
		ID: "suit_sequence", Name: "Suit Sequence", Rarity: Rare, Ownership: PlayerOwned,
		Effect: "+20 for three consecutive cards of one suit, tripled for every extra card in the run (+10 per level)",
		Compute: func(level int, ctx Context) Bonus {
			cards := ctx.Countable(ctx.Union())
			best := 0
			for _, s := range poker.Suits {
				var suited []poker.Card
				for _, c := range cards {
					if c.Suit() == s {
						suited = append(suited, c)
					}
				}
				if n := longestRun(values(suited), 0); n > best {
					best = n
				}
			}
			if best < 3 {
				return None()
			}
			return Additive(scaled(20, 10, level) * pow3(best-3))
		},
	},
	{
		ID: "gap_runner", Name: "Gap Runner", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect: "+15 per card in a run of four or more, bridging one missing rank per two levels (+5 per level)",
		Compute: func(level int, ctx Context) Bonus {
			gaps := (level + 1) / 2
			n := longestRun(values(ctx.Countable(ctx.Union())), gaps)
			if n < 4 {
				return None()
			}
			return Additive(n * scaled(15, 5, level))
		},
	},
	{
		ID: "rainbow", Name: "Rainbow", Rarity: Common, Ownership: CommunityOwned,
		Effect: "+40 when the played hand shows all four suits (+20 per level)",
		Compute: func(level int, ctx Context) Bonus {
			suits := make(map[poker.Suit]bool)
			for _, c := range ctx.Countable(ctx.Played) {
				suits[c.Suit()] = true
			}
			if len(suits) < len(poker.Suits) {
				return None()
			}
			return Additive(scaled(40, 20, level))
		},
	},
	{
		ID: "heart_multiplier", Name: "Heart Multiplier", Rarity: Rare, Ownership: CommunityOwned,
		Effect: "Multiplies the score by 10% per Heart in the played hand (+5% per level)",
		Compute: func(level int, ctx Context) Bonus {
			hearts := countWhere(ctx.Countable(ctx.Played), ofSuit(poker.Heart))
			return Multiplicative(hearts * scaled(10, 5, level))
		},
	},
}
