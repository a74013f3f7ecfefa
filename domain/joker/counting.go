package joker

import "github.com/luca-patrignani/joker-poker/domain/poker"

// perCard pays base (+step per level) for every countable card matching pred.
func perCard(pred func(poker.Card) bool, source func(Context) []poker.Card, base, step int) func(int, Context) Bonus {
	return func(level int, ctx Context) Bonus {
		n := countWhere(ctx.Countable(source(ctx)), pred)
		return Additive(n * scaled(base, step, level))
	}
}

func union(ctx Context) []poker.Card  { return ctx.Union() }
func played(ctx Context) []poker.Card { return ctx.Played }
func board(ctx Context) []poker.Card  { return ctx.BoardPlayed() }

func isFace(c poker.Card) bool { return c.IsFace() }

var countingJokers = []Definition{
	{
		ID: "face_value", Name: "Face Value", Rarity: Common, Ownership: PlayerOwned,
		Effect:  "+10 per face card among your hole and played cards (+5 per level)",
		Compute: perCard(isFace, union, 10, 5),
	},
	{
		ID: "ace_collector", Name: "Ace Collector", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect:  "+25 per Ace in the played hand (+10 per level)",
		Compute: perCard(ofRank(poker.Ace), played, 25, 10),
	},
	{
		ID: "lucky_sevens", Name: "Lucky Sevens", Rarity: Uncommon, Ownership: PlayerOwned,
		Effect:  "+17 per Seven among your hole and played cards (+7 per level)",
		Compute: perCard(ofRank(poker.Seven), union, 17, 7),
	},
	{
		ID: "heartfelt", Name: "Heartfelt", Rarity: Common, Ownership: PlayerOwned,
		Effect:  "+12 per Heart among your hole and played cards (+6 per level)",
		Compute: perCard(ofSuit(poker.Heart), union, 12, 6),
	},
	{
		ID: "diamond_hands", Name: "Diamond Hands", Rarity: Common, Ownership: PlayerOwned,
		Effect:  "+12 per Diamond among your hole and played cards (+6 per level)",
		Compute: perCard(ofSuit(poker.Diamond), union, 12, 6),
	},
	{
		ID: "club_house", Name: "Club House", Rarity: Common, Ownership: PlayerOwned,
		Effect:  "+12 per Club among your hole and played cards (+6 per level)",
		Compute: perCard(ofSuit(poker.Club), union, 12, 6),
	},
	{
		ID: "spade_work", Name: "Spade Work", Rarity: Common, Ownership: PlayerOwned,
		Effect:  "+12 per Spade among your hole and played cards (+6 per level)",
		Compute: perCard(ofSuit(poker.Spade), union, 12, 6),
	},
	{
		ID: "low_ball", Name: "Low Ball", Rarity: Common, Ownership: PlayerOwned,
		Effect: "+8 per Two through Five in the played hand (+4 per level)",
		Compute: perCard(func(c poker.Card) bool {
			return c.Rank() >= poker.Two && c.Rank() <= poker.Five
		}, played, 8, 4),
	},
	{
		ID: "even_steven", Name: "Even Steven", Rarity: Common, Ownership: PlayerOwned,
		Effect: "+6 per even card (2, 4, 6, 8, 10) in the played hand (+3 per level)",
		Compute: perCard(func(c poker.Card) bool {
			return !c.IsFace() && c.Rank() != poker.Ace && c.ToNumber()%2 == 0
		}, played, 6, 3),
	},
	{
		ID: "odd_todd", Name: "Odd Todd", Rarity: Common, Ownership: PlayerOwned,
		Effect: "+6 per odd card (A, 3, 5, 7, 9) in the played hand (+3 per level)",
		Compute: perCard(func(c poker.Card) bool {
			return c.Rank() == poker.Ace || (!c.IsFace() && c.ToNumber()%2 == 1)
		}, played, 6, 3),
	},
	{
		ID: "royal_court", Name: "Royal Court", Rarity: Uncommon, Ownership: CommunityOwned,
		Effect:  "+15 per face card played from the board (+5 per level)",
		Compute: perCard(isFace, board, 15, 5),
	},
	{
		ID: "community_chest", Name: "Community Chest", Rarity: Common, Ownership: CommunityOwned,
		Effect:  "+5 per board card in the played hand (+5 per level)",
		Compute: perCard(func(poker.Card) bool { return true }, board, 5, 5),
	},
	{
		ID: "card_counter", Name: "Card Counter", Rarity: Rare, Ownership: PlayerOwned,
		Effect: "The total value of the played cards (Ace = 14) times level",
		Compute: func(level int, ctx Context) Bonus {
			sum := 0
			for _, c := range ctx.Countable(ctx.Played) {
				sum += c.ToNumber()
			}
			return Additive(sum * level)
		},
	},
}
