package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
)

func cards(s string) []poker.Card { return poker.MustParseCards(s) }

func TestScoreWithoutJokers(t *testing.T) {
	b, err := Score(Input{Played: cards("AH KH QH JH 10H"), Phase: poker.River})
	require.NoError(t, err)
	require.Equal(t, poker.RoyalFlush, b.Evaluation.HandRank)
	require.Equal(t, 2000, b.Base)
	require.Equal(t, 2000, b.Total)
	require.Empty(t, b.Contributions)
}

func TestScoreAddsThenMultiplies(t *testing.T) {
	in := Input{
		Hole:   cards("8H 8S"),
		Played: cards("8H 8S 8C 2H 2D"),
		Phase:  poker.Flop,
		Jokers: []*joker.Joker{
			joker.MustNew("pocket_eights"),    // +50
			joker.MustNew("early_bird"),       // +50
			joker.MustNew("heart_multiplier"), // 2 hearts: +20%
		},
	}
	b, err := Score(in)
	require.NoError(t, err)
	require.Equal(t, poker.FullHouse, b.Evaluation.HandRank)
	require.Equal(t, 600, b.Base)
	require.Equal(t, 100, b.Additive)
	require.Len(t, b.Contributions, 3)
	require.Equal(t, joker.KindMultiplicative, b.Contributions[2].Bonus.Kind)
	require.Equal(t, (600+100)*120/100, b.Total)
}

func TestScoreMultipliersCompound(t *testing.T) {
	hm1 := joker.MustNew("heart_multiplier")
	hm2 := joker.MustNew("heart_multiplier")
	require.NoError(t, hm2.Upgrade())
	b, err := Score(Input{
		Played: cards("2H 5H 9C KC AD"),
		Jokers: []*joker.Joker{hm1, hm2},
	})
	require.NoError(t, err)
	// 50 * 1.20 * 1.30
	require.Equal(t, 78, b.Total)
}

func TestScoreRejectsBadSelections(t *testing.T) {
	_, err := Score(Input{Played: cards("AH KH QH JH")})
	require.ErrorIs(t, err, poker.ErrInvalidHandSize)

	four := []*joker.Joker{
		joker.MustNew("lucky_pair"), joker.MustNew("twin_towers"),
		joker.MustNew("rainbow"), joker.MustNew("face_value"),
	}
	_, err = Score(Input{Played: cards("AH KH QH JH 10H"), Jokers: four})
	require.ErrorIs(t, err, ErrTooManyJokers)

	_, err = Score(Input{Played: cards("AH KH QH JH 10H"), Handicaps: HandicapSet{Handicaps: []Handicap{MaxCardValue}}})
	require.ErrorIs(t, err, ErrMissingMaxCardValue)
}

func TestHandicapsAreEnforced(t *testing.T) {
	pair := cards("QH QD 10C 6S 3H")
	b, err := Score(Input{
		Played:    pair,
		Jokers:    []*joker.Joker{joker.MustNew("lucky_pair")},
		Handicaps: HandicapSet{Handicaps: []Handicap{NoPairs}},
	})
	require.NoError(t, err)
	require.Equal(t, poker.HighCard, b.Evaluation.HandRank)
	require.Equal(t, 50, b.Total)

	b, err = Score(Input{
		Played:    pair,
		Jokers:    []*joker.Joker{joker.MustNew("face_value")},
		Handicaps: HandicapSet{Handicaps: []Handicap{FaceCardDevaluation}},
	})
	require.NoError(t, err)
	require.Equal(t, poker.HighCard, b.Evaluation.HandRank, "blank queens make no pair")
	require.Equal(t, poker.Ten, b.Evaluation.HighCard.Rank())
	require.Zero(t, b.Additive)

	b, err = Score(Input{
		Played:    cards("2D 9D JD 4D 7D"),
		Jokers:    []*joker.Joker{joker.MustNew("card_counter")},
		Handicaps: HandicapSet{Handicaps: []Handicap{NoFlushes, MaxCardValue}, MaxCardValue: 7},
	})
	require.NoError(t, err)
	require.Equal(t, poker.HighCard, b.Evaluation.HandRank)
	require.Equal(t, 2+4+7, b.Additive)
}

func TestHandicapSet(t *testing.T) {
	require.NoError(t, HandicapSet{}.Validate())
	require.NoError(t, HandicapSet{Handicaps: []Handicap{MaxCardValue}, MaxCardValue: 10}.Validate())
	require.ErrorIs(t, HandicapSet{Handicaps: []Handicap{"NO_FUN"}}.Validate(), ErrUnknownHandicap)
	require.ErrorIs(t, HandicapSet{Handicaps: []Handicap{MaxCardValue}, MaxCardValue: 20}.Validate(), ErrInvalidMaxCardValue)

	set := HandicapSet{Handicaps: []Handicap{NoSpades, MaxCardValue}, MaxCardValue: 9}
	r := set.Restrictions()
	require.Equal(t, []poker.Suit{poker.Spade}, r.BlockedSuits)
	require.Equal(t, 9, r.MaxCardValue)
	require.Equal(t, []string{"Spades count for nothing", "Cards above 9 count for nothing"}, set.Describe())

	for _, h := range AllHandicaps() {
		require.True(t, h.Valid())
		require.NotEmpty(t, h.Description())
	}
}

func TestBlankCardsDoNotScore(t *testing.T) {
	royal := cards("AH KH QH JH 10H")
	tests := []struct {
		name      string
		handicaps HandicapSet
		rank      poker.HandRank
	}{
		{"no handicap", HandicapSet{}, poker.RoyalFlush},
		{"no hearts", HandicapSet{Handicaps: []Handicap{NoHearts}}, poker.HighCard},
		{"no spades", HandicapSet{Handicaps: []Handicap{NoSpades}}, poker.RoyalFlush},
		{"faces blank", HandicapSet{Handicaps: []Handicap{FaceCardDevaluation}}, poker.HighCard},
		{"capped at five", HandicapSet{Handicaps: []Handicap{MaxCardValue}, MaxCardValue: 5}, poker.HighCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Score(Input{Played: royal, Handicaps: tt.handicaps})
			require.NoError(t, err)
			require.Equal(t, tt.rank, b.Evaluation.HandRank)
			require.Equal(t, tt.rank.BaseScore(), b.Total)
		})
	}

	b, err := Score(Input{
		Played:    cards("KH KS 9S 9H 3C"),
		Handicaps: HandicapSet{Handicaps: []Handicap{NoHearts}},
	})
	require.NoError(t, err)
	require.Equal(t, poker.HighCard, b.Evaluation.HandRank)
	require.Equal(t, poker.King, b.Evaluation.HighCard.Rank())
	require.Equal(t, poker.Spade, b.Evaluation.HighCard.Suit())

	b, err = Score(Input{
		Played:    cards("7H 7D 7C 2H 2S"),
		Handicaps: HandicapSet{Handicaps: []Handicap{NoHearts}},
	})
	require.NoError(t, err)
	require.Equal(t, poker.Pair, b.Evaluation.HandRank, "two sevens and a two still count")
}
