package joker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

func cards(s string) []poker.Card { return poker.MustParseCards(s) }

func TestPocketEights(t *testing.T) {
	j, err := New("pocket_eights", 1)
	require.NoError(t, err)

	for _, hole := range []string{"8H 9H", "7C 7D", "AS KS", "8C 2D", "9H 9D"} {
		assert.Zero(t, j.Bonus(Context{Hole: cards(hole)}).Value, hole)
	}

	eights := Context{Hole: cards("8H 8S")}
	first := j.Bonus(eights)
	require.Equal(t, KindAdditive, first.Kind)
	require.Equal(t, 50, first.Value)

	prev := first.Value
	for level := 2; level <= MaxLevel; level++ {
		require.NoError(t, j.Upgrade())
		got := j.Bonus(eights).Value
		require.Equal(t, 25, got-prev, "level %d", level)
		require.Equal(t, 50+25*(level-1), got)
		prev = got
	}
	require.ErrorIs(t, j.Upgrade(), ErrMaxLevelReached)
	require.Equal(t, MaxLevel, j.Level())
}

func TestNewRejectsInvalidLevels(t *testing.T) {
	for _, level := range []int{-1, 0, 6, 10} {
		_, err := New("pocket_eights", level)
		require.ErrorIs(t, err, ErrInvalidLevel)
	}
	for level := MinLevel; level <= MaxLevel; level++ {
		j, err := New("pocket_eights", level)
		require.NoError(t, err)
		require.Equal(t, level, j.Level())
	}
	_, err := New("no_such_joker", 1)
	require.ErrorIs(t, err, ErrUnknownJoker)
}

func TestFourHorsemen(t *testing.T) {
	j := MustNew("four_horsemen")
	quads := cards("9H 9D 9C 9S 2H")
	for _, hole := range []string{"", "AH AD", "2C 3C", "9H 9D"} {
		got := j.Bonus(Context{Hole: cards(hole), Played: quads})
		assert.Equal(t, 400, got.Value, "hole %q", hole)
	}
	for _, hand := range []string{"9H 9D 9C 2S 2H", "AH KH QH JH 10H", "2H 3D 4C 5S 7H"} {
		assert.Zero(t, j.Bonus(Context{Played: cards(hand)}).Value, hand)
	}
	assert.Zero(t, j.Bonus(Context{Hole: cards("9H 9D")}).Value, "no played hand")
}

func TestHeartMultiplierIsMultiplicative(t *testing.T) {
	j := MustNew("heart_multiplier")
	require.Equal(t, CommunityOwned, j.Ownership())

	b := j.Bonus(Context{Played: cards("2H 5H 9H KC AD")})
	require.Equal(t, KindMultiplicative, b.Kind)
	require.Equal(t, 30, b.Value)

	require.NoError(t, j.Upgrade())
	require.Equal(t, 45, j.Bonus(Context{Played: cards("2H 5H 9H KC AD")}).Value)

	blocked := Restrictions{BlockedSuits: []poker.Suit{poker.Heart}}
	require.Zero(t, j.Bonus(Context{Played: cards("2H 5H 9H KC AD"), Restrictions: blocked}).Value)
}

func TestHoleCombos(t *testing.T) {
	tests := []struct {
		id    string
		hole  string
		bonus int
	}{
		{"big_slick", "AH KD", 60},
		{"big_slick", "KD AH", 60},
		{"big_slick", "AH QD", 0},
		{"suited_slick", "AS KS", 90},
		{"suited_slick", "AS KH", 0},
		{"the_hammer", "7S 2H", 120},
		{"the_hammer", "7S 2S", 0},
		{"texas_dolly", "10C 2C", 80},
		{"suited_connectors", "9H 10H", 40},
		{"suited_connectors", "AH 2H", 40},
		{"suited_connectors", "9H JH", 0},
		{"any_pocket_pair", "4C 4D", 30},
		{"any_pocket_pair", "4C 5D", 0},
		{"top_deck", "AC 3D", 42},
		{"top_deck", "9C 3D", 27},
	}
	for _, tt := range tests {
		t.Run(tt.id+" "+tt.hole, func(t *testing.T) {
			got := MustNew(tt.id).Bonus(Context{Hole: cards(tt.hole)})
			require.Equal(t, tt.bonus, got.Value)
		})
	}
}

func TestHandGatedJokers(t *testing.T) {
	tests := []struct {
		id     string
		hole   string
		played string
		bonus  int
	}{
		{"twin_towers", "", "8H 8D 4C 4S AH", 80},
		{"flush_fund", "", "2D 9D JD 4D 7D", 150},
		{"straight_shooter", "", "5C 6D 7H 8S 9C", 120},
		{"royal_decree", "", "AH KH QH JH 10H", 1000},
		{"royal_decree", "", "KH QH JH 10H 9H", 0},
		{"steel_wheel", "", "AS 2S 3S 4S 5S", 750},
		{"steel_wheel", "", "6S 2S 3S 4S 5S", 0},
		{"wheel_of_fortune", "", "AS 2D 3S 4S 5S", 200},
		{"broadway", "", "AS KD QS JS 10S", 180},
		{"broadway", "", "AS KS QS JS 10S", 0},
		{"dead_mans_hand", "", "AS AC 8S 8C 9D", 300},
		{"dead_mans_hand", "", "AS AC 7S 7C 9D", 0},
		{"set_miner", "7H 2C", "7H 7D 7C KS 2H", 150},
		{"set_miner", "KH 2C", "7H 7D 7C KS 2H", 0},
		{"pocket_power", "QH QD", "QH QD 10C 6S 3H", 70},
		{"pocket_power", "QH 2D", "QH QD 10C 6S 3H", 0},
		{"hole_in_one", "2D 9D", "2D 9D JD 4D 7D", 180},
		{"hole_in_one", "2D 9C", "2D 9D JD 4D 7D", 0},
		{"nothing_doing", "", "AH 9D 6C 4S 2H", 60},
		{"lucky_pair", "", "QH QD 10C 6S 3H", 40},
		{"full_boat", "", "3H 3D 3C 9S 9H", 200},
		{"color_run", "", "KH QH JH 10H 9H", 600},
	}
	for _, tt := range tests {
		t.Run(tt.id+" "+tt.played, func(t *testing.T) {
			ctx := Context{Hole: cards(tt.hole), Played: cards(tt.played)}
			require.Equal(t, tt.bonus, MustNew(tt.id).Bonus(ctx).Value)
		})
	}
}

func TestCountingJokers(t *testing.T) {
	hole := cards("KH 7H")
	played := cards("KH 7H 7C QD AS")
	ctx := Context{Hole: hole, Played: played}

	assert.Equal(t, 2*10, MustNew("face_value").Bonus(ctx).Value)
	assert.Equal(t, 25, MustNew("ace_collector").Bonus(ctx).Value)
	assert.Equal(t, 2*17, MustNew("lucky_sevens").Bonus(ctx).Value)
	assert.Equal(t, 2*12, MustNew("heartfelt").Bonus(ctx).Value)
	assert.Equal(t, 1*15, MustNew("royal_court").Bonus(ctx).Value)
	assert.Equal(t, 3*5, MustNew("community_chest").Bonus(ctx).Value)
	assert.Equal(t, 13+7+7+12+14, MustNew("card_counter").Bonus(ctx).Value)
	assert.Equal(t, 3*6, MustNew("odd_todd").Bonus(ctx).Value)
	assert.Zero(t, MustNew("even_steven").Bonus(ctx).Value)

	faceless := ctx
	faceless.Restrictions = Restrictions{FaceCardsBlank: true}
	assert.Zero(t, MustNew("face_value").Bonus(faceless).Value)

	capped := ctx
	capped.Restrictions = Restrictions{MaxCardValue: 10}
	assert.Equal(t, 7+7, MustNew("card_counter").Bonus(capped).Value)
}

func TestPhaseJokers(t *testing.T) {
	early := MustNew("early_bird")
	assert.Equal(t, 50, early.Bonus(Context{Phase: poker.Flop}).Value)
	assert.Zero(t, early.Bonus(Context{Phase: poker.Turn}).Value)
	assert.Equal(t, 75, MustNew("river_rat").Bonus(Context{Phase: poker.River}).Value)

	set := MustNew("flopped_set")
	trips := cards("7H 7D 7C KS 2H")
	assert.Equal(t, 200, set.Bonus(Context{Phase: poker.Flop, Played: trips}).Value)
	assert.Zero(t, set.Bonus(Context{Phase: poker.River, Played: trips}).Value)
}

func TestSuitSequenceTriples(t *testing.T) {
	j := MustNew("suit_sequence")
	assert.Equal(t, 20, j.Bonus(Context{Hole: cards("5H 6H"), Played: cards("7H 2C 9D JS KS")}).Value)
	assert.Equal(t, 60, j.Bonus(Context{Hole: cards("5H 6H"), Played: cards("7H 8H 9D JS KS")}).Value)
	assert.Equal(t, 180, j.Bonus(Context{Hole: cards("5H 6H"), Played: cards("7H 8H 9H JS KS")}).Value)
	assert.Equal(t, 20, j.Bonus(Context{Hole: cards("AS 2S"), Played: cards("3S 8H 9D JC KD")}).Value)
	assert.Zero(t, j.Bonus(Context{Hole: cards("5H 6C"), Played: cards("7H 8C 9D JS KS")}).Value)
}

func TestGapRunnerToleranceGrowsWithLevel(t *testing.T) {
	ctx := Context{Hole: cards("2C 3D"), Played: cards("5H 6S 8C KD KH")}
	j := MustNew("gap_runner")
	// 2 3 _ 5 6: one gap bridged at level 1
	assert.Equal(t, 4*15, j.Bonus(ctx).Value)

	require.NoError(t, j.Upgrade())
	require.NoError(t, j.Upgrade())
	// level 3 bridges two gaps: 2 3 _ 5 6 _ 8
	assert.Equal(t, 5*25, j.Bonus(ctx).Value)

	assert.Zero(t, MustNew("gap_runner").Bonus(Context{Hole: cards("2C 9D"), Played: cards("5H KS 8C KD KH")}).Value)
}

func TestRainbow(t *testing.T) {
	j := MustNew("rainbow")
	assert.Equal(t, 40, j.Bonus(Context{Played: cards("2C 3D 4H 5S 9S")}).Value)
	assert.Zero(t, j.Bonus(Context{Played: cards("2C 3D 4H 5H 9H")}).Value)
}

func TestJokerJSON(t *testing.T) {
	j, err := New("four_horsemen", 3)
	require.NoError(t, err)
	b, err := json.Marshal(j)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"four_horsemen","level":3}`, string(b))

	var back Joker
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, "Four Horsemen", back.Name())
	require.Equal(t, 3, back.Level())

	require.ErrorIs(t, json.Unmarshal([]byte(`{"id":"four_horsemen","level":9}`), &back), ErrInvalidLevel)
}

func TestCategoryJokersSeeBlankCards(t *testing.T) {
	flush := cards("2D 9D JD 4D 7D")
	j := MustNew("flush_fund")
	assert.Equal(t, 150, j.Bonus(Context{Played: flush}).Value)

	noDiamonds := Context{Played: flush, Restrictions: Restrictions{BlockedSuits: []poker.Suit{poker.Diamond}}}
	assert.Zero(t, j.Bonus(noDiamonds).Value)
	assert.Equal(t, 60, MustNew("nothing_doing").Bonus(noDiamonds).Value)

	r := Restrictions{Hand: poker.Rules{NoPairs: true}}
	assert.Nil(t, r.Rules().Blank)
	r.MaxCardValue = 9
	rules := r.Rules()
	assert.True(t, rules.NoPairs)
	assert.True(t, rules.Blank(poker.MustCard(poker.Club, poker.Ten)))
	assert.False(t, rules.Blank(poker.MustCard(poker.Club, poker.Nine)))
}
