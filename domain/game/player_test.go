package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
)

func TestPlayerSelections(t *testing.T) {
	p := NewPlayer("id", "alice", 0, false)
	require.Equal(t, StatusWaiting, p.Status)

	require.ErrorIs(t, p.SetSelectedCards(poker.MustParseCards("AH KH")), ErrInvalidSelectionSize)
	require.NoError(t, p.SetSelectedCards(poker.MustParseCards("AH KH QH JH 10H")))
	require.Len(t, p.SelectedCards, 5)

	four := []*joker.Joker{joker.MustNew("rainbow"), joker.MustNew("broadway"), joker.MustNew("lucky_pair"), joker.MustNew("face_value")}
	require.ErrorIs(t, p.SetSelectedJokers(four), ErrTooManyModifiers)
	require.NoError(t, p.SetSelectedJokers(four[:3]))
	require.NoError(t, p.SetSelectedJokers(nil))
}

func TestPlayerStatusTransitions(t *testing.T) {
	p := NewPlayer("id", "bob", 1, true)
	require.False(t, p.CanAct())
	p.Fold()
	require.Equal(t, StatusWaiting, p.Status)

	p.ResetForNewRound()
	require.Equal(t, StatusPlaying, p.Status)
	require.True(t, p.CanAct())
	require.True(t, p.IsInHand())

	p.Fold()
	require.Equal(t, StatusFolded, p.Status)
	require.False(t, p.CanAct())
	p.Fold()
	require.Equal(t, StatusWaiting, p.Status)

	p.ResetForNewRound()
	require.True(t, p.CanAct())

	p.Hand = poker.MustParseCards("2C 3C")
	p.Eliminate()
	require.Empty(t, p.Hand)
	require.True(t, p.IsEliminated())
	p.Fold()
	require.Equal(t, StatusEliminated, p.Status)
	p.ResetForNewRound()
	require.Equal(t, StatusEliminated, p.Status, "elimination is sticky")
	require.False(t, p.IsInHand())
}

func TestPlayerJokers(t *testing.T) {
	p := NewPlayer("id", "carol", 2, false)
	require.ErrorIs(t, p.ActivateJoker("rainbow"), ErrJokerNotOwned)

	low := joker.MustNew("lucky_pair")
	high, err := joker.New("broadway", 3)
	require.NoError(t, err)
	p.AddJoker(low)
	p.AddJoker(high)
	require.NoError(t, p.ActivateJoker("broadway"))
	require.NoError(t, p.ActivateJoker("broadway"))
	require.Len(t, p.ActiveJokers, 1)

	j, ok := p.TakeBestJoker()
	require.True(t, ok)
	require.Same(t, high, j)
	require.Empty(t, p.ActiveJokers)
	require.Equal(t, []string{"lucky_pair"}, joker.IDs(p.OwnedJokers))

	_, _ = p.TakeBestJoker()
	_, ok = p.TakeBestJoker()
	require.False(t, ok)
}

func TestPlayerResetKeepsCoinsAndJokers(t *testing.T) {
	p := NewPlayer("id", "dave", 0, false)
	p.AddCoins(40)
	p.AddJoker(joker.MustNew("rainbow"))
	p.RoundScore = 900
	p.ResetForNewRound()
	require.Equal(t, 40, p.Coins)
	require.Len(t, p.OwnedJokers, 1)
	require.Zero(t, p.RoundScore)
}
