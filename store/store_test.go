package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/joker-poker/domain/game"
	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/round"
	"github.com/luca-patrignani/joker-poker/rng"
)

func openTable(t *testing.T) *Table {
	t.Helper()
	g, err := game.New(game.DefaultConfig(), game.WithSource(rng.NewString(t.Name())))
	require.NoError(t, err)
	for _, n := range []string{"ann", "ben"} {
		_, err := g.AddPlayer(n, false)
		require.NoError(t, err)
	}
	tbl, err := Create(g)
	require.NoError(t, err)
	t.Cleanup(func() {
		Close(tbl.ID())
		Forget(tbl.ID())
	})
	return tbl
}

func TestCreateGetList(t *testing.T) {
	tbl := openTable(t)
	got, err := Get(tbl.ID())
	require.NoError(t, err)
	require.Same(t, tbl, got)
	require.Contains(t, List(), tbl)

	var g *game.Game
	tbl.View(func(x *game.Game) { g = x })
	_, err = Create(g)
	require.ErrorIs(t, err, ErrTableExists)

	_, err = Get("missing")
	require.ErrorIs(t, err, ErrTableNotFound)
}

func TestSubmitCommitsToLedger(t *testing.T) {
	tbl := openTable(t)
	block, err := tbl.Submit(game.NewAction(tbl.ID(), game.ActionStart))
	require.NoError(t, err)
	require.Equal(t, 1, block.Index)
	require.Equal(t, "START", block.Metadata.Extra["type"])

	_, err = tbl.Submit(game.NewAction(tbl.ID(), game.ActionStart))
	require.ErrorIs(t, err, ErrRejected)
	require.ErrorIs(t, err, game.ErrGameStarted)
	require.Equal(t, 2, tbl.Chain().Len(), "rejected actions are not recorded")

	_, err = tbl.Submit(game.NewAction(tbl.ID(), game.ActionNextRound))
	require.NoError(t, err)
	require.NoError(t, tbl.Chain().Verify())
}

func submitAll(t *testing.T, tbl *Table) {
	t.Helper()
	var actions []game.Action
	tbl.View(func(g *game.Game) {
		st := g.CurrentRound().State
		for _, p := range g.ActivePlayers() {
			a := game.NewAction(g.ID(), game.ActionSubmit)
			a.RoundID = st.ID()
			a.PlayerID = p.ID
			a.Cards = append(st.Hand(p.ID), st.Board()...)[:round.SelectionCards]
			a.Jokers = joker.IDs(append(st.Jokers(p.ID), st.BoardJokers()...)[:round.SelectionJokers])
			actions = append(actions, a)
		}
	})
	for _, a := range actions {
		_, err := tbl.Submit(a)
		require.NoError(t, err)
	}
}

func TestSaveAndResume(t *testing.T) {
	tbl := openTable(t)
	_, err := tbl.Submit(game.NewAction(tbl.ID(), game.ActionStart))
	require.NoError(t, err)
	_, err = tbl.Submit(game.NewAction(tbl.ID(), game.ActionNextRound))
	require.NoError(t, err)
	submitAll(t, tbl)

	require.NoError(t, Save(tbl.ID()))
	before, err := tbl.Snapshot()
	require.NoError(t, err)
	blocks := tbl.Chain().Len()

	_, err = Resume(tbl.ID(), nil)
	require.ErrorIs(t, err, ErrTableExists)

	Close(tbl.ID())
	resumed, err := Resume(tbl.ID(), []game.Option{game.WithSource(rng.NewString("resume"))})
	require.NoError(t, err)
	require.Equal(t, blocks, resumed.Chain().Len())
	after, err := resumed.Snapshot()
	require.NoError(t, err)
	require.JSONEq(t, string(before), string(after))

	var roundID string
	resumed.View(func(g *game.Game) { roundID = g.CurrentRound().ID() })
	done := game.NewAction(resumed.ID(), game.ActionComplete)
	done.RoundID = roundID
	_, err = resumed.Submit(done)
	require.NoError(t, err)
	require.NoError(t, resumed.Chain().Verify())
}

func TestResumeRejectsCorruptSaves(t *testing.T) {
	_, err := Resume("never-saved", nil)
	require.ErrorIs(t, err, ErrNotSaved)

	require.ErrorIs(t, Import("bad", []byte("{")), ErrCorruptSave)

	tbl := openTable(t)
	_, err = tbl.Submit(game.NewAction(tbl.ID(), game.ActionStart))
	require.NoError(t, err)
	require.NoError(t, Save(tbl.ID()))
	data, err := Load(tbl.ID())
	require.NoError(t, err)
	Close(tbl.ID())

	// Same ledger, different state.
	other := openTable(t)
	otherData, err := other.Snapshot()
	require.NoError(t, err)
	tampered := []byte(`{"state":` + string(otherData) + `,"blocks":` + blocksOf(t, data) + `}`)
	require.NoError(t, Import(tbl.ID(), tampered))
	_, err = Resume(tbl.ID(), nil)
	require.ErrorIs(t, err, ErrCorruptSave)
}

func blocksOf(t *testing.T, save []byte) string {
	t.Helper()
	var rec record
	require.NoError(t, json.Unmarshal(save, &rec))
	b, err := json.Marshal(rec.Blocks)
	require.NoError(t, err)
	return string(b)
}

// interruptedApply applies an action and then reports a failure, leaving
// the game half changed.
type interruptedApply struct{ *game.StateMachine }

func (m interruptedApply) Apply(payload []byte) error {
	if err := m.StateMachine.Apply(payload); err != nil {
		return err
	}
	return errors.New("apply interrupted")
}

func TestFailedApplyRollsBack(t *testing.T) {
	tbl := openTable(t)
	_, err := tbl.Submit(game.NewAction(tbl.ID(), game.ActionStart))
	require.NoError(t, err)
	_, err = tbl.Submit(game.NewAction(tbl.ID(), game.ActionNextRound))
	require.NoError(t, err)

	before, err := tbl.Snapshot()
	require.NoError(t, err)
	blocks := tbl.Chain().Len()
	var roundID string
	tbl.View(func(g *game.Game) { roundID = g.CurrentRound().ID() })

	tbl.sm = interruptedApply{tbl.sm.(*game.StateMachine)}
	adv := game.NewAction(tbl.ID(), game.ActionAdvance)
	adv.RoundID = roundID
	_, err = tbl.Submit(adv)
	require.Error(t, err)

	after, err := tbl.Snapshot()
	require.NoError(t, err)
	require.JSONEq(t, string(before), string(after))
	require.Equal(t, blocks, tbl.Chain().Len())

	require.NoError(t, Save(tbl.ID()))
	Close(tbl.ID())
	resumed, err := Resume(tbl.ID(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { Close(resumed.ID()) })
	_, err = resumed.Submit(adv)
	require.NoError(t, err)
}
