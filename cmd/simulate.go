package main

import (
	"fmt"
	"io"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/joker-poker/domain/game"
	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/domain/round"
	"github.com/luca-patrignani/joker-poker/store"
)

func newSimulateCmd(a *app) *cobra.Command {
	var players, bots, maxRounds int
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a hot-seat game where everyone plays the first cards they see",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.cfg.Game.ToGame()
			if err != nil {
				return err
			}
			if bots > players {
				return fmt.Errorf("%d bots for %d players", bots, players)
			}
			g, err := game.New(cfg, game.WithSource(a.source()), game.WithLogger(a.logger))
			if err != nil {
				return err
			}
			for i := 0; i < players; i++ {
				if _, err := g.AddPlayer(fmt.Sprintf("Player %d", i+1), i >= players-bots); err != nil {
					return err
				}
			}
			tbl, err := store.Create(g, store.WithLogger(a.logger))
			if err != nil {
				return err
			}
			defer store.Close(tbl.ID())
			return simulate(cmd.OutOrStdout(), tbl, maxRounds)
		},
	}
	f := cmd.Flags()
	f.IntVar(&players, "players", 4, "number of players")
	f.IntVar(&bots, "bots", 0, "how many of the players are bots")
	f.IntVar(&maxRounds, "max-rounds", 40, "stop after this many rounds")
	return cmd
}

// simulate drives tbl through actions only, printing every round.
func simulate(w io.Writer, tbl *store.Table, maxRounds int) error {
	gameID := tbl.ID()
	if _, err := tbl.Submit(game.NewAction(gameID, game.ActionStart)); err != nil {
		return err
	}
	for played := 0; played < maxRounds; played++ {
		over := false
		tbl.View(func(g *game.Game) { over = g.IsOver() })
		if over {
			break
		}
		if _, err := tbl.Submit(game.NewAction(gameID, game.ActionNextRound)); err != nil {
			return err
		}
		if err := playPhases(tbl); err != nil {
			return err
		}
		var roundID string
		tbl.View(func(g *game.Game) { roundID = g.CurrentRound().ID() })
		done := game.NewAction(gameID, game.ActionComplete)
		done.RoundID = roundID
		if _, err := tbl.Submit(done); err != nil {
			return err
		}
		tbl.View(func(g *game.Game) {
			h := g.History()
			fmt.Fprintln(w, renderRound(h[len(h)-1], g.Players()))
		})
	}

	var out string
	tbl.View(func(g *game.Game) { out = renderStandings(g) })
	fmt.Fprintln(w, out)
	if err := tbl.Chain().Verify(); err != nil {
		return errorsmod.Wrap(err, "ledger")
	}
	fmt.Fprintf(w, "%d actions recorded\n", tbl.Chain().Len()-1)
	return nil
}

// playPhases submits a placeholder selection for every player who can act,
// phase after phase, up to the river.
func playPhases(tbl *store.Table) error {
	for {
		var (
			actions []game.Action
			river   bool
			roundID string
		)
		tbl.View(func(g *game.Game) {
			cur := g.CurrentRound()
			roundID = cur.ID()
			river = cur.State.Phase() == poker.River
			for _, p := range g.ActivePlayers() {
				if p.CanAct() {
					actions = append(actions, placeholderSelection(g.ID(), cur.State, p.ID))
				}
			}
		})
		for _, a := range actions {
			if _, err := tbl.Submit(a); err != nil {
				return err
			}
		}
		if river {
			return nil
		}
		adv := game.NewAction(tbl.ID(), game.ActionAdvance)
		adv.RoundID = roundID
		if _, err := tbl.Submit(adv); err != nil {
			return err
		}
	}
}

// placeholderSelection plays the first five cards and first three jokers
// the player can see.
func placeholderSelection(gameID string, st *round.State, playerID string) game.Action {
	cards := append(st.Hand(playerID), st.Board()...)
	jokers := append(st.Jokers(playerID), st.BoardJokers()...)
	a := game.NewAction(gameID, game.ActionSubmit)
	a.RoundID = st.ID()
	a.PlayerID = playerID
	a.Cards = cards[:round.SelectionCards]
	a.Jokers = joker.IDs(jokers[:round.SelectionJokers])
	return a
}
