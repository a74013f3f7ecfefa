package game

import (
	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/domain/reward"
	"github.com/luca-patrignani/joker-poker/domain/round"
	"github.com/luca-patrignani/joker-poker/domain/scoring"
)

// RoundState is the plain data of the round in progress.
type RoundState struct {
	Number    int                 `json:"number"`
	Config    reward.Config       `json:"config"`
	Handicaps scoring.HandicapSet `json:"handicaps"`
	Table     round.Snapshot      `json:"table"`
}

// GameState is the plain data of a Game. It is what persistence stores.
type GameState struct {
	ID            string             `json:"id"`
	Config        Config             `json:"config"`
	Players       []*Player          `json:"players"`
	Started       bool               `json:"started"`
	CyclePosition int                `json:"cyclePosition"`
	Ante          int                `json:"ante"`
	RoundNumber   int                `json:"roundNumber"`
	Pool          joker.PoolSnapshot `json:"pool"`
	Round         *RoundState        `json:"round,omitempty"`
	History       []RoundRecord      `json:"history,omitempty"`
}

func (g *Game) State() GameState {
	st := GameState{
		ID:            g.id,
		Config:        g.cfg,
		Started:       g.started,
		CyclePosition: g.cycle.Position(),
		Ante:          g.ante,
		RoundNumber:   g.roundNumber,
		Pool:          g.pool.Snapshot(),
		History:       g.History(),
	}
	for _, p := range g.players {
		st.Players = append(st.Players, clonePlayer(p))
	}
	if g.current != nil {
		st.Round = &RoundState{
			Number:    g.current.Number,
			Config:    g.current.Policy.Config(),
			Handicaps: g.current.Handicaps(),
			Table:     g.current.State.Snapshot(),
		}
	}
	return st
}

// Restore rebuilds a game from its state. The id always comes from st.
func Restore(st GameState, opts ...Option) (*Game, error) {
	g, err := newGame(st.Config, opts)
	if err != nil {
		return nil, err
	}
	cycle, err := RestoreCycle(st.CyclePosition)
	if err != nil {
		g.logger.Error("round cycle corrupted", "game", st.ID, "position", st.CyclePosition)
		return nil, err
	}
	g.id = st.ID
	g.cycle = cycle
	g.started = st.Started
	g.ante = st.Ante
	g.roundNumber = st.RoundNumber
	g.pool = joker.RestorePool(g.src, st.Pool)
	g.history = append([]RoundRecord(nil), st.History...)
	for _, p := range st.Players {
		g.players = append(g.players, clonePlayer(p))
	}
	if st.Round != nil {
		policy, err := reward.New(st.Round.Config, st.Round.Handicaps)
		if err != nil {
			return nil, err
		}
		state, err := round.Restore(st.Round.Table, round.WithSource(g.src), round.WithLogger(g.logger))
		if err != nil {
			return nil, err
		}
		g.current = &Round{Number: st.Round.Number, Policy: policy, State: state}
	}
	return g, nil
}

func clonePlayer(p *Player) *Player {
	c := *p
	c.Hand = append([]poker.Card(nil), p.Hand...)
	c.SelectedCards = append([]poker.Card(nil), p.SelectedCards...)
	c.OwnedJokers = nil
	c.ActiveJokers = nil
	c.SelectedJokers = nil
	// Active and selected jokers keep pointing into the owned list when
	// they came from it.
	index := make(map[*joker.Joker]*joker.Joker, len(p.OwnedJokers))
	for _, j := range p.OwnedJokers {
		cj := j.Clone()
		index[j] = cj
		c.OwnedJokers = append(c.OwnedJokers, cj)
	}
	pick := func(j *joker.Joker) *joker.Joker {
		if cj, ok := index[j]; ok {
			return cj
		}
		return j.Clone()
	}
	for _, j := range p.ActiveJokers {
		c.ActiveJokers = append(c.ActiveJokers, pick(j))
	}
	for _, j := range p.SelectedJokers {
		c.SelectedJokers = append(c.SelectedJokers, pick(j))
	}
	return &c
}
