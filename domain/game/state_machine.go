package game

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	"github.com/luca-patrignani/joker-poker/domain/round"
)

// StateMachine validates and applies serialized actions on a game.
type StateMachine struct {
	game *Game
	opts []Option
}

// NewStateMachine wraps g. opts are reused when a snapshot is restored; by
// default a restored game keeps the source and logger of g.
func NewStateMachine(g *Game, opts ...Option) *StateMachine {
	if g != nil && len(opts) == 0 {
		opts = []Option{WithSource(g.src), WithLogger(g.logger)}
	}
	return &StateMachine{game: g, opts: opts}
}

// Validate checks whether an action is legal in the current state.
func (sm *StateMachine) Validate(actionData []byte) error {
	a, err := FromPayload(actionData)
	if err != nil {
		return errorsmod.Wrapf(ErrMalformedAction, "%v", err)
	}
	g := sm.game
	if a.GameID != g.id {
		return errorsmod.Wrapf(ErrWrongGame, "expected %s, got %s", g.id, a.GameID)
	}

	switch a.Type {
	case ActionStart:
		if g.started {
			return ErrGameStarted
		}
		if len(g.players) < g.cfg.MinPlayers {
			return errorsmod.Wrapf(ErrNotEnoughPlayers, "%d < %d", len(g.players), g.cfg.MinPlayers)
		}
		return nil
	case ActionNextRound:
		switch {
		case !g.started:
			return ErrNotStarted
		case g.IsOver():
			return ErrGameOver
		case g.current != nil:
			return ErrRoundInProgress
		}
		return nil
	case ActionSubmit, ActionDiscard, ActionFold, ActionAdvance, ActionComplete:
	default:
		return errorsmod.Wrapf(ErrUnknownAction, "%q", a.Type)
	}

	// Round actions need the current round.
	if g.current == nil {
		return ErrNoRound
	}
	if a.RoundID != g.current.ID() {
		return errorsmod.Wrapf(ErrWrongRound, "expected %s, got %s", g.current.ID(), a.RoundID)
	}
	state := g.current.State

	switch a.Type {
	case ActionAdvance:
		return state.CheckAdvance()
	case ActionComplete:
		return state.CheckComplete()
	}

	// Player actions need a player who can act.
	p, err := g.actor(a.PlayerID)
	if err != nil {
		return err
	}
	switch a.Type {
	case ActionSubmit:
		if len(a.Cards) != round.SelectionCards || len(a.Jokers) != round.SelectionJokers {
			return errorsmod.Wrapf(round.ErrInvalidSelection, "got %d cards and %d jokers", len(a.Cards), len(a.Jokers))
		}
		if state.Stage() == round.StageComplete {
			return round.ErrRoundComplete
		}
		jokers, err := g.ResolveJokers(a.PlayerID, a.Jokers)
		if err != nil {
			return err
		}
		return state.ValidateAvailability(a.PlayerID, round.Selection{Cards: a.Cards, Jokers: jokers}, p.OwnedJokers)
	case ActionDiscard:
		return state.CheckDiscard(a.PlayerID, a.Indices)
	}
	return nil
}

// Apply applies a validated action.
func (sm *StateMachine) Apply(actionData []byte) error {
	a, err := FromPayload(actionData)
	if err != nil {
		return errorsmod.Wrapf(ErrMalformedAction, "%v", err)
	}
	g := sm.game
	switch a.Type {
	case ActionStart:
		err = g.Start()
	case ActionNextRound:
		_, err = g.NextRound()
	case ActionSubmit:
		_, err = g.Submit(a.PlayerID, a.Cards, a.Jokers)
	case ActionDiscard:
		_, err = g.Discard(a.PlayerID, a.Indices)
	case ActionFold:
		err = g.Fold(a.PlayerID)
	case ActionAdvance:
		err = g.AdvancePhase()
	case ActionComplete:
		_, err = g.CompleteRound()
	default:
		err = errorsmod.Wrapf(ErrUnknownAction, "%q", a.Type)
	}
	return err
}

// Snapshot serializes the whole game.
func (sm *StateMachine) Snapshot() ([]byte, error) {
	return json.Marshal(sm.game.State())
}

// Restore replaces the game with the one in a snapshot.
func (sm *StateMachine) Restore(data []byte) error {
	var st GameState
	if err := json.Unmarshal(data, &st); err != nil {
		return errorsmod.Wrapf(ErrMalformedAction, "snapshot: %v", err)
	}
	g, err := Restore(st, sm.opts...)
	if err != nil {
		return err
	}
	sm.game = g
	return nil
}

func (sm *StateMachine) FindPlayerIndex(playerID string) int {
	for i, p := range sm.game.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// Game exposes the game; callers must not mutate it directly.
func (sm *StateMachine) Game() *Game {
	return sm.game
}
