package game

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

type ActionType string

const (
	ActionStart     ActionType = "START"
	ActionNextRound ActionType = "NEXT_ROUND"
	ActionSubmit    ActionType = "SUBMIT"
	ActionDiscard   ActionType = "DISCARD"
	ActionFold      ActionType = "FOLD"
	ActionAdvance   ActionType = "ADVANCE"
	ActionComplete  ActionType = "COMPLETE"
)

// Action is a request to change a game. RoundID is required for actions on
// the round in progress.
type Action struct {
	ID       string       `json:"id"`
	GameID   string       `json:"gameId"`
	RoundID  string       `json:"roundId,omitempty"`
	PlayerID string       `json:"playerId,omitempty"`
	Type     ActionType   `json:"type"`
	Cards    []poker.Card `json:"cards,omitempty"`
	Jokers   []string     `json:"jokers,omitempty"`
	Indices  []int        `json:"indices,omitempty"`
}

// NewAction fills in a fresh id.
func NewAction(gameID string, typ ActionType) Action {
	return Action{ID: uuid.NewString(), GameID: gameID, Type: typ}
}

// ToPayload serializes the action.
func (a *Action) ToPayload() ([]byte, error) {
	return json.Marshal(a)
}

// FromPayload deserializes an action.
func FromPayload(data []byte) (*Action, error) {
	var a Action
	err := json.Unmarshal(data, &a)
	return &a, err
}
