package ledger

import "encoding/json"

// Block records one committed action.
type Block struct {
	Index     int             `json:"index"`
	Timestamp int64           `json:"timestamp"`
	PrevHash  string          `json:"prev_hash"`
	Hash      string          `json:"hash"`
	Action    json.RawMessage `json:"action"`     // serialized domain action
	StateHash string          `json:"state_hash"` // sha256 of the snapshot after the action
	Metadata  Metadata        `json:"metadata"`
}

type Metadata struct {
	GameID   string            `json:"game_id"`
	PlayerID string            `json:"player_id,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}
