// Package store keeps the live tables of the process and their saved
// snapshots, keyed by game id.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	errorsmod "cosmossdk.io/errors"
	"github.com/awesome-cap/hashmap"

	"github.com/luca-patrignani/joker-poker/domain/game"
	"github.com/luca-patrignani/joker-poker/ledger"
)

var (
	tables = hashmap.New()
	saved  = hashmap.New()
)

// record is the content of a save: the game and its ledger.
type record struct {
	State  json.RawMessage `json:"state"`
	Blocks []ledger.Block  `json:"blocks"`
}

// Create opens a table for g with a fresh ledger.
func Create(g *game.Game, opts ...Option) (*Table, error) {
	if _, ok := tables.Get(g.ID()); ok {
		return nil, errorsmod.Wrapf(ErrTableExists, "%s", g.ID())
	}
	t := newTable(game.NewStateMachine(g), ledger.NewBlockchain(g.ID()), opts)
	tables.Set(t.id, t)
	t.logger.Info("table opened", "game", t.id)
	return t, nil
}

func Get(id string) (*Table, error) {
	if v, ok := tables.Get(id); ok {
		return v.(*Table), nil
	}
	return nil, errorsmod.Wrapf(ErrTableNotFound, "%s", id)
}

// List returns the open tables ordered by id.
func List() []*Table {
	list := make([]*Table, 0)
	tables.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Table))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].id < list[j].id
	})
	return list
}

// Close removes a table. Its save, if any, is kept.
func Close(id string) {
	tables.Del(id)
}

// Save stores the current game and ledger of a table.
func Save(id string) error {
	t, err := Get(id)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	state, err := t.sm.Snapshot()
	if err != nil {
		return err
	}
	data, err := json.Marshal(record{State: state, Blocks: t.chain.Blocks()})
	if err != nil {
		return err
	}
	saved.Set(id, data)
	t.logger.Info("table saved", "game", id, "blocks", t.chain.Len())
	return nil
}

// Load returns the raw save of a game.
func Load(id string) ([]byte, error) {
	if v, ok := saved.Get(id); ok {
		return v.([]byte), nil
	}
	return nil, errorsmod.Wrapf(ErrNotSaved, "%s", id)
}

// Import stores a raw save, as produced by Load, under id.
func Import(id string, data []byte) error {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return errorsmod.Wrapf(ErrCorruptSave, "%v", err)
	}
	saved.Set(id, append([]byte(nil), data...))
	return nil
}

// Forget drops the save of a game.
func Forget(id string) {
	saved.Del(id)
}

// Resume reopens a saved game. The ledger is verified before the game is
// restored. gameOpts configure the restored game.
func Resume(id string, gameOpts []game.Option, opts ...Option) (*Table, error) {
	if _, ok := tables.Get(id); ok {
		return nil, errorsmod.Wrapf(ErrTableExists, "%s", id)
	}
	data, err := Load(id)
	if err != nil {
		return nil, err
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errorsmod.Wrapf(ErrCorruptSave, "%v", err)
	}
	chain, err := ledger.Restore(rec.Blocks)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrCorruptSave, "ledger: %v", err)
	}
	if last, _ := chain.GetLatest(); last.Index > 0 {
		sum := sha256.Sum256(rec.State)
		if hex.EncodeToString(sum[:]) != last.StateHash {
			return nil, ErrCorruptSave.Wrap("state does not match the ledger")
		}
	}
	sm := game.NewStateMachine(nil, gameOpts...)
	if err := sm.Restore(rec.State); err != nil {
		return nil, errorsmod.Wrapf(ErrCorruptSave, "state: %v", err)
	}
	t := newTable(sm, chain, opts)
	tables.Set(t.id, t)
	t.logger.Info("table resumed", "game", t.id, "blocks", chain.Len())
	return t, nil
}
