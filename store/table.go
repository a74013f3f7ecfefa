package store

import (
	"log/slog"
	"sync"

	errorsmod "cosmossdk.io/errors"

	"github.com/luca-patrignani/joker-poker/domain/game"
	"github.com/luca-patrignani/joker-poker/ledger"
	"github.com/luca-patrignani/joker-poker/logging"
)

// StateMachine is what a table drives. The game package implements it
// without knowing about tables.
type StateMachine interface {
	// Validate checks an action against the current state.
	Validate(payload []byte) error
	// Apply applies a validated action.
	Apply(payload []byte) error
	Snapshot() ([]byte, error)
	// Restore replaces the state with a snapshot.
	Restore(data []byte) error
	Game() *game.Game
}

// Table serializes every change to one game: actions are validated,
// applied and appended to the ledger one at a time.
type Table struct {
	mu     sync.Mutex
	id     string
	sm     StateMachine
	chain  *ledger.Blockchain
	logger *slog.Logger
}

var _ StateMachine = (*game.StateMachine)(nil)

type Option func(*Table)

func WithLogger(l *slog.Logger) Option {
	return func(t *Table) { t.logger = l }
}

func newTable(sm StateMachine, chain *ledger.Blockchain, opts []Option) *Table {
	t := &Table{id: sm.Game().ID(), sm: sm, chain: chain}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = logging.OrDiscard(t.logger)
	return t
}

func (t *Table) ID() string { return t.id }

// Submit validates and applies an action, then records it. A rejected or
// failed action leaves the game and the ledger untouched.
func (t *Table) Submit(a game.Action) (ledger.Block, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	payload, err := a.ToPayload()
	if err != nil {
		return ledger.Block{}, err
	}
	if err := t.sm.Validate(payload); err != nil {
		t.logger.Warn("action rejected", "game", t.id, "type", string(a.Type), "player", a.PlayerID, "reason", err.Error())
		return ledger.Block{}, errorsmod.Wrapf(ErrRejected, "%v", err)
	}
	before, err := t.sm.Snapshot()
	if err != nil {
		return ledger.Block{}, err
	}
	if err := t.sm.Apply(payload); err != nil {
		t.logger.Error("validated action failed to apply", "game", t.id, "type", string(a.Type), "error", err.Error())
		if rerr := t.sm.Restore(before); rerr != nil {
			t.logger.Error("rollback failed", "game", t.id, "error", rerr.Error())
			return ledger.Block{}, errorsmod.Wrapf(err, "rollback: %v", rerr)
		}
		return ledger.Block{}, err
	}
	snapshot, err := t.sm.Snapshot()
	if err != nil {
		return ledger.Block{}, err
	}
	block, err := t.chain.Append(payload, snapshot, a.PlayerID, map[string]string{"type": string(a.Type)})
	if err != nil {
		return ledger.Block{}, err
	}
	t.logger.Info("action committed", "game", t.id, "type", string(a.Type), "block", block.Index)
	return block, nil
}

// View runs fn with the game while no action can be applied. fn must not
// mutate the game.
func (t *Table) View(fn func(g *game.Game)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.sm.Game())
}

// Snapshot returns the serialized game.
func (t *Table) Snapshot() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sm.Snapshot()
}

// Chain is the ledger of the table.
func (t *Table) Chain() *ledger.Blockchain { return t.chain }
