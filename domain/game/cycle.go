package game

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/luca-patrignani/joker-poker/domain/reward"
)

var sequence = []reward.RoundType{reward.SmallBlind, reward.BigBlind, reward.BossBlind, reward.VSRound}

// Sequence returns the round types of one cycle, in order.
func Sequence() []reward.RoundType {
	return append([]reward.RoundType(nil), sequence...)
}

// Cycle walks the round types, starting over after the VS round.
type Cycle struct {
	pos int
}

func NewCycle() *Cycle { return &Cycle{} }

// RestoreCycle resumes at pos, the index of the next round type.
func RestoreCycle(pos int) (*Cycle, error) {
	c := &Cycle{pos: pos}
	if _, err := c.Peek(); err != nil {
		return nil, err
	}
	return c, nil
}

// Peek returns the next round type without moving.
func (c *Cycle) Peek() (reward.RoundType, error) {
	if c.pos < 0 || c.pos >= len(sequence) {
		return "", errorsmod.Wrapf(ErrCorruptCycle, "position %d", c.pos)
	}
	return sequence[c.pos], nil
}

// Next returns the next round type and moves past it.
func (c *Cycle) Next() (reward.RoundType, error) {
	t, err := c.Peek()
	if err != nil {
		return "", err
	}
	c.pos = (c.pos + 1) % len(sequence)
	return t, nil
}

func (c *Cycle) Position() int { return c.pos }
