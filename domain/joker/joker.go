package joker

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
)

const (
	MinLevel = 1
	MaxLevel = 5
)

// Definition is a registry entry: the metadata of a joker type and its bonus
// formula. Compute must be pure in its arguments.
type Definition struct {
	ID        string
	Name      string
	Effect    string
	Rarity    Rarity
	Ownership Ownership
	Compute   func(level int, ctx Context) Bonus
}

// Joker is a leveled instance of a registered definition.
type Joker struct {
	def   *Definition
	level int
}

// New instantiates the joker registered under id at the given level.
// It fails with ErrUnknownJoker or ErrInvalidLevel.
func New(id string, level int) (*Joker, error) {
	def, ok := registry[id]
	if !ok {
		return nil, errorsmod.Wrapf(ErrUnknownJoker, "%q", id)
	}
	if level < MinLevel || level > MaxLevel {
		return nil, errorsmod.Wrapf(ErrInvalidLevel, "%s: level %d not in [%d,%d]", id, level, MinLevel, MaxLevel)
	}
	return &Joker{def: def, level: level}, nil
}

// MustNew is New at level 1, panicking on unknown ids.
func MustNew(id string) *Joker {
	j, err := New(id, MinLevel)
	if err != nil {
		panic(err)
	}
	return j
}

func (j *Joker) ID() string           { return j.def.ID }
func (j *Joker) Name() string         { return j.def.Name }
func (j *Joker) Effect() string       { return j.def.Effect }
func (j *Joker) Rarity() Rarity       { return j.def.Rarity }
func (j *Joker) Ownership() Ownership { return j.def.Ownership }
func (j *Joker) Level() int           { return j.level }

// Upgrade raises the level by one. It fails with ErrMaxLevelReached at MaxLevel.
func (j *Joker) Upgrade() error {
	if j.level >= MaxLevel {
		return errorsmod.Wrapf(ErrMaxLevelReached, "%s", j.def.ID)
	}
	j.level++
	return nil
}

// Bonus computes the joker's contribution for ctx at its current level.
func (j *Joker) Bonus(ctx Context) Bonus {
	return j.def.Compute(j.level, ctx)
}

// Clone returns an independent copy with the same level.
func (j *Joker) Clone() *Joker {
	return &Joker{def: j.def, level: j.level}
}

func (j *Joker) String() string {
	return j.def.Name
}

type jokerJSON struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
}

// MarshalJSON stores only the id and level; the rest comes from the registry.
func (j *Joker) MarshalJSON() ([]byte, error) {
	return json.Marshal(jokerJSON{ID: j.def.ID, Level: j.level})
}

// UnmarshalJSON rebuilds the joker from the registry, validating the level.
func (j *Joker) UnmarshalJSON(b []byte) error {
	var raw jokerJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := New(raw.ID, raw.Level)
	if err != nil {
		return err
	}
	*j = *parsed
	return nil
}

// IDs returns the ids of jokers, in order.
func IDs(jokers []*Joker) []string {
	out := make([]string, len(jokers))
	for i, j := range jokers {
		out[i] = j.ID()
	}
	return out
}
