package poker

import errorsmod "cosmossdk.io/errors"

// Phase is the street a round is in. Phases only move forward.
type Phase string

const (
	Flop     Phase = "FLOP"
	Turn     Phase = "TURN"
	River    Phase = "RIVER"
	Complete Phase = "COMPLETE"
)

var phaseOrder = []Phase{Flop, Turn, River, Complete}

// Phases lists every phase in order.
func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	return p.index() >= 0
}

// Next returns the phase after p. Complete has no successor.
func (p Phase) Next() (Phase, bool) {
	i := p.index()
	if i < 0 || i == len(phaseOrder)-1 {
		return p, false
	}
	return phaseOrder[i+1], true
}

// Before reports whether p comes strictly before o.
func (p Phase) Before(o Phase) bool {
	return p.index() < o.index()
}

func (p Phase) index() int {
	for i, ph := range phaseOrder {
		if ph == p {
			return i
		}
	}
	return -1
}

// ParsePhase validates a phase name.
func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !p.Valid() {
		return "", errorsmod.Wrapf(ErrInvalidPhase, "%q", s)
	}
	return p, nil
}
