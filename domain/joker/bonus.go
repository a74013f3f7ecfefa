package joker

import "fmt"

// Kind tags how a Bonus combines with the hand score.
type Kind string

const (
	// KindAdditive bonuses add points to the base score.
	KindAdditive Kind = "ADDITIVE"
	// KindMultiplicative bonuses scale the total by a percentage.
	KindMultiplicative Kind = "MULTIPLICATIVE"
)

// Bonus is the contribution of a single joker. Value holds points for
// additive bonuses and a percentage for multiplicative ones.
type Bonus struct {
	Kind  Kind `json:"kind"`
	Value int  `json:"value"`
}

// Additive returns a flat points bonus.
func Additive(points int) Bonus {
	return Bonus{Kind: KindAdditive, Value: points}
}

// Multiplicative returns a bonus multiplying the score by (1 + percent/100).
func Multiplicative(percent int) Bonus {
	return Bonus{Kind: KindMultiplicative, Value: percent}
}

// None is the zero contribution.
func None() Bonus { return Additive(0) }

// IsZero reports whether the bonus changes nothing.
func (b Bonus) IsZero() bool { return b.Value == 0 }

func (b Bonus) String() string {
	if b.Kind == KindMultiplicative {
		return fmt.Sprintf("+%d%%", b.Value)
	}
	return fmt.Sprintf("+%d", b.Value)
}
