package joker

import "github.com/luca-patrignani/joker-poker/domain/poker"

// Restrictions limit which cards count towards a bonus and which hand
// categories the evaluator may award. The zero value restricts nothing.
type Restrictions struct {
	Hand           poker.Rules  `json:"hand"`
	FaceCardsBlank bool         `json:"faceCardsBlank,omitempty"`
	BlockedSuits   []poker.Suit `json:"blockedSuits,omitempty"`
	// MaxCardValue caps the numeric value (Ace = 14) of countable cards. Zero means no cap.
	MaxCardValue int `json:"maxCardValue,omitempty"`
}

// Counts reports whether c may contribute to a bonus.
func (r Restrictions) Counts(c poker.Card) bool {
	if r.FaceCardsBlank && c.IsFace() {
		return false
	}
	for _, s := range r.BlockedSuits {
		if c.Suit() == s {
			return false
		}
	}
	if r.MaxCardValue > 0 && c.ToNumber() > r.MaxCardValue {
		return false
	}
	return true
}

// Rules is what the evaluator enforces: the suppressed categories, with the
// cards that do not count left blank.
func (r Restrictions) Rules() poker.Rules {
	rules := r.Hand
	if r.FaceCardsBlank || len(r.BlockedSuits) > 0 || r.MaxCardValue > 0 {
		rules.Blank = func(c poker.Card) bool { return !r.Counts(c) }
	}
	return rules
}

// Context is everything a joker may look at. Played is nil before a hand has
// been submitted.
type Context struct {
	Hole         []poker.Card
	Played       []poker.Card
	Phase        poker.Phase
	Restrictions Restrictions
}

// PlayedEvaluation evaluates the played hand under the active restrictions.
// It reports false when there is no valid five card hand.
func (c Context) PlayedEvaluation() (poker.HandEvaluation, bool) {
	if len(c.Played) != 5 {
		return poker.HandEvaluation{}, false
	}
	eval, err := poker.EvaluateWithRules(c.Played, c.Restrictions.Rules())
	if err != nil {
		return poker.HandEvaluation{}, false
	}
	return eval, true
}

// Countable filters cards down to the ones the restrictions let count.
func (c Context) Countable(cards []poker.Card) []poker.Card {
	out := make([]poker.Card, 0, len(cards))
	for _, card := range cards {
		if c.Restrictions.Counts(card) {
			out = append(out, card)
		}
	}
	return out
}

// Union is hole plus played with every physical card once.
func (c Context) Union() []poker.Card {
	out := make([]poker.Card, 0, len(c.Hole)+len(c.Played))
	for _, card := range c.Hole {
		if !poker.ContainsCard(out, card) {
			out = append(out, card)
		}
	}
	for _, card := range c.Played {
		if !poker.ContainsCard(out, card) {
			out = append(out, card)
		}
	}
	return out
}

// BoardPlayed returns the played cards that did not come from the hole.
func (c Context) BoardPlayed() []poker.Card {
	var out []poker.Card
	for _, card := range c.Played {
		if !poker.ContainsCard(c.Hole, card) {
			out = append(out, card)
		}
	}
	return out
}

// HolePlayed counts the hole cards that made it into the played hand.
func (c Context) HolePlayed() int {
	n := 0
	for _, card := range c.Hole {
		if poker.ContainsCard(c.Played, card) {
			n++
		}
	}
	return n
}
