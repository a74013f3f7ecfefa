package poker

import (
	"sort"

	errorsmod "cosmossdk.io/errors"
)

// HandRank is the category of a five card hand, weakest first.
type HandRank int

const (
	HighCard HandRank = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var handRankNames = [...]string{
	HighCard:      "HIGH_CARD",
	Pair:          "PAIR",
	TwoPair:       "TWO_PAIR",
	ThreeOfAKind:  "THREE_OF_A_KIND",
	Straight:      "STRAIGHT",
	Flush:         "FLUSH",
	FullHouse:     "FULL_HOUSE",
	FourOfAKind:   "FOUR_OF_A_KIND",
	StraightFlush: "STRAIGHT_FLUSH",
	RoyalFlush:    "ROYAL_FLUSH",
}

var baseScores = [...]int{
	HighCard:      50,
	Pair:          100,
	TwoPair:       200,
	ThreeOfAKind:  300,
	Straight:      400,
	Flush:         500,
	FullHouse:     600,
	FourOfAKind:   800,
	StraightFlush: 1000,
	RoyalFlush:    2000,
}

func (h HandRank) String() string {
	if h < HighCard || h > RoyalFlush {
		return "UNKNOWN"
	}
	return handRankNames[h]
}

// BaseScore is the fixed score awarded for the category.
func (h HandRank) BaseScore() int {
	if h < HighCard || h > RoyalFlush {
		return 0
	}
	return baseScores[h]
}

// MarshalText encodes the category name.
func (h HandRank) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText decodes a category name.
func (h *HandRank) UnmarshalText(b []byte) error {
	for i, n := range handRankNames {
		if n == string(b) {
			*h = HandRank(i)
			return nil
		}
	}
	return errorsmod.Wrapf(ErrInvalidHandRank, "%q", string(b))
}

// HandEvaluation is the classification of a five card hand together with the
// data needed to break ties between hands of the same category.
type HandEvaluation struct {
	HandRank       HandRank `json:"handRank"`
	BaseScore      int      `json:"baseScore"`
	HighCard       Card     `json:"highCard"`
	SecondHighCard *Card    `json:"secondHighCard,omitempty"`
	Kickers        []Card   `json:"kickers"`
}

// Rules switch off hand categories. A suppressed hand is classified as the
// best category that does not rely on the suppressed feature.
type Rules struct {
	NoPairs     bool `json:"noPairs,omitempty"`
	NoStraights bool `json:"noStraights,omitempty"`
	NoFlushes   bool `json:"noFlushes,omitempty"`
	// Blank reports cards that count for nothing: they form no pair,
	// straight or flush and never play as the high card.
	Blank func(Card) bool `json:"-"`
}

// IsZero reports whether the rules change nothing.
func (r Rules) IsZero() bool {
	return !r.NoPairs && !r.NoStraights && !r.NoFlushes && r.Blank == nil
}

func (r Rules) live(sorted []Card) []Card {
	if r.Blank == nil {
		return sorted
	}
	out := make([]Card, 0, len(sorted))
	for _, c := range sorted {
		if !r.Blank(c) {
			out = append(out, c)
		}
	}
	return out
}

// Evaluate classifies exactly five cards. It never picks a best five out of a
// larger pool: callers supply the frozen selection.
func Evaluate(cards []Card) (HandEvaluation, error) {
	return EvaluateWithRules(cards, Rules{})
}

// EvaluateWithRules is Evaluate honouring suppressed categories.
// NoPairs removes Pair and Two Pair; NoStraights and NoFlushes remove the
// straight and flush components, so a straight flush degrades to whichever
// half is still allowed. Blank cards are left out of every combination; a
// hand with no countable card is a High Card without a high card.
func EvaluateWithRules(cards []Card, rules Rules) (HandEvaluation, error) {
	if len(cards) != 5 {
		return HandEvaluation{}, errorsmod.Wrapf(ErrInvalidHandSize, "got %d cards", len(cards))
	}
	for _, c := range cards {
		if !c.suit.Valid() || !c.rank.Valid() {
			return HandEvaluation{}, errorsmod.Wrapf(ErrInvalidCard, "%v", c)
		}
	}

	sorted := sortDescending(cards)
	live := rules.live(sorted)
	whole := len(live) == len(sorted)
	groups := groupByRank(live)

	flush := whole && !rules.NoFlushes && isFlush(sorted)
	straight, top := false, Card{}
	if whole && !rules.NoStraights {
		straight, top = straightHigh(sorted)
	}

	switch {
	case flush && straight && top.rank == Ace:
		return result(RoyalFlush, top, nil, nil), nil
	case flush && straight:
		return result(StraightFlush, top, nil, nil), nil
	case groups[0].size() == 4:
		return result(FourOfAKind, groups[0].cards[0], nil, rest(live, groups[0])), nil
	case groups[0].size() == 3 && groups[1].size() == 2:
		second := groups[1].cards[0]
		return result(FullHouse, groups[0].cards[0], &second, nil), nil
	case flush:
		return result(Flush, sorted[0], nil, sorted[1:]), nil
	case straight:
		return result(Straight, top, nil, nil), nil
	case groups[0].size() == 3:
		return result(ThreeOfAKind, groups[0].cards[0], nil, rest(live, groups[0])), nil
	case !rules.NoPairs && groups[0].size() == 2 && groups[1].size() == 2:
		second := groups[1].cards[0]
		return result(TwoPair, groups[0].cards[0], &second, rest(live, groups[0], groups[1])), nil
	case !rules.NoPairs && groups[0].size() == 2:
		return result(Pair, groups[0].cards[0], nil, rest(live, groups[0])), nil
	case len(live) == 0:
		return result(HighCard, Card{}, nil, nil), nil
	default:
		return result(HighCard, live[0], nil, live[1:]), nil
	}
}

func result(rank HandRank, high Card, second *Card, kickers []Card) HandEvaluation {
	k := make([]Card, len(kickers))
	copy(k, kickers)
	return HandEvaluation{
		HandRank:       rank,
		BaseScore:      rank.BaseScore(),
		HighCard:       high,
		SecondHighCard: second,
		Kickers:        k,
	}
}

// sortDescending orders by rank with Ace high, then by suit for a stable result.
func sortDescending(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].rank != out[j].rank {
			return out[i].rank > out[j].rank
		}
		return out[i].suit > out[j].suit
	})
	return out
}

type rankGroup struct {
	rank  Rank
	cards []Card
}

func (g rankGroup) size() int { return len(g.cards) }

// groupByRank buckets sorted cards, largest bucket first and higher rank first
// among equal sizes. Two empty trailing buckets keep indexing safe however
// few cards count.
func groupByRank(sorted []Card) []rankGroup {
	var groups []rankGroup
	for _, c := range sorted {
		if n := len(groups); n > 0 && groups[n-1].rank == c.rank {
			groups[n-1].cards = append(groups[n-1].cards, c)
			continue
		}
		groups = append(groups, rankGroup{rank: c.rank, cards: []Card{c}})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].size() != groups[j].size() {
			return groups[i].size() > groups[j].size()
		}
		return groups[i].rank > groups[j].rank
	})
	return append(groups, rankGroup{}, rankGroup{})
}

// rest returns the sorted cards that are not part of the given groups.
func rest(sorted []Card, used ...rankGroup) []Card {
	var out []Card
outer:
	for _, c := range sorted {
		for _, g := range used {
			if g.rank == c.rank {
				continue outer
			}
		}
		out = append(out, c)
	}
	return out
}

func isFlush(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.suit != cards[0].suit {
			return false
		}
	}
	return true
}

// straightHigh tests both ace interpretations. It reports whether the cards
// form five consecutive ranks and the card topping the run: the Ace for
// broadway, the Five for the wheel.
func straightHigh(sorted []Card) (bool, Card) {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].rank == sorted[i-1].rank {
			return false, Card{}
		}
	}
	// ace high
	if int(sorted[0].rank)-int(sorted[len(sorted)-1].rank) == 4 {
		return true, sorted[0]
	}
	// ace low: A 5 4 3 2
	if sorted[0].rank == Ace && sorted[1].rank == Five && sorted[len(sorted)-1].rank == Two {
		return true, sorted[1]
	}
	return false, Card{}
}

// IsWheel reports whether the evaluation is the A-2-3-4-5 straight or straight flush.
func (e HandEvaluation) IsWheel() bool {
	return (e.HandRank == Straight || e.HandRank == StraightFlush) && e.HighCard.rank == Five
}

// Cards returns the high card, the second high card when present and the kickers.
func (e HandEvaluation) Cards() []Card {
	out := []Card{e.HighCard}
	if e.SecondHighCard != nil {
		out = append(out, *e.SecondHighCard)
	}
	return append(out, e.Kickers...)
}

// Compare orders two evaluations: category first, then high card, second high
// card and kickers by rank. Suits never break ties.
func Compare(a, b HandEvaluation) int {
	if a.HandRank != b.HandRank {
		return int(a.HandRank) - int(b.HandRank)
	}
	if d := a.HighCard.CompareRank(b.HighCard); d != 0 {
		return d
	}
	if a.SecondHighCard != nil && b.SecondHighCard != nil {
		if d := a.SecondHighCard.CompareRank(*b.SecondHighCard); d != 0 {
			return d
		}
	}
	for i := 0; i < len(a.Kickers) && i < len(b.Kickers); i++ {
		if d := a.Kickers[i].CompareRank(b.Kickers[i]); d != 0 {
			return d
		}
	}
	return 0
}
