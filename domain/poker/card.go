package poker

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/pterm/pterm"
)

// Suit of a card. The numeric value is the suit's position in the suit order.
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = iota // ♣ (black)
	Diamond             // ♦ (red)
	Heart               // ♥ (red)
	Spade               // ♠ (black)
)

// Rank of a card. The numeric value is the card's face value with Ace high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits lists every suit in suit order.
var Suits = []Suit{Club, Diamond, Heart, Spade}

// Ranks lists every rank in rank order, Two through Ace.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var suitNames = map[Suit]string{Club: "Clubs", Diamond: "Diamonds", Heart: "Hearts", Spade: "Spades"}

var suitLetters = map[Suit]string{Club: "C", Diamond: "D", Heart: "H", Spade: "S"}

var rankNames = map[Rank]string{Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace"}

var rankLetters = map[Rank]string{Jack: "J", Queen: "Q", King: "K", Ace: "A"}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool { return s <= Spade }

func (s Suit) String() string {
	if n, ok := suitNames[s]; ok {
		return n
	}
	return "Unknown"
}

// Letter returns the one-letter suit code used in short card notation.
func (s Suit) Letter() string { return suitLetters[s] }

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool { return r >= Two && r <= Ace }

func (r Rank) String() string {
	if n, ok := rankNames[r]; ok {
		return n
	}
	return fmt.Sprintf("%d", r)
}

// Letter returns the rank code used in short card notation (2-10, J, Q, K, A).
func (r Rank) Letter() string {
	if l, ok := rankLetters[r]; ok {
		return l
	}
	return fmt.Sprintf("%d", r)
}

// IsFace reports whether r is a Jack, Queen or King.
func (r Rank) IsFace() bool { return r == Jack || r == Queen || r == King }

// Card represents a playing card with suit and rank.
// The zero value is not a valid card.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Returns the Card or ErrInvalidCard if suit or rank is out of range.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() || !rank.Valid() {
		return Card{}, errorsmod.Wrapf(ErrInvalidCard, "suit %d, rank %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is NewCard for literals known to be valid.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit { return c.suit }

// Rank returns the rank of the Card.
func (c Card) Rank() Rank { return c.rank }

// IsZero reports whether c is the zero Card.
func (c Card) IsZero() bool { return c == Card{} }

// IsFace reports whether the card is a Jack, Queen or King.
func (c Card) IsFace() bool { return c.rank.IsFace() }

// ToNumber returns the numeric value of the card, 2 through 14 with Ace high.
func (c Card) ToNumber() int { return int(c.rank) }

// LowNumber is ToNumber with Ace counted as 1.
func (c Card) LowNumber() int {
	if c.rank == Ace {
		return 1
	}
	return int(c.rank)
}

// CompareRank orders cards by rank alone: negative, zero or positive.
func (c Card) CompareRank(o Card) int { return int(c.rank) - int(o.rank) }

// CompareSuit orders cards by suit alone.
func (c Card) CompareSuit(o Card) int { return int(c.suit) - int(o.suit) }

// Equal reports structural equality.
func (c Card) Equal(o Card) bool { return c == o }

// String renders the card as "Ace of Hearts" or "10 of Spades".
func (c Card) String() string {
	return c.rank.String() + " of " + c.suit.String()
}

// Short renders the card in the compact notation accepted by ParseCard ("AH", "10S").
func (c Card) Short() string {
	return c.rank.Letter() + c.suit.Letter()
}

// Symbol renders the card with a coloured suit symbol for terminals.
func (c Card) Symbol() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}
	return c.rank.Letter() + suit
}

// ParseCard parses the short notation: a rank (2-10, T, J, Q, K, A) followed by
// a suit letter (C, D, H, S). Matching is case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, errorsmod.Wrapf(ErrInvalidCard, "%q", s)
	}
	rankPart, suitPart := s[:len(s)-1], s[len(s)-1:]

	var suit Suit
	switch suitPart {
	case "C":
		suit = Club
	case "D":
		suit = Diamond
	case "H":
		suit = Heart
	case "S":
		suit = Spade
	default:
		return Card{}, errorsmod.Wrapf(ErrInvalidCard, "unknown suit in %q", s)
	}

	var rank Rank
	switch rankPart {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = Ten
	default:
		if len(rankPart) != 1 || rankPart[0] < '2' || rankPart[0] > '9' {
			return Card{}, errorsmod.Wrapf(ErrInvalidCard, "unknown rank in %q", s)
		}
		rank = Rank(rankPart[0] - '0')
	}
	return NewCard(suit, rank)
}

// ParseCards parses a whitespace or comma separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for literals known to be valid.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// MarshalText encodes the card in short notation. The zero Card encodes as "".
func (c Card) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return []byte{}, nil
	}
	return []byte(c.Short()), nil
}

// UnmarshalText decodes the short notation.
func (c *Card) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*c = Card{}
		return nil
	}
	parsed, err := ParseCard(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ContainsCard reports whether cards holds c.
func ContainsCard(cards []Card, c Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}
