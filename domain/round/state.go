package round

import (
	"log/slog"

	errorsmod "cosmossdk.io/errors"
	"github.com/google/uuid"

	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/domain/scoring"
	"github.com/luca-patrignani/joker-poker/logging"
	"github.com/luca-patrignani/joker-poker/rng"
)

// Selection is what a player commits for the current phase.
type Selection struct {
	Cards  []poker.Card   `json:"cards"`
	Jokers []*joker.Joker `json:"jokers"`
	Score  int            `json:"score"`
}

func (s Selection) clone() Selection {
	return Selection{
		Cards:  append([]poker.Card(nil), s.Cards...),
		Jokers: append([]*joker.Joker(nil), s.Jokers...),
		Score:  s.Score,
	}
}

// State is one round: the board, what each player was dealt and what they
// submitted in every phase. It is not safe for concurrent use.
type State struct {
	id        string
	phase     poker.Phase
	handicaps scoring.HandicapSet

	src    rng.Source
	deck   *poker.Deck
	pool   *joker.Pool
	logger *slog.Logger

	board       []poker.Card
	boardJokers []*joker.Joker

	players    []string
	hands      map[string][]poker.Card
	jokers     map[string][]*joker.Joker
	selections map[string]Selection
	scores     map[string]map[poker.Phase]int
	discarded  map[string]bool
}

type Option func(*State)

// WithSource sets the randomness used for the deck and the joker pool.
func WithSource(src rng.Source) Option {
	return func(s *State) { s.src = src }
}

func WithHandicaps(h scoring.HandicapSet) Option {
	return func(s *State) { s.handicaps = h }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *State) { s.logger = l }
}

func WithID(id string) Option {
	return func(s *State) { s.id = id }
}

func newEmpty(opts []Option) *State {
	s := &State{
		hands:      make(map[string][]poker.Card),
		jokers:     make(map[string][]*joker.Joker),
		selections: make(map[string]Selection),
		scores:     make(map[string]map[poker.Phase]int),
		discarded:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.src == nil {
		s.src = rng.NewRandom()
	}
	s.logger = logging.OrDiscard(s.logger)
	return s
}

// NewState shuffles a fresh deck and joker pool and deals the flop.
func NewState(playerIDs []string, opts ...Option) (*State, error) {
	if len(playerIDs) == 0 {
		return nil, ErrNoPlayers
	}
	s := newEmpty(opts)
	if err := s.handicaps.Validate(); err != nil {
		return nil, err
	}
	for _, id := range playerIDs {
		if _, dup := s.hands[id]; dup {
			return nil, errorsmod.Wrapf(ErrDuplicatePlayer, "%q", id)
		}
		s.players = append(s.players, id)
		s.hands[id] = nil
		s.scores[id] = make(map[poker.Phase]int)
	}
	if need := CardsNeeded(len(playerIDs)); need > len(poker.StandardCards()) {
		return nil, errorsmod.Wrapf(poker.ErrInsufficientCards, "%d players need %d cards", len(playerIDs), need)
	}

	s.deck = poker.NewStandardDeck(s.src)
	s.deck.Shuffle()
	s.pool = joker.NewPool(s.src)
	s.pool.Shuffle()

	s.phase = poker.Flop
	if err := s.deal(requirements[poker.Flop]); err != nil {
		return nil, err
	}
	s.logger.Debug("round created", "round", s.id, "players", len(s.players))
	return s, nil
}

// missing counts what is still to be dealt to reach r.
func (s *State) missing(r Requirements) (cards, boardJokers, playerJokers int) {
	cards = max(r.BoardCards-len(s.board), 0)
	boardJokers = max(r.BoardJokers-len(s.boardJokers), 0)
	for _, id := range s.players {
		cards += max(r.PlayerCards-len(s.hands[id]), 0)
		playerJokers += max(r.PlayerJokers-len(s.jokers[id]), 0)
	}
	return cards, boardJokers, playerJokers
}

// canDeal fails when the deck or the pool cannot cover r.
func (s *State) canDeal(r Requirements) error {
	cards, boardJokers, playerJokers := s.missing(r)
	if cards > s.deck.Len() {
		return errorsmod.Wrapf(ErrDeckExhausted, "need %d cards, deck has %d", cards, s.deck.Len())
	}
	if boardJokers > s.pool.CommunityRemaining() {
		return errorsmod.Wrapf(ErrCommunityPoolEmpty, "need %d, pool has %d", boardJokers, s.pool.CommunityRemaining())
	}
	if playerJokers > s.pool.PlayerRemaining() {
		return errorsmod.Wrapf(joker.ErrPoolEmpty, "need %d player jokers, pool has %d", playerJokers, s.pool.PlayerRemaining())
	}
	return nil
}

// deal tops the table up to r. Nothing is dealt unless all of r can be.
func (s *State) deal(r Requirements) error {
	if err := s.canDeal(r); err != nil {
		return err
	}
	for len(s.board) < r.BoardCards {
		c, err := s.deck.DrawCard()
		if err != nil {
			return err
		}
		s.board = append(s.board, c)
	}
	for len(s.boardJokers) < r.BoardJokers {
		j, err := s.pool.DrawCommunityJoker()
		if err != nil {
			return errorsmod.Wrapf(ErrCommunityPoolEmpty, "%v", err)
		}
		s.boardJokers = append(s.boardJokers, j)
	}
	for _, id := range s.players {
		for len(s.hands[id]) < r.PlayerCards {
			c, err := s.deck.DrawCard()
			if err != nil {
				return err
			}
			s.hands[id] = append(s.hands[id], c)
		}
		for len(s.jokers[id]) < r.PlayerJokers {
			j, err := s.pool.DrawPlayerJoker()
			if err != nil {
				return err
			}
			s.jokers[id] = append(s.jokers[id], j)
		}
	}
	return nil
}

// CheckAdvance reports whether AdvancePhase would succeed.
func (s *State) CheckAdvance() error {
	next, ok := s.phase.Next()
	if !ok {
		return ErrRoundAlreadyComplete
	}
	if next == poker.Complete {
		return nil
	}
	return s.canDeal(requirements[next])
}

// CheckComplete reports whether the round can be played out to COMPLETE.
func (s *State) CheckComplete() error {
	if s.phase == poker.Complete {
		return nil
	}
	return s.canDeal(requirements[poker.River])
}

// reserved is how many deck cards the remaining phases still deal.
func (s *State) reserved() int {
	cards, _, _ := s.missing(requirements[poker.River])
	return cards
}

// AdvancePhase moves to the next phase and deals what it adds. Selections
// of the previous phase are cleared; their scores stay accumulated.
func (s *State) AdvancePhase() error {
	next, ok := s.phase.Next()
	if !ok {
		return ErrRoundAlreadyComplete
	}
	if next != poker.Complete {
		if err := s.deal(requirements[next]); err != nil {
			return err
		}
	}
	s.phase = next
	s.selections = make(map[string]Selection)
	s.discarded = make(map[string]bool)
	s.logger.Debug("phase advanced", "round", s.id, "phase", string(next))
	return nil
}

// PhaseRequirements returns the table of the current phase.
func (s *State) PhaseRequirements() (Requirements, error) {
	return RequirementsFor(s.phase)
}

// SubmitSelection records a selection and its score for the current phase.
// A second submission in the same phase replaces the first.
func (s *State) SubmitSelection(playerID string, sel Selection) error {
	if len(sel.Cards) != SelectionCards || len(sel.Jokers) != SelectionJokers {
		return errorsmod.Wrapf(ErrInvalidSelection, "got %d cards and %d jokers", len(sel.Cards), len(sel.Jokers))
	}
	if s.phase == poker.Complete {
		return ErrRoundComplete
	}
	if _, ok := s.scores[playerID]; !ok {
		return errorsmod.Wrapf(ErrUnknownPlayer, "%q", playerID)
	}
	s.selections[playerID] = sel.clone()
	s.scores[playerID][s.phase] = sel.Score
	return nil
}

// ValidateAvailability checks that every card and joker of sel was actually
// available to the player: cards from their hand and the board, jokers from
// what they were dealt, the board and owned.
func (s *State) ValidateAvailability(playerID string, sel Selection, owned []*joker.Joker) error {
	hand, ok := s.hands[playerID]
	if !ok {
		return errorsmod.Wrapf(ErrUnknownPlayer, "%q", playerID)
	}

	cards := make(map[poker.Card]int)
	for _, c := range hand {
		cards[c]++
	}
	for _, c := range s.board {
		cards[c]++
	}
	for _, c := range sel.Cards {
		if cards[c] == 0 {
			return errorsmod.Wrapf(ErrCardNotAvailable, "%s", c.Short())
		}
		cards[c]--
	}

	jokers := make(map[string]int)
	for _, group := range [][]*joker.Joker{s.jokers[playerID], s.boardJokers, owned} {
		for _, j := range group {
			jokers[j.ID()]++
		}
	}
	for _, j := range sel.Jokers {
		if j == nil || jokers[j.ID()] == 0 {
			return errorsmod.Wrapf(ErrJokerNotAvailable, "%v", j)
		}
		jokers[j.ID()]--
	}
	return nil
}

// SubmitScored validates and scores a selection under the round handicaps,
// then submits it.
func (s *State) SubmitScored(playerID string, cards []poker.Card, jokers []*joker.Joker, owned []*joker.Joker) (scoring.Breakdown, error) {
	sel := Selection{Cards: cards, Jokers: jokers}
	if len(cards) != SelectionCards || len(jokers) != SelectionJokers {
		return scoring.Breakdown{}, errorsmod.Wrapf(ErrInvalidSelection, "got %d cards and %d jokers", len(cards), len(jokers))
	}
	if s.phase == poker.Complete {
		return scoring.Breakdown{}, ErrRoundComplete
	}
	if err := s.ValidateAvailability(playerID, sel, owned); err != nil {
		return scoring.Breakdown{}, err
	}
	b, err := scoring.Score(scoring.Input{
		Hole:      s.hands[playerID],
		Played:    cards,
		Jokers:    jokers,
		Phase:     s.phase,
		Handicaps: s.handicaps,
	})
	if err != nil {
		return scoring.Breakdown{}, err
	}
	sel.Score = b.Total
	if err := s.SubmitSelection(playerID, sel); err != nil {
		return scoring.Breakdown{}, err
	}
	s.logger.Debug("selection scored", "round", s.id, "player", playerID, "phase", string(s.phase), "score", b.Total)
	return b, nil
}

// AccumulatedScore sums the player's scores over every phase so far.
func (s *State) AccumulatedScore(playerID string) int {
	total := 0
	for _, v := range s.scores[playerID] {
		total += v
	}
	return total
}

// Scores returns the accumulated score of every player.
func (s *State) Scores() map[string]int {
	out := make(map[string]int, len(s.players))
	for _, id := range s.players {
		out[id] = s.AccumulatedScore(id)
	}
	return out
}

// PhaseScore is the score submitted by the player in phase p, if any.
func (s *State) PhaseScore(playerID string, p poker.Phase) (int, bool) {
	v, ok := s.scores[playerID][p]
	return v, ok
}

func (s *State) ID() string                     { return s.id }
func (s *State) Phase() poker.Phase             { return s.phase }
func (s *State) Handicaps() scoring.HandicapSet { return s.handicaps }
func (s *State) DeckRemaining() int             { return s.deck.Len() }

func (s *State) PlayerIDs() []string {
	return append([]string(nil), s.players...)
}

func (s *State) Board() []poker.Card {
	return append([]poker.Card(nil), s.board...)
}

func (s *State) BoardJokers() []*joker.Joker {
	return append([]*joker.Joker(nil), s.boardJokers...)
}

// Hand is the hole cards dealt to the player.
func (s *State) Hand(playerID string) []poker.Card {
	return append([]poker.Card(nil), s.hands[playerID]...)
}

// Jokers is the private jokers dealt to the player this round.
func (s *State) Jokers(playerID string) []*joker.Joker {
	return append([]*joker.Joker(nil), s.jokers[playerID]...)
}

// Selection is the player's submission in the current phase.
func (s *State) Selection(playerID string) (Selection, bool) {
	sel, ok := s.selections[playerID]
	if !ok {
		return Selection{}, false
	}
	return sel.clone(), true
}

func (s *State) Selections() map[string]Selection {
	out := make(map[string]Selection, len(s.selections))
	for id, sel := range s.selections {
		out[id] = sel.clone()
	}
	return out
}

// HasPlayer reports whether the player was dealt into the round.
func (s *State) HasPlayer(playerID string) bool {
	_, ok := s.hands[playerID]
	return ok
}
