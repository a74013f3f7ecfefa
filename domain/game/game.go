package game

import (
	"log/slog"
	"sort"

	errorsmod "cosmossdk.io/errors"
	"github.com/google/uuid"

	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/domain/reward"
	"github.com/luca-patrignani/joker-poker/domain/round"
	"github.com/luca-patrignani/joker-poker/domain/scoring"
	"github.com/luca-patrignani/joker-poker/logging"
	"github.com/luca-patrignani/joker-poker/rng"
)

// Round is the round in progress: its reward policy and its table.
type Round struct {
	Number int
	Policy reward.Round
	State  *round.State
}

func (r *Round) ID() string { return r.State.ID() }

// Handicaps returns the active handicaps, empty outside boss rounds.
func (r *Round) Handicaps() scoring.HandicapSet {
	if h, ok := r.Policy.(reward.Handicapped); ok {
		return h.Handicaps()
	}
	return scoring.HandicapSet{}
}

// RoundRecord is what is kept of a completed round.
type RoundRecord struct {
	Number    int                 `json:"number"`
	RoundID   string              `json:"roundId"`
	Type      reward.RoundType    `json:"type"`
	Ante      int                 `json:"ante"`
	Threshold int                 `json:"threshold"`
	Handicaps scoring.HandicapSet `json:"handicaps"`
	Result    reward.Result       `json:"result"`
}

// Game runs rounds over a fixed set of players until one is left.
type Game struct {
	id     string
	cfg    Config
	src    rng.Source
	logger *slog.Logger

	players     []*Player
	started     bool
	cycle       *Cycle
	ante        int
	roundNumber int
	current     *Round
	pool        *joker.Pool
	history     []RoundRecord
}

type Option func(*Game)

// WithSource sets the randomness of deals, handicaps and rewards.
func WithSource(src rng.Source) Option {
	return func(g *Game) { g.src = src }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

func WithID(id string) Option {
	return func(g *Game) { g.id = id }
}

func newGame(cfg Config, opts []Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg, cycle: NewCycle(), ante: cfg.StartingAnte}
	for _, opt := range opts {
		opt(g)
	}
	if g.id == "" {
		g.id = uuid.NewString()
	}
	if g.src == nil {
		g.src = rng.NewRandom()
	}
	g.logger = logging.OrDiscard(g.logger)
	return g, nil
}

func New(cfg Config, opts ...Option) (*Game, error) {
	g, err := newGame(cfg, opts)
	if err != nil {
		return nil, err
	}
	g.pool = joker.NewPool(g.src)
	g.pool.Shuffle()
	return g, nil
}

// AddPlayer seats a new player before the game starts.
func (g *Game) AddPlayer(name string, bot bool) (*Player, error) {
	if g.started {
		return nil, ErrGameStarted
	}
	if len(g.players) >= g.cfg.MaxPlayers {
		return nil, errorsmod.Wrapf(ErrGameFull, "%d seats", g.cfg.MaxPlayers)
	}
	p := NewPlayer(uuid.NewString(), name, len(g.players), bot)
	g.players = append(g.players, p)
	g.logger.Info("player joined", "game", g.id, "player", p.Name, "bot", bot)
	return p, nil
}

func (g *Game) Start() error {
	if g.started {
		return ErrGameStarted
	}
	if len(g.players) < g.cfg.MinPlayers {
		return errorsmod.Wrapf(ErrNotEnoughPlayers, "%d < %d", len(g.players), g.cfg.MinPlayers)
	}
	g.started = true
	for _, p := range g.players {
		p.Status = StatusPlaying
	}
	g.logger.Info("game started", "game", g.id, "players", len(g.players))
	return nil
}

// NextRound deals the next round of the cycle to every player still in.
func (g *Game) NextRound() (*Round, error) {
	if !g.started {
		return nil, ErrNotStarted
	}
	if g.IsOver() {
		return nil, ErrGameOver
	}
	if g.current != nil {
		return nil, errorsmod.Wrapf(ErrRoundInProgress, "round %d", g.current.Number)
	}
	typ, err := g.cycle.Peek()
	if err != nil {
		g.logger.Error("round cycle corrupted", "game", g.id, "position", g.cycle.Position())
		return nil, err
	}

	var handicaps scoring.HandicapSet
	if typ == reward.BossBlind {
		handicaps = g.bossHandicap()
	}
	cfg := reward.Config{
		Type:            typ,
		Ante:            g.ante,
		RewardThreshold: g.cfg.Threshold(g.ante),
		RoundNumber:     g.roundNumber + 1,
	}
	policy, err := reward.New(cfg, handicaps)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, p := range g.ActivePlayers() {
		p.ResetForNewRound()
		ids = append(ids, p.ID)
	}
	state, err := round.NewState(ids,
		round.WithSource(g.src),
		round.WithHandicaps(handicaps),
		round.WithLogger(g.logger),
	)
	if err != nil {
		return nil, err
	}
	if _, err := g.cycle.Next(); err != nil {
		return nil, err
	}
	g.roundNumber++
	g.current = &Round{Number: g.roundNumber, Policy: policy, State: state}
	g.syncHands()
	g.logger.Info("round started",
		"game", g.id, "round", g.roundNumber, "type", string(typ),
		"ante", cfg.Ante, "threshold", cfg.RewardThreshold)
	return g.current, nil
}

// bossHandicap picks one handicap uniformly at random.
func (g *Game) bossHandicap() scoring.HandicapSet {
	all := scoring.AllHandicaps()
	h := all[g.src.Intn(len(all))]
	set := scoring.HandicapSet{Handicaps: []scoring.Handicap{h}}
	if h == scoring.MaxCardValue {
		set.MaxCardValue = g.cfg.BossMaxCardValue
	}
	return set
}

func (g *Game) syncHands() {
	if g.current == nil {
		return
	}
	for _, id := range g.current.State.PlayerIDs() {
		if p, ok := g.Player(id); ok && !p.IsEliminated() {
			p.Hand = g.current.State.Hand(id)
		}
	}
}

func (g *Game) actor(playerID string) (*Player, error) {
	if g.current == nil {
		return nil, ErrNoRound
	}
	p, ok := g.Player(playerID)
	if !ok {
		return nil, errorsmod.Wrapf(ErrUnknownPlayer, "%q", playerID)
	}
	if !p.CanAct() {
		return nil, errorsmod.Wrapf(ErrNotPlaying, "%s is %s", p.Name, p.Status)
	}
	return p, nil
}

// ResolveJokers maps joker ids onto the jokers the player can actually use:
// dealt to them, on the board, or owned. Each instance is used at most once.
func (g *Game) ResolveJokers(playerID string, ids []string) ([]*joker.Joker, error) {
	p, err := g.actor(playerID)
	if err != nil {
		return nil, err
	}
	var candidates []*joker.Joker
	candidates = append(candidates, g.current.State.Jokers(playerID)...)
	candidates = append(candidates, g.current.State.BoardJokers()...)
	candidates = append(candidates, p.OwnedJokers...)

	used := make([]bool, len(candidates))
	out := make([]*joker.Joker, 0, len(ids))
	for _, id := range ids {
		found := false
		for i, j := range candidates {
			if !used[i] && j.ID() == id {
				used[i] = true
				out = append(out, j)
				found = true
				break
			}
		}
		if !found {
			return nil, errorsmod.Wrapf(round.ErrJokerNotAvailable, "%q", id)
		}
	}
	return out, nil
}

// Submit scores a selection for the current phase.
func (g *Game) Submit(playerID string, cards []poker.Card, jokerIDs []string) (scoring.Breakdown, error) {
	p, err := g.actor(playerID)
	if err != nil {
		return scoring.Breakdown{}, err
	}
	jokers, err := g.ResolveJokers(playerID, jokerIDs)
	if err != nil {
		return scoring.Breakdown{}, err
	}
	b, err := g.current.State.SubmitScored(playerID, cards, jokers, p.OwnedJokers)
	if err != nil {
		return scoring.Breakdown{}, err
	}
	if err := p.SetSelectedCards(cards); err != nil {
		return scoring.Breakdown{}, err
	}
	if err := p.SetSelectedJokers(jokers); err != nil {
		return scoring.Breakdown{}, err
	}
	p.UseJokers(jokers)
	p.RoundScore = g.current.State.AccumulatedScore(playerID)
	return b, nil
}

// Discard replaces hole cards of a player.
func (g *Game) Discard(playerID string, indices []int) ([]poker.Card, error) {
	p, err := g.actor(playerID)
	if err != nil {
		return nil, err
	}
	out, err := g.current.State.Discard(playerID, indices)
	if err != nil {
		return nil, err
	}
	p.Hand = g.current.State.Hand(playerID)
	return out, nil
}

// Fold stops the player from acting for the rest of the round. What they
// already scored still counts.
func (g *Game) Fold(playerID string) error {
	p, err := g.actor(playerID)
	if err != nil {
		return err
	}
	p.Fold()
	g.logger.Info("player folded", "game", g.id, "player", p.Name)
	return nil
}

// AdvancePhase moves the current round to its next phase.
func (g *Game) AdvancePhase() error {
	if g.current == nil {
		return ErrNoRound
	}
	if err := g.current.State.AdvancePhase(); err != nil {
		return err
	}
	for _, p := range g.players {
		p.ClearSelection()
	}
	g.syncHands()
	return nil
}

// CompleteRound plays the round out, hands the scores to the reward policy
// and applies its result.
func (g *Game) CompleteRound() (reward.Result, error) {
	if g.current == nil {
		return reward.Result{}, ErrNoRound
	}
	cur := g.current
	for cur.State.Phase() != poker.Complete {
		if err := cur.State.AdvancePhase(); err != nil {
			return reward.Result{}, err
		}
	}
	scores := cur.State.Scores()
	for id, s := range scores {
		if p, ok := g.Player(id); ok {
			p.RoundScore = s
		}
	}
	res := cur.Policy.ProcessResults(scores)

	elimID, eliminated := res.Eliminated()
	for _, id := range sortedKeys(res.Rewards) {
		p, ok := g.Player(id)
		if !ok {
			continue
		}
		for _, rw := range res.Rewards[id] {
			g.applyReward(p, rw, elimID)
		}
	}
	if eliminated {
		if p, ok := g.Player(elimID); ok {
			p.Eliminate()
			g.logger.Info("player eliminated", "game", g.id, "round", cur.Number, "player", p.Name, "score", scores[elimID])
		}
	}

	cfg := cur.Policy.Config()
	g.history = append(g.history, RoundRecord{
		Number:    cur.Number,
		RoundID:   cur.ID(),
		Type:      cur.Policy.Type(),
		Ante:      cfg.Ante,
		Threshold: cfg.RewardThreshold,
		Handicaps: cur.Handicaps(),
		Result:    res,
	})
	if cur.Policy.Type() == reward.VSRound {
		g.ante += g.cfg.AnteIncrease
		g.logger.Info("ante increased", "game", g.id, "ante", g.ante)
	}
	g.current = nil
	for _, p := range g.players {
		if !p.IsEliminated() {
			p.Hand = nil
			p.ClearSelection()
		}
	}
	g.logger.Info("round complete", "game", g.id, "round", cur.Number, "type", string(cur.Policy.Type()))
	if w, ok := g.Winner(); ok {
		g.logger.Info("game over", "game", g.id, "winner", w.Name)
	}
	return res, nil
}

func (g *Game) applyReward(p *Player, rw reward.Reward, eliminatedID string) {
	switch rw.Kind {
	case reward.KindCoins:
		p.AddCoins(rw.Coins)
		g.logger.Debug("coins awarded", "game", g.id, "player", p.Name, "coins", rw.Coins)
	case reward.KindJoker:
		var (
			j  *joker.Joker
			ok bool
		)
		if rw.FromEliminated {
			if loser, found := g.Player(eliminatedID); found {
				j, ok = loser.TakeBestJoker()
			}
		} else {
			j, ok = g.pool.TryDrawPlayerJokerOfRarity(rw.Rarity)
		}
		if !ok {
			j, ok = g.pool.TryDrawPlayerJoker()
		}
		if !ok {
			g.logger.Warn("no joker left to award", "game", g.id, "player", p.Name)
			return
		}
		p.AddJoker(j)
		g.logger.Debug("joker awarded", "game", g.id, "player", p.Name, "joker", j.ID())
	}
}

func sortedKeys(m map[string][]reward.Reward) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsOver reports whether at most one player is left in a started game.
func (g *Game) IsOver() bool {
	return g.started && len(g.ActivePlayers()) <= 1
}

// Winner is the last player standing once the game is over.
func (g *Game) Winner() (*Player, bool) {
	if !g.IsOver() {
		return nil, false
	}
	active := g.ActivePlayers()
	if len(active) != 1 {
		return nil, false
	}
	return active[0], true
}

func (g *Game) ID() string             { return g.id }
func (g *Game) Config() Config         { return g.cfg }
func (g *Game) Started() bool          { return g.started }
func (g *Game) Ante() int              { return g.ante }
func (g *Game) RoundNumber() int       { return g.roundNumber }
func (g *Game) CurrentRound() *Round   { return g.current }
func (g *Game) History() []RoundRecord { return append([]RoundRecord(nil), g.history...) }

// NextRoundType is the type the next call to NextRound will deal.
func (g *Game) NextRoundType() (reward.RoundType, error) { return g.cycle.Peek() }

// Players returns every seated player, eliminated ones included.
func (g *Game) Players() []*Player {
	return append([]*Player(nil), g.players...)
}

// ActivePlayers returns the players not yet eliminated.
func (g *Game) ActivePlayers() []*Player {
	var out []*Player
	for _, p := range g.players {
		if !p.IsEliminated() {
			out = append(out, p)
		}
	}
	return out
}

func (g *Game) Player(id string) (*Player, bool) {
	for _, p := range g.players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
