package game

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/domain/round"
)

type Status string

const (
	StatusWaiting    Status = "WAITING"
	StatusPlaying    Status = "PLAYING"
	StatusFolded     Status = "FOLDED"
	StatusEliminated Status = "ELIMINATED"
)

type Player struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Position       int            `json:"position"`
	Bot            bool           `json:"bot"`
	Status         Status         `json:"status"`
	Hand           []poker.Card   `json:"hand"`
	OwnedJokers    []*joker.Joker `json:"ownedJokers"`
	ActiveJokers   []*joker.Joker `json:"activeJokers"`
	RoundScore     int            `json:"roundScore"`
	SelectedCards  []poker.Card   `json:"selectedCards"`
	SelectedJokers []*joker.Joker `json:"selectedJokers"`
	Coins          int            `json:"coins"`
}

func NewPlayer(id, name string, position int, bot bool) *Player {
	return &Player{ID: id, Name: name, Position: position, Bot: bot, Status: StatusWaiting}
}

// SetSelectedCards requires exactly five cards.
func (p *Player) SetSelectedCards(cards []poker.Card) error {
	if len(cards) != round.SelectionCards {
		return errorsmod.Wrapf(ErrInvalidSelectionSize, "got %d", len(cards))
	}
	p.SelectedCards = append([]poker.Card(nil), cards...)
	return nil
}

// SetSelectedJokers accepts at most three jokers.
func (p *Player) SetSelectedJokers(jokers []*joker.Joker) error {
	if len(jokers) > round.SelectionJokers {
		return errorsmod.Wrapf(ErrTooManyModifiers, "got %d", len(jokers))
	}
	p.SelectedJokers = append([]*joker.Joker(nil), jokers...)
	return nil
}

func (p *Player) ClearSelection() {
	p.SelectedCards = nil
	p.SelectedJokers = nil
}

// ResetForNewRound clears everything round scoped. An eliminated player
// stays eliminated.
func (p *Player) ResetForNewRound() {
	p.Hand = nil
	p.ActiveJokers = nil
	p.RoundScore = 0
	p.ClearSelection()
	if p.Status != StatusEliminated {
		p.Status = StatusPlaying
	}
}

// Eliminate is permanent.
func (p *Player) Eliminate() {
	p.Status = StatusEliminated
	p.Hand = nil
	p.ClearSelection()
}

// Fold leaves the hand. It does nothing unless the player is playing.
func (p *Player) Fold() {
	if p.Status == StatusPlaying {
		p.Status = StatusFolded
	}
}

func (p *Player) CanAct() bool       { return p.Status == StatusPlaying }
func (p *Player) IsInHand() bool     { return p.Status == StatusPlaying }
func (p *Player) IsEliminated() bool { return p.Status == StatusEliminated }

func (p *Player) AddCoins(n int) { p.Coins += n }

func (p *Player) AddJoker(j *joker.Joker) {
	p.OwnedJokers = append(p.OwnedJokers, j)
}

// ActivateJoker marks an owned joker as in use this round.
func (p *Player) ActivateJoker(id string) error {
	for _, j := range p.OwnedJokers {
		if j.ID() != id {
			continue
		}
		for _, a := range p.ActiveJokers {
			if a == j {
				return nil
			}
		}
		p.ActiveJokers = append(p.ActiveJokers, j)
		return nil
	}
	return errorsmod.Wrapf(ErrJokerNotOwned, "%q", id)
}

// UseJokers makes jokers the ones in play this hand, whether owned, dealt
// or on the board.
func (p *Player) UseJokers(jokers []*joker.Joker) {
	p.ActiveJokers = append([]*joker.Joker(nil), jokers...)
}

// TakeBestJoker removes and returns the owned joker with the highest level;
// the earliest acquired wins ties.
func (p *Player) TakeBestJoker() (*joker.Joker, bool) {
	best := -1
	for i, j := range p.OwnedJokers {
		if best < 0 || j.Level() > p.OwnedJokers[best].Level() {
			best = i
		}
	}
	if best < 0 {
		return nil, false
	}
	j := p.OwnedJokers[best]
	p.OwnedJokers = append(p.OwnedJokers[:best], p.OwnedJokers[best+1:]...)
	for i, a := range p.ActiveJokers {
		if a == j {
			p.ActiveJokers = append(p.ActiveJokers[:i], p.ActiveJokers[i+1:]...)
			break
		}
	}
	return j, true
}
