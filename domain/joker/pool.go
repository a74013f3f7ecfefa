package joker

import (
	"github.com/luca-patrignani/joker-poker/rng"
)

// Pool is the joker deck of a round or game: every registered joker at
// level 1, split into the player pool and the community pool. Draws remove a
// uniformly random joker.
type Pool struct {
	player    []*Joker
	community []*Joker
	src       rng.Source
}

// NewPool builds a pool over the whole catalog.
func NewPool(src rng.Source) *Pool {
	return NewPoolFrom(src, Catalog())
}

// NewPoolFrom builds a pool over defs, partitioned by ownership.
func NewPoolFrom(src rng.Source, defs []Definition) *Pool {
	if src == nil {
		src = rng.NewRandom()
	}
	p := &Pool{src: src}
	for _, def := range defs {
		j := &Joker{def: registry[def.ID], level: MinLevel}
		if j.def == nil {
			d := def
			j.def = &d
		}
		if def.Ownership == CommunityOwned {
			p.community = append(p.community, j)
		} else {
			p.player = append(p.player, j)
		}
	}
	return p
}

func (p *Pool) PlayerRemaining() int    { return len(p.player) }
func (p *Pool) CommunityRemaining() int { return len(p.community) }

// DrawPlayerJoker fails with ErrPoolEmpty when the player pool is exhausted.
func (p *Pool) DrawPlayerJoker() (*Joker, error) {
	j, ok := p.TryDrawPlayerJoker()
	if !ok {
		return nil, ErrPoolEmpty.Wrap("player pool")
	}
	return j, nil
}

// TryDrawPlayerJoker is DrawPlayerJoker reporting exhaustion with false.
func (p *Pool) TryDrawPlayerJoker() (*Joker, bool) {
	return p.take(&p.player, nil)
}

// TryDrawPlayerJokerOfRarity draws a random player joker of the given rarity.
func (p *Pool) TryDrawPlayerJokerOfRarity(r Rarity) (*Joker, bool) {
	return p.take(&p.player, func(j *Joker) bool { return j.Rarity() == r })
}

// DrawCommunityJoker fails with ErrPoolEmpty when the community pool is exhausted.
func (p *Pool) DrawCommunityJoker() (*Joker, error) {
	j, ok := p.TryDrawCommunityJoker()
	if !ok {
		return nil, ErrPoolEmpty.Wrap("community pool")
	}
	return j, nil
}

// TryDrawCommunityJoker is DrawCommunityJoker reporting exhaustion with false.
func (p *Pool) TryDrawCommunityJoker() (*Joker, bool) {
	return p.take(&p.community, nil)
}

// DrawCommunityJokers draws up to n community jokers, stopping early once the
// pool runs out.
func (p *Pool) DrawCommunityJokers(n int) []*Joker {
	out := make([]*Joker, 0, n)
	for i := 0; i < n; i++ {
		j, ok := p.TryDrawCommunityJoker()
		if !ok {
			break
		}
		out = append(out, j)
	}
	return out
}

// Shuffle permutes both pools in place.
func (p *Pool) Shuffle() {
	rng.Shuffle(p.src, len(p.player), func(i, j int) { p.player[i], p.player[j] = p.player[j], p.player[i] })
	rng.Shuffle(p.src, len(p.community), func(i, j int) { p.community[i], p.community[j] = p.community[j], p.community[i] })
}

// take removes a random element of the pile matching keep (any when nil).
func (p *Pool) take(pile *[]*Joker, keep func(*Joker) bool) (*Joker, bool) {
	var candidates []int
	for i, j := range *pile {
		if keep == nil || keep(j) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	idx := candidates[p.src.Intn(len(candidates))]
	j := (*pile)[idx]
	*pile = append((*pile)[:idx], (*pile)[idx+1:]...)
	return j, true
}

// PoolSnapshot is the serialisable content of a Pool.
type PoolSnapshot struct {
	Player    []*Joker `json:"player"`
	Community []*Joker `json:"community"`
}

// Snapshot copies the remaining jokers.
func (p *Pool) Snapshot() PoolSnapshot {
	snap := PoolSnapshot{}
	for _, j := range p.player {
		snap.Player = append(snap.Player, j.Clone())
	}
	for _, j := range p.community {
		snap.Community = append(snap.Community, j.Clone())
	}
	return snap
}

// RestorePool rebuilds a pool from a snapshot.
func RestorePool(src rng.Source, snap PoolSnapshot) *Pool {
	if src == nil {
		src = rng.NewRandom()
	}
	p := &Pool{src: src}
	for _, j := range snap.Player {
		p.player = append(p.player, j.Clone())
	}
	for _, j := range snap.Community {
		p.community = append(p.community, j.Clone())
	}
	return p
}
