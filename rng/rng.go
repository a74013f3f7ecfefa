// Package rng provides the randomness source used for shuffles, joker draws
// and handicap picks. A seeded source replays the same sequence, which keeps
// games and tests deterministic.
package rng

import (
	"crypto/cipher"
	"encoding/binary"
	"sync"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) int
}

// Stream is a Source backed by a kyber cipher stream.
type Stream struct {
	mu     sync.Mutex
	stream cipher.Stream
	buf    [8]byte
}

// New returns a deterministic source. Equal seeds produce equal sequences.
func New(seed []byte) *Stream {
	return &Stream{stream: suite.XOF(seed)}
}

// NewString is New for textual seeds.
func NewString(seed string) *Stream {
	return New([]byte(seed))
}

// NewRandom returns a source seeded from the suite's cryptographic stream.
func NewRandom() *Stream {
	return &Stream{stream: suite.RandomStream()}
}

// Intn returns a value in [0, n). It panics if n <= 0, like math/rand.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	bound := uint64(n)
	// reject the tail of the range so every value is equally likely
	limit := ^uint64(0) - (^uint64(0) % bound)

	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		clear(s.buf[:])
		s.stream.XORKeyStream(s.buf[:], s.buf[:])
		v := binary.BigEndian.Uint64(s.buf[:])
		if v < limit {
			return int(v % bound)
		}
	}
}

// Shuffle permutes n elements in place with Fisher–Yates, swapping index i
// with a uniform index in [0, i] for i from n-1 down to 1.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}

// Perm returns a random permutation of [0, n).
func Perm(src Source, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(src, n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}
