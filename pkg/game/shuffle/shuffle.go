// Package shuffle produces the order cards are dealt into the deck.
//
// The deck order is presentation only. It is drawn from an explicit random
// source and never from anything derived from a journey's target order, so it
// cannot leak the solution.
package shuffle

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"solitaire/pkg/game/catalog"
)

// Shuffler deals uniformly random permutations from one random source.
type Shuffler struct {
	rng *rand.Rand
}

// New creates a shuffler drawing from src.
func New(src rand.Source) *Shuffler {
	return &Shuffler{rng: rand.New(src)}
}

// NewSeeded creates a shuffler backed by a PCG generator with the given seed.
func NewSeeded(seed1, seed2 uint64) *Shuffler {
	return New(rand.NewPCG(seed1, seed2))
}

// Shuffle returns a shuffled copy of items. The input is left untouched.
func (s *Shuffler) Shuffle(items []catalog.Item) []catalog.Item {
	out := append([]catalog.Item(nil), items...)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// NewSeed draws a PCG seed pair from crypto/rand.
func NewSeed() (uint64, uint64, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]), nil
}
