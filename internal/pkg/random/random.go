// Package random is the injectable source of randomness for turn order, AI
// targeting, encounter choice and event selection. It sits on top of the
// rpg-toolkit dice.Roller so production can use the toolkit's roller and
// tests can use a seeded one.
package random

import (
	"log/slog"
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-caravan/internal/errors"
)

// Source draws uniform choices from a dice roller
type Source struct {
	roller dice.Roller
}

// New wraps roller. A nil roller falls back to dice.DefaultRoller.
func New(roller dice.Roller) *Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Source{roller: roller}
}

// NewSeeded returns a deterministic source
func NewSeeded(seed uint64) *Source {
	return New(NewSeededRoller(seed))
}

// Roller exposes the underlying roller
func (s *Source) Roller() dice.Roller {
	return s.roller
}

// Intn returns a uniform value in [0, n). It returns 0 when n <= 1.
func (s *Source) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	roll, err := s.roller.Roll(n)
	if err != nil {
		slog.Warn("dice roll failed, using first option", "size", n, "error", err)
		return 0
	}
	return roll - 1
}

// Shuffle permutes n elements with a Fisher-Yates pass
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}

// Shuffled returns a shuffled copy of in
func Shuffled[T any](s *Source, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	s.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Pick returns a uniformly chosen element of in
func Pick[T any](s *Source, in []T) (T, bool) {
	var zero T
	if len(in) == 0 {
		return zero, false
	}
	return in[s.Intn(len(in))], true
}

var _ dice.Roller = (*SeededRoller)(nil)

// SeededRoller is a dice.Roller backed by a PCG generator
type SeededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller creates a roller whose sequence depends only on seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}
	out := make([]int, count)
	for i := range out {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = roll
	}
	return out, nil
}
