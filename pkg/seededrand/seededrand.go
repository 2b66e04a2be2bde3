// Package seededrand implements a deterministic linear congruential PRNG and
// the helpers used to build reproducible mock records from it.
package seededrand

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/minio/sha256-simd"
)

// LCG constants from Numerical Recipes.
const (
	multiplier = 1664525
	increment  = 1013904223
)

// Source describes anything that yields a stream of pseudorandom uint64s.
type Source interface {
	Next() uint64
}

// Generator holds the state of a seeded LCG.
//
// A Generator is a plain value: assigning it copies the state, and the copy
// continues the stream independently of the original.
type Generator struct {
	state uint64
}

var _ Source = &Generator{}

// New creates a Generator whose entire output is determined by seed.
func New(seed uint64) Generator {
	return Generator{state: seed}
}

// SeedFromString derives a seed from arbitrary text so that named seeds
// ("demo", "screenshots") are as reproducible as numeric ones.
func SeedFromString(s string) uint64 {
	sum := sha256.Sum256([]byte(s))
	return binary.BigEndian.Uint64(sum[:8])
}

// ParseSeed reads s as a decimal seed and hashes it with SeedFromString
// otherwise.
func ParseSeed(s string) uint64 {
	s = strings.TrimSpace(s)
	if seed, err := strconv.ParseUint(s, 10, 64); err == nil {
		return seed
	}
	return SeedFromString(s)
}

// Next advances the state of g and returns it.
func (g *Generator) Next() uint64 {
	g.state = g.state*multiplier + increment // mod 2^64 by overflow
	return g.state
}

// Intn returns an int in [0, n). It returns 0 if n <= 0.
func (g *Generator) Intn(n int) int {
	return Intn(g, n)
}

// IntRange returns an int in [lo, hi). It returns lo if the range is empty
// or inverted.
func (g *Generator) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	// The width is taken in uint64 so ranges wider than MaxInt still work.
	width := uint64(hi) - uint64(lo)
	return int(uint64(lo) + g.Next()%width)
}

// Float64 returns Next()/2^64, a float64 in [0.0, 1.0).
func (g *Generator) Float64() float64 {
	f := float64(g.Next()) / (1 << 64)
	if f >= 1 {
		// States within 2^10 of the maximum round up to 2^64.
		f = math.Nextafter(1, 0)
	}
	return f
}

// FloatRange linearly maps Float64 onto [lo, hi).
func (g *Generator) FloatRange(lo, hi float64) float64 {
	return lo + g.Float64()*(hi-lo)
}

// Bool returns true for roughly half of the draws.
func (g *Generator) Bool() bool {
	return g.Intn(2) == 0
}

// Read fills p from the stream, eight bytes per draw. It never fails, which
// makes a Generator usable wherever an io.Reader of entropy is expected.
func (g *Generator) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.BigEndian.PutUint64(buf[:], g.Next())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

// Intn generates an int k that satisfies k >= 0 && k < n using s.
// Unlike most Intn implementations it does not panic: n <= 0 yields 0.
func Intn(s Source, n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Next() % uint64(n))
}

// Choice returns a uniformly chosen element of items. The boolean is false,
// and g is not advanced, when items is empty.
func Choice[T any](g *Generator, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[g.Intn(len(items))], true
}

// ChoiceOr is Choice with a fallback for empty input.
func ChoiceOr[T any](g *Generator, items []T, fallback T) T {
	if v, ok := Choice(g, items); ok {
		return v
	}
	return fallback
}

// Shuffled returns a Fisher-Yates shuffled copy of items.
//
// g is taken by value: the draws are made from a copy of the caller's
// generator, so the caller's own stream position does not move. Two calls
// with the same generator state produce the same permutation.
func Shuffled[T any](g Generator, items []T) []T {
	result := make([]T, len(items))
	copy(result, items)
	for i := len(result) - 1; i >= 1; i-- {
		j := g.Intn(i + 1)
		result[i], result[j] = result[j], result[i]
	}
	return result
}
