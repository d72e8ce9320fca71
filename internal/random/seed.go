// Package random provides the random-number source used by game rules.
//
// Rules draw through the Source interface so tests can replay a fixed
// sequence; production code wraps math/rand seeded from crypto/rand.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a deterministic source for seed. A zero seed is replaced with
// one from NewSeed.
func New(seed int64) (Source, int64, error) {
	if seed == 0 {
		var err error
		seed, err = NewSeed()
		if err != nil {
			return nil, 0, err
		}
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// Global returns a source backed by the math/rand top-level generator.
func Global() Source {
	return globalSource{}
}
