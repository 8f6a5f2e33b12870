// Package sampledata produces shirt catalogs for seeding and load testing, either synthesized
// from a seeded random source or read from a catalog file.
package sampledata

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/mrops-br/shirt-search-api/internal/domain"
)

// Builder synthesizes catalogs of domain-valid shirts. It is safe for concurrent use and
// produces the same catalog for the same seed.
type Builder struct {
	size int
	seed int64

	mu   sync.Mutex
	rand *rand.Rand
}

// NewBuilder creates a Builder producing size shirts from seed.
func NewBuilder(size int, seed int64) *Builder {
	if size < 0 {
		size = 0
	}
	return &Builder{
		size: size,
		seed: seed,
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the initial seed.
func (b *Builder) Seed() int64 {
	return b.seed
}

// CreateShirts returns a new catalog of b.size shirts named "<Color> - <Size>".
// Successive calls continue the random sequence.
func (b *Builder) CreateShirts() ([]domain.Shirt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	colors := domain.AllColors()
	sizes := domain.AllSizes()

	shirts := make([]domain.Shirt, 0, b.size)
	for i := 0; i < b.size; i++ {
		id, err := uuid.NewRandomFromReader(b.rand)
		if err != nil {
			return nil, fmt.Errorf("failed to generate shirt id: %w", err)
		}
		color := colors[b.rand.Intn(len(colors))]
		size := sizes[b.rand.Intn(len(sizes))]

		shirt, err := domain.NewShirtWithID(id, fmt.Sprintf("%s - %s", color, size), color, size)
		if err != nil {
			return nil, err
		}
		shirts = append(shirts, shirt)
	}

	return shirts, nil
}
