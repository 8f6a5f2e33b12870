// Package search implements the catalog filter and the per-color and per-size aggregation
// that accompanies every result.
package search

import (
	"fmt"

	"github.com/mrops-br/shirt-search-api/internal/domain"
)

// Engine searches a fixed catalog of shirts. It holds no mutable state and may be used by
// concurrent callers as long as nobody modifies the catalog slice while searches run.
type Engine struct {
	shirts []domain.Shirt
}

// NewEngine creates an engine over shirts. A nil catalog is accepted here and reported by Search.
func NewEngine(shirts []domain.Shirt) *Engine {
	return &Engine{shirts: shirts}
}

// Search returns the shirts matching opts in catalog order together with complete color and
// size count tables over the matches.
//
// A shirt matches when its color is one of opts.Colors and its size is one of opts.Sizes, where
// an empty slice accepts every value. Shirts carrying a color or size outside the domain never match.
func (e *Engine) Search(opts *domain.SearchOptions) (*domain.SearchResults, error) {
	if e == nil || e.shirts == nil {
		return nil, domain.ErrNilCatalog
	}
	if opts == nil {
		return nil, domain.ErrNilSearchOptions
	}

	colors, err := colorFilter(opts.Colors)
	if err != nil {
		return nil, err
	}
	sizes, err := sizeFilter(opts.Sizes)
	if err != nil {
		return nil, err
	}

	var (
		colorTally [domain.White + 1]int
		sizeTally  [domain.Large + 1]int
	)

	matched := make([]domain.Shirt, 0)
	for _, shirt := range e.shirts {
		if !colors.contains(shirt.Color) || !sizes.contains(shirt.Size) {
			continue
		}
		matched = append(matched, shirt)
		colorTally[shirt.Color]++
		sizeTally[shirt.Size]++
	}

	allColors := domain.AllColors()
	colorCounts := make([]domain.ColorCount, len(allColors))
	for i, c := range allColors {
		colorCounts[i] = domain.ColorCount{Color: c, Count: colorTally[c]}
	}

	allSizes := domain.AllSizes()
	sizeCounts := make([]domain.SizeCount, len(allSizes))
	for i, s := range allSizes {
		sizeCounts[i] = domain.SizeCount{Size: s, Count: sizeTally[s]}
	}

	return &domain.SearchResults{
		Shirts:      matched,
		ColorCounts: colorCounts,
		SizeCounts:  sizeCounts,
	}, nil
}

// colorSet is indexed by color value; index 0 is never set.
type colorSet [domain.White + 1]bool

func (s *colorSet) contains(c domain.Color) bool {
	return c.Valid() && s[c]
}

func colorFilter(wanted []domain.Color) (*colorSet, error) {
	if wanted == nil {
		return nil, domain.ErrNilColors
	}

	set := &colorSet{}
	for _, c := range wanted {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownColor, c)
		}
		set[c] = true
	}

	if len(wanted) == 0 {
		for _, c := range domain.AllColors() {
			set[c] = true
		}
	}
	return set, nil
}

// sizeSet is indexed by size value; index 0 is never set.
type sizeSet [domain.Large + 1]bool

func (s *sizeSet) contains(size domain.Size) bool {
	return size.Valid() && s[size]
}

func sizeFilter(wanted []domain.Size) (*sizeSet, error) {
	if wanted == nil {
		return nil, domain.ErrNilSizes
	}

	set := &sizeSet{}
	for _, s := range wanted {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSize, s)
		}
		set[s] = true
	}

	if len(wanted) == 0 {
		for _, s := range domain.AllSizes() {
			set[s] = true
		}
	}
	return set, nil
}
