package domain

import "fmt"

var (
	ErrNilCatalog       = fmt.Errorf("%w: catalog is nil", ErrInvalidArgument)
	ErrNilSearchOptions = fmt.Errorf("%w: search options are nil", ErrInvalidArgument)
	ErrNilColors        = fmt.Errorf("%w: search options colors are nil", ErrInvalidArgument)
	ErrNilSizes         = fmt.Errorf("%w: search options sizes are nil", ErrInvalidArgument)
)

// SearchOptions holds the selection criteria for a catalog search.
//
// Both slices must be non-nil. An empty slice places no restriction on its dimension,
// a nil slice is rejected as a missing argument.
type SearchOptions struct {
	Colors []Color
	Sizes  []Size
}

// ColorCount is the number of matched shirts of one color
type ColorCount struct {
	Color Color
	Count int
}

// SizeCount is the number of matched shirts of one size
type SizeCount struct {
	Size  Size
	Count int
}

// SearchResults is the outcome of a search: the matching shirts in catalog order and one
// count entry per domain value, in domain order, including zero counts.
type SearchResults struct {
	Shirts      []Shirt
	ColorCounts []ColorCount
	SizeCounts  []SizeCount
}
