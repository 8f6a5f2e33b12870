package search

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mrops-br/shirt-search-api/internal/domain"
)

// ErrVerificationFailed is returned by Verify when results disagree with the catalog.
var ErrVerificationFailed = errors.New("search results verification failed")

// Verify checks results against an independent evaluation of opts over catalog: every returned
// shirt satisfies the criteria, every satisfying catalog shirt is returned once in catalog order,
// and both count tables list each domain value once, in domain order, with counts that add up
// to the matched shirts.
func Verify(catalog []domain.Shirt, opts *domain.SearchOptions, results *domain.SearchResults) error {
	if opts == nil || results == nil {
		return fmt.Errorf("%w: options and results are required", ErrVerificationFailed)
	}

	var errs []error

	expected := make([]domain.Shirt, 0)
	for _, shirt := range catalog {
		if matches(opts, shirt) {
			expected = append(expected, shirt)
		}
	}

	for _, shirt := range results.Shirts {
		if !matches(opts, shirt) {
			errs = append(errs, fmt.Errorf("shirt %s (%s, %s) does not satisfy the criteria",
				shirt.ID, shirt.Color, shirt.Size))
		}
	}
	if !slices.Equal(expected, results.Shirts) {
		errs = append(errs, fmt.Errorf("expected %d matching shirts in catalog order, got %d",
			len(expected), len(results.Shirts)))
	}

	errs = append(errs, verifyColorCounts(results.Shirts, results.ColorCounts)...)
	errs = append(errs, verifySizeCounts(results.Shirts, results.SizeCounts)...)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrVerificationFailed, errors.Join(errs...))
	}
	return nil
}

func matches(opts *domain.SearchOptions, shirt domain.Shirt) bool {
	colorOK := len(opts.Colors) == 0 || slices.Contains(opts.Colors, shirt.Color)
	sizeOK := len(opts.Sizes) == 0 || slices.Contains(opts.Sizes, shirt.Size)
	return colorOK && sizeOK && shirt.Color.Valid() && shirt.Size.Valid()
}

func verifyColorCounts(shirts []domain.Shirt, counts []domain.ColorCount) []error {
	all := domain.AllColors()
	if len(counts) != len(all) {
		return []error{fmt.Errorf("expected %d color counts, got %d", len(all), len(counts))}
	}

	var errs []error
	total := 0
	for i, c := range all {
		if counts[i].Color != c {
			errs = append(errs, fmt.Errorf("color count %d: expected %s, got %s", i, c, counts[i].Color))
			continue
		}
		want := 0
		for _, shirt := range shirts {
			if shirt.Color == c {
				want++
			}
		}
		if counts[i].Count != want {
			errs = append(errs, fmt.Errorf("color %s: expected count %d, got %d", c, want, counts[i].Count))
		}
		total += counts[i].Count
	}
	if total != len(shirts) {
		errs = append(errs, fmt.Errorf("color counts sum to %d, expected %d", total, len(shirts)))
	}
	return errs
}

func verifySizeCounts(shirts []domain.Shirt, counts []domain.SizeCount) []error {
	all := domain.AllSizes()
	if len(counts) != len(all) {
		return []error{fmt.Errorf("expected %d size counts, got %d", len(all), len(counts))}
	}

	var errs []error
	total := 0
	for i, s := range all {
		if counts[i].Size != s {
			errs = append(errs, fmt.Errorf("size count %d: expected %s, got %s", i, s, counts[i].Size))
			continue
		}
		want := 0
		for _, shirt := range shirts {
			if shirt.Size == s {
				want++
			}
		}
		if counts[i].Count != want {
			errs = append(errs, fmt.Errorf("size %s: expected count %d, got %d", s, want, counts[i].Count))
		}
		total += counts[i].Count
	}
	if total != len(shirts) {
		errs = append(errs, fmt.Errorf("size counts sum to %d, expected %d", total, len(shirts)))
	}
	return errs
}
