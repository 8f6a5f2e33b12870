package dto

import (
	"github.com/mrops-br/shirt-search-api/internal/domain"
)

// CreateShirtRequest represents the request to create a shirt
type CreateShirtRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Size  string `json:"size"`
}

// ShirtResponse represents the shirt response
type ShirtResponse struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Color domain.Color `json:"color"`
	Size  domain.Size  `json:"size"`
}

// SearchRequest represents a catalog search.
//
// A missing or null field is rejected; an empty array places no restriction on that attribute.
type SearchRequest struct {
	Colors []string `json:"colors"`
	Sizes  []string `json:"sizes"`
}

// ColorCountResponse is one entry of the color facet
type ColorCountResponse struct {
	Color domain.Color `json:"color"`
	Count int          `json:"count"`
}

// SizeCountResponse is one entry of the size facet
type SizeCountResponse struct {
	Size  domain.Size `json:"size"`
	Count int         `json:"count"`
}

// SearchResponse represents the search response
type SearchResponse struct {
	Shirts      []*ShirtResponse     `json:"shirts"`
	ColorCounts []ColorCountResponse `json:"colorCounts"`
	SizeCounts  []SizeCountResponse  `json:"sizeCounts"`
}

// ToShirt validates the request and builds a new domain shirt
func (r *CreateShirtRequest) ToShirt() (domain.Shirt, error) {
	color, err := domain.ParseColor(r.Color)
	if err != nil {
		return domain.Shirt{}, err
	}
	size, err := domain.ParseSize(r.Size)
	if err != nil {
		return domain.Shirt{}, err
	}
	return domain.NewShirt(r.Name, color, size)
}

// ToSearchOptions converts the request to domain search options. Nil fields stay nil so the
// engine reports them as missing.
func (r *SearchRequest) ToSearchOptions() (*domain.SearchOptions, error) {
	if r == nil {
		return nil, domain.ErrNilSearchOptions
	}

	opts := &domain.SearchOptions{}
	if r.Colors != nil {
		opts.Colors = make([]domain.Color, 0, len(r.Colors))
		for _, name := range r.Colors {
			c, err := domain.ParseColor(name)
			if err != nil {
				return nil, err
			}
			opts.Colors = append(opts.Colors, c)
		}
	}
	if r.Sizes != nil {
		opts.Sizes = make([]domain.Size, 0, len(r.Sizes))
		for _, name := range r.Sizes {
			s, err := domain.ParseSize(name)
			if err != nil {
				return nil, err
			}
			opts.Sizes = append(opts.Sizes, s)
		}
	}
	return opts, nil
}

// ToShirtResponse converts a domain Shirt to ShirtResponse
func ToShirtResponse(s domain.Shirt) *ShirtResponse {
	return &ShirtResponse{
		ID:    s.ID.String(),
		Name:  s.Name,
		Color: s.Color,
		Size:  s.Size,
	}
}

// ToShirtResponseList converts a list of domain Shirts to ShirtResponse list
func ToShirtResponseList(shirts []domain.Shirt) []*ShirtResponse {
	responses := make([]*ShirtResponse, len(shirts))
	for i, s := range shirts {
		responses[i] = ToShirtResponse(s)
	}
	return responses
}

// ToSearchResponse converts domain search results to SearchResponse
func ToSearchResponse(r *domain.SearchResults) *SearchResponse {
	colorCounts := make([]ColorCountResponse, len(r.ColorCounts))
	for i, cc := range r.ColorCounts {
		colorCounts[i] = ColorCountResponse{Color: cc.Color, Count: cc.Count}
	}
	sizeCounts := make([]SizeCountResponse, len(r.SizeCounts))
	for i, sc := range r.SizeCounts {
		sizeCounts[i] = SizeCountResponse{Size: sc.Size, Count: sc.Count}
	}

	return &SearchResponse{
		Shirts:      ToShirtResponseList(r.Shirts),
		ColorCounts: colorCounts,
		SizeCounts:  sizeCounts,
	}
}
