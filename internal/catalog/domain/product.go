package domain

import "context"

// ProductSearchResult is one product returned by the search index
type ProductSearchResult struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Rating      *float64 `json:"rating"`
	Image       *string  `json:"image"`
}

// SearchFilter narrows a product search. An empty Query and nil bounds mean
// "no constraint"; all fields combine with AND.
type SearchFilter struct {
	Query     string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

// HasConstraints reports whether any field restricts the result set
func (f SearchFilter) HasConstraints() bool {
	return f.Query != "" || f.MinPrice != nil || f.MaxPrice != nil || f.MinRating != nil
}

// ProductSearchRepository queries the product search index
type ProductSearchRepository interface {
	Search(ctx context.Context, filter SearchFilter) ([]ProductSearchResult, error)
}
