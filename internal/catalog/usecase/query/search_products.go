package query

import (
	"context"

	"github.com/tair/shopfront/internal/catalog/domain"
)

// SearchProductsQuery represents a product search request
type SearchProductsQuery struct {
	Keyword   string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
}

// SearchProductsHandler handles product search queries
type SearchProductsHandler struct {
	repo domain.ProductSearchRepository
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(repo domain.ProductSearchRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle executes the search products query
func (h *SearchProductsHandler) Handle(ctx context.Context, q SearchProductsQuery) ([]domain.ProductSearchResult, error) {
	return h.repo.Search(ctx, domain.SearchFilter{
		Query:     q.Keyword,
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		MinRating: q.MinRating,
	})
}
