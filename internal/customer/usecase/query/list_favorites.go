package query

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tair/shopfront/internal/customer/domain"
)

// ListFavoritesQuery represents the query to list a customer's favorites
type ListFavoritesQuery struct {
	CustomerID uint
}

// ListFavoritesHandler lists favorites and enriches each with catalog data
type ListFavoritesHandler struct {
	repo        domain.FavoriteRepository
	products    domain.ProductGateway
	concurrency int
}

// NewListFavoritesHandler creates a handler that enriches favorites one at
// a time
func NewListFavoritesHandler(repo domain.FavoriteRepository, products domain.ProductGateway) *ListFavoritesHandler {
	return NewListFavoritesHandlerWithConcurrency(repo, products, 1)
}

// NewListFavoritesHandlerWithConcurrency creates a handler that runs up to
// concurrency catalog lookups at once
func NewListFavoritesHandlerWithConcurrency(repo domain.FavoriteRepository, products domain.ProductGateway, concurrency int) *ListFavoritesHandler {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ListFavoritesHandler{repo: repo, products: products, concurrency: concurrency}
}

// Handle executes the list favorites query. Output order matches the
// repository's. A product missing from the catalog leaves its fields nil;
// a catalog failure fails the whole listing.
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]domain.Favorite, error) {
	favorites, err := h.repo.List(ctx, q.CustomerID)
	if err != nil {
		return nil, err
	}

	enriched := make([]domain.Favorite, len(favorites))

	if h.concurrency == 1 {
		for i, f := range favorites {
			details, err := h.products.GetDetails(ctx, f.ProductID)
			if err != nil {
				return nil, err
			}
			enriched[i] = f.WithDetails(details)
		}
		return enriched, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)
	for i, f := range favorites {
		g.Go(func() error {
			details, err := h.products.GetDetails(gctx, f.ProductID)
			if err != nil {
				return err
			}
			enriched[i] = f.WithDetails(details)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}
