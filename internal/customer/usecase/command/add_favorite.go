package command

import (
	"context"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/pkg/apperror"
)

// AddFavoriteCommand represents the command to mark a product as favorite
type AddFavoriteCommand struct {
	CustomerID uint
	ProductID  int64
}

// AddFavoriteHandler validates the product against the catalog before
// storing the favorite
type AddFavoriteHandler struct {
	repo     domain.FavoriteRepository
	products domain.ProductGateway
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(repo domain.FavoriteRepository, products domain.ProductGateway) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo, products: products}
}

// Handle executes the add favorite command
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (*domain.Favorite, error) {
	exists, err := h.products.Exists(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.ProductNotFound(cmd.ProductID)
	}

	return h.repo.Add(ctx, cmd.CustomerID, cmd.ProductID)
}
