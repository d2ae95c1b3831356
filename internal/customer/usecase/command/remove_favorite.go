package command

import (
	"context"

	"github.com/tair/shopfront/internal/customer/domain"
)

// RemoveFavoriteCommand represents the command to unmark a favorite
type RemoveFavoriteCommand struct {
	CustomerID uint
	ProductID  int64
}

// RemoveFavoriteHandler handles favorite removal
type RemoveFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(repo domain.FavoriteRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo}
}

// Handle executes the remove favorite command
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	return h.repo.Remove(ctx, cmd.CustomerID, cmd.ProductID)
}
