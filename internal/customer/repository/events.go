package repository

import (
	"context"
	"time"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/pkg/logger"
)

// FavoriteRepositoryWithEvents publishes a FavoriteEvent after every
// successful Add or Remove. Publishing failures are logged and never undo
// or fail the write.
type FavoriteRepositoryWithEvents struct {
	next      domain.FavoriteRepository
	publisher domain.FavoriteEventPublisher
	now       func() time.Time
}

// NewFavoriteRepositoryWithEvents wraps next with event publishing
func NewFavoriteRepositoryWithEvents(next domain.FavoriteRepository, publisher domain.FavoriteEventPublisher) *FavoriteRepositoryWithEvents {
	return &FavoriteRepositoryWithEvents{next: next, publisher: publisher, now: time.Now}
}

// Add stores the favorite and emits favorite.added
func (r *FavoriteRepositoryWithEvents) Add(ctx context.Context, customerID uint, productID int64) (*domain.Favorite, error) {
	f, err := r.next.Add(ctx, customerID, productID)
	if err != nil {
		return nil, err
	}

	r.publish(ctx, domain.FavoriteEvent{
		Type:       domain.FavoriteAdded,
		CustomerID: customerID,
		ProductID:  productID,
		FavoriteID: f.ID,
		OccurredAt: r.now(),
	})
	return f, nil
}

// List delegates without publishing
func (r *FavoriteRepositoryWithEvents) List(ctx context.Context, customerID uint) ([]domain.Favorite, error) {
	return r.next.List(ctx, customerID)
}

// Remove deletes the favorite and emits favorite.removed
func (r *FavoriteRepositoryWithEvents) Remove(ctx context.Context, customerID uint, productID int64) error {
	if err := r.next.Remove(ctx, customerID, productID); err != nil {
		return err
	}

	r.publish(ctx, domain.FavoriteEvent{
		Type:       domain.FavoriteRemoved,
		CustomerID: customerID,
		ProductID:  productID,
		OccurredAt: r.now(),
	})
	return nil
}

func (r *FavoriteRepositoryWithEvents) publish(ctx context.Context, event domain.FavoriteEvent) {
	if err := r.publisher.PublishFavoriteEvent(ctx, event); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("event_type", string(event.Type)).
			Uint("customer_id", event.CustomerID).
			Int64("product_id", event.ProductID).
			Msg("Failed to publish favorite event")
	}
}
