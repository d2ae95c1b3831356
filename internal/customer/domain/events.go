package domain

import (
	"context"
	"time"
)

// FavoriteEventType names a favorites state change
type FavoriteEventType string

const (
	FavoriteAdded   FavoriteEventType = "favorite.added"
	FavoriteRemoved FavoriteEventType = "favorite.removed"
)

// FavoriteEvent describes a committed change to a customer's favorites
type FavoriteEvent struct {
	Type       FavoriteEventType
	CustomerID uint
	ProductID  int64
	FavoriteID uint
	OccurredAt time.Time
}

// FavoriteEventPublisher emits favorite events to interested parties
type FavoriteEventPublisher interface {
	PublishFavoriteEvent(ctx context.Context, event FavoriteEvent) error
}
