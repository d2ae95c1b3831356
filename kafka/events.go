package kafka

import (
	"time"

	"github.com/tair/shopfront/internal/customer/domain"
)

// FavoriteChangedMessage is the wire form of a domain.FavoriteEvent
type FavoriteChangedMessage struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	CustomerID uint      `json:"customer_id"`
	ProductID  int64     `json:"product_id"`
	FavoriteID uint      `json:"favorite_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// DefaultFavoritesTopic receives favorite.added and favorite.removed events
const DefaultFavoritesTopic = "customer.favorites"

func newFavoriteChangedMessage(eventID string, event domain.FavoriteEvent) FavoriteChangedMessage {
	return FavoriteChangedMessage{
		EventID:    eventID,
		EventType:  string(event.Type),
		CustomerID: event.CustomerID,
		ProductID:  event.ProductID,
		FavoriteID: event.FavoriteID,
		Timestamp:  event.OccurredAt.UTC(),
	}
}
