package domain

import (
	"context"
	"time"
)

// Favorite links a customer to an external product. The product fields are
// nil as stored and filled in from the catalog when favorites are listed.
type Favorite struct {
	ID         uint           `json:"id"`
	CustomerID uint           `json:"customer_id"`
	ProductID  int64          `json:"product_id"`
	Title      *string        `json:"title"`
	Image      *string        `json:"image"`
	Price      *float64       `json:"price"`
	Review     *ProductRating `json:"review"`
	CreatedAt  time.Time      `json:"created_at"`
}

// WithDetails returns a copy of f enriched with catalog data; nil details
// leave the product fields nil
func (f Favorite) WithDetails(details *ProductDetails) Favorite {
	if details == nil {
		return f
	}
	title, image, price := details.Title, details.Image, details.Price
	f.Title = &title
	f.Image = &image
	f.Price = &price
	f.Review = details.Review
	return f
}

// FavoriteRepository persists favorites. Every method reports
// apperror.ErrCustomerNotFound before looking at favorite rows.
type FavoriteRepository interface {
	// Add returns apperror.ErrFavoriteAlreadyExists for a duplicate pair.
	Add(ctx context.Context, customerID uint, productID int64) (*Favorite, error)
	// List returns favorites ordered by id.
	List(ctx context.Context, customerID uint) ([]Favorite, error)
	// Remove returns apperror.ErrFavoriteNotFound when nothing was deleted.
	Remove(ctx context.Context, customerID uint, productID int64) error
}
