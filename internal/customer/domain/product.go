package domain

import "context"

// ProductRating is the catalog's aggregate review score
type ProductRating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// ProductDetails is the catalog's view of a product
type ProductDetails struct {
	ID     int64          `json:"id"`
	Title  string         `json:"title"`
	Image  string         `json:"image"`
	Price  float64        `json:"price"`
	Review *ProductRating `json:"review"`
}

// ProductGateway looks products up in the external catalog. A product the
// catalog does not know yields (nil, nil) from GetDetails and false from
// Exists; failing to reach the catalog yields an
// apperror.ErrProductServiceUnavailable error instead.
type ProductGateway interface {
	Exists(ctx context.Context, productID int64) (bool, error)
	GetDetails(ctx context.Context, productID int64) (*ProductDetails, error)
}
