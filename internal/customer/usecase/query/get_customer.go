package query

import (
	"context"

	"github.com/tair/shopfront/internal/customer/domain"
)

// GetCustomerQuery represents the query to fetch one customer
type GetCustomerQuery struct {
	ID uint
}

// GetCustomerHandler handles single customer lookups
type GetCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewGetCustomerHandler creates a new get customer handler
func NewGetCustomerHandler(repo domain.CustomerRepository) *GetCustomerHandler {
	return &GetCustomerHandler{repo: repo}
}

// Handle executes the get customer query
func (h *GetCustomerHandler) Handle(ctx context.Context, q GetCustomerQuery) (*domain.Customer, error) {
	return h.repo.Get(ctx, q.ID)
}
