package query

import (
	"context"

	"github.com/tair/shopfront/internal/customer/domain"
)

// ListCustomersQuery represents the query to list every customer
type ListCustomersQuery struct{}

// ListCustomersHandler handles customer listing
type ListCustomersHandler struct {
	repo domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(repo domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{repo: repo}
}

// Handle executes the list customers query
func (h *ListCustomersHandler) Handle(ctx context.Context, _ ListCustomersQuery) ([]domain.Customer, error) {
	return h.repo.List(ctx)
}
