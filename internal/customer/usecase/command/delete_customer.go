package command

import (
	"context"

	"github.com/tair/shopfront/internal/customer/domain"
)

// DeleteCustomerCommand represents the command to delete a customer
type DeleteCustomerCommand struct {
	ID uint
}

// DeleteCustomerHandler handles customer deletion
type DeleteCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewDeleteCustomerHandler creates a new delete customer handler
func NewDeleteCustomerHandler(repo domain.CustomerRepository) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{repo: repo}
}

// Handle executes the delete customer command
func (h *DeleteCustomerHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	return h.repo.Delete(ctx, cmd.ID)
}
