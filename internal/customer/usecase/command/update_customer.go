package command

import (
	"context"

	"github.com/tair/shopfront/internal/customer/domain"
)

// UpdateCustomerCommand represents the command to replace a customer's data
type UpdateCustomerCommand struct {
	ID    uint
	Name  string
	Email string
}

// UpdateCustomerHandler handles customer updates
type UpdateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo}
}

// Handle executes the update customer command
func (h *UpdateCustomerHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*domain.Customer, error) {
	return h.repo.Update(ctx, cmd.ID, cmd.Name, cmd.Email)
}
