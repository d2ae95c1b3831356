package command

import (
	"context"

	"github.com/tair/shopfront/internal/customer/domain"
)

// CreateCustomerCommand represents the command to create a customer
type CreateCustomerCommand struct {
	Name     string
	Email    string
	Password string
}

// CreateCustomerHandler handles customer creation
type CreateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewCreateCustomerHandler creates a new create customer handler
func NewCreateCustomerHandler(repo domain.CustomerRepository) *CreateCustomerHandler {
	return &CreateCustomerHandler{repo: repo}
}

// Handle executes the create customer command. A duplicate email surfaces
// as the repository's constraint violation, untouched.
func (h *CreateCustomerHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*domain.Customer, error) {
	return h.repo.Create(ctx, domain.NewCustomer{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Password: cmd.Password,
	})
}
