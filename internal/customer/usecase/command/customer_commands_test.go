package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/internal/customer/domain/mocks"
	"github.com/tair/shopfront/pkg/apperror"
)

func TestCreateCustomerHandler(t *testing.T) {
	repo := &mocks.CustomerRepository{}
	created := &domain.Customer{ID: 1, Name: "Ada", Email: "ada@example.com"}
	repo.On("Create", mock.Anything, domain.NewCustomer{Name: "Ada", Email: "ada@example.com", Password: "pw"}).
		Return(created, nil).Once()

	got, err := NewCreateCustomerHandler(repo).Handle(context.Background(), CreateCustomerCommand{
		Name: "Ada", Email: "ada@example.com", Password: "pw",
	})

	require.NoError(t, err)
	assert.Equal(t, created, got)
	repo.AssertExpectations(t)
}

func TestCreateCustomerHandlerPassesConstraintViolationThrough(t *testing.T) {
	repo := &mocks.CustomerRepository{}
	violation := apperror.ConstraintViolation(apperror.ResourceCustomer, "email", nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, violation)

	_, err := NewCreateCustomerHandler(repo).Handle(context.Background(), CreateCustomerCommand{Name: "A", Email: "a@example.com"})
	assert.Same(t, violation, err)
}

func TestUpdateCustomerHandler(t *testing.T) {
	repo := &mocks.CustomerRepository{}
	updated := &domain.Customer{ID: 3, Name: "New", Email: "new@example.com"}
	repo.On("Update", mock.Anything, uint(3), "New", "new@example.com").Return(updated, nil).Once()

	got, err := NewUpdateCustomerHandler(repo).Handle(context.Background(), UpdateCustomerCommand{ID: 3, Name: "New", Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	repo.On("Update", mock.Anything, uint(4), mock.Anything, mock.Anything).Return(nil, apperror.CustomerNotFound(4))
	_, err = NewUpdateCustomerHandler(repo).Handle(context.Background(), UpdateCustomerCommand{ID: 4, Name: "x", Email: "x@example.com"})
	assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
}

func TestDeleteCustomerHandler(t *testing.T) {
	repo := &mocks.CustomerRepository{}
	repo.On("Delete", mock.Anything, uint(5)).Return(nil).Once()
	repo.On("Delete", mock.Anything, uint(6)).Return(apperror.CustomerNotFound(6)).Once()

	h := NewDeleteCustomerHandler(repo)
	assert.NoError(t, h.Handle(context.Background(), DeleteCustomerCommand{ID: 5}))
	assert.ErrorIs(t, h.Handle(context.Background(), DeleteCustomerCommand{ID: 6}), apperror.ErrCustomerNotFound)
	repo.AssertExpectations(t)
}
