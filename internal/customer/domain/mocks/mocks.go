// Package mocks provides testify mocks of the customer domain interfaces
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tair/shopfront/internal/customer/domain"
)

// CustomerRepository mocks domain.CustomerRepository
type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) Create(ctx context.Context, in domain.NewCustomer) (*domain.Customer, error) {
	args := m.Called(ctx, in)
	c, _ := args.Get(0).(*domain.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Customer)
	return cs, args.Error(1)
}

func (m *CustomerRepository) Get(ctx context.Context, id uint) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepository) Update(ctx context.Context, id uint, name, email string) (*domain.Customer, error) {
	args := m.Called(ctx, id, name, email)
	c, _ := args.Get(0).(*domain.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// FavoriteRepository mocks domain.FavoriteRepository
type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) Add(ctx context.Context, customerID uint, productID int64) (*domain.Favorite, error) {
	args := m.Called(ctx, customerID, productID)
	f, _ := args.Get(0).(*domain.Favorite)
	return f, args.Error(1)
}

func (m *FavoriteRepository) List(ctx context.Context, customerID uint) ([]domain.Favorite, error) {
	args := m.Called(ctx, customerID)
	fs, _ := args.Get(0).([]domain.Favorite)
	return fs, args.Error(1)
}

func (m *FavoriteRepository) Remove(ctx context.Context, customerID uint, productID int64) error {
	return m.Called(ctx, customerID, productID).Error(0)
}

// ProductGateway mocks domain.ProductGateway
type ProductGateway struct {
	mock.Mock
}

func (m *ProductGateway) Exists(ctx context.Context, productID int64) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

func (m *ProductGateway) GetDetails(ctx context.Context, productID int64) (*domain.ProductDetails, error) {
	args := m.Called(ctx, productID)
	d, _ := args.Get(0).(*domain.ProductDetails)
	return d, args.Error(1)
}

// FavoriteEventPublisher mocks domain.FavoriteEventPublisher
type FavoriteEventPublisher struct {
	mock.Mock
}

func (m *FavoriteEventPublisher) PublishFavoriteEvent(ctx context.Context, event domain.FavoriteEvent) error {
	return m.Called(ctx, event).Error(0)
}
