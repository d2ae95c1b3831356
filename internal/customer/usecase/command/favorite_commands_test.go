package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/internal/customer/domain/mocks"
	"github.com/tair/shopfront/pkg/apperror"
)

func TestAddFavoriteHandler(t *testing.T) {
	repo := &mocks.FavoriteRepository{}
	products := &mocks.ProductGateway{}
	fav := &domain.Favorite{ID: 10, CustomerID: 1, ProductID: 5}
	products.On("Exists", mock.Anything, int64(5)).Return(true, nil).Once()
	repo.On("Add", mock.Anything, uint(1), int64(5)).Return(fav, nil).Once()

	got, err := NewAddFavoriteHandler(repo, products).Handle(context.Background(), AddFavoriteCommand{CustomerID: 1, ProductID: 5})

	require.NoError(t, err)
	assert.Equal(t, fav, got)
	repo.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestAddFavoriteHandlerUnknownProductSkipsRepository(t *testing.T) {
	repo := &mocks.FavoriteRepository{}
	products := &mocks.ProductGateway{}
	products.On("Exists", mock.Anything, int64(999)).Return(false, nil)

	_, err := NewAddFavoriteHandler(repo, products).Handle(context.Background(), AddFavoriteCommand{CustomerID: 1, ProductID: 999})

	assert.ErrorIs(t, err, apperror.ErrProductNotFound)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddFavoriteHandlerGatewayFailure(t *testing.T) {
	repo := &mocks.FavoriteRepository{}
	products := &mocks.ProductGateway{}
	products.On("Exists", mock.Anything, int64(2)).
		Return(false, apperror.Unavailable(apperror.ResourceProductService, errors.New("timeout")))

	_, err := NewAddFavoriteHandler(repo, products).Handle(context.Background(), AddFavoriteCommand{CustomerID: 1, ProductID: 2})

	assert.ErrorIs(t, err, apperror.ErrProductServiceUnavailable)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddFavoriteHandlerPropagatesRepositoryErrors(t *testing.T) {
	for _, repoErr := range []error{
		apperror.CustomerNotFound(1),
		apperror.FavoriteAlreadyExists(1, 2),
	} {
		repo := &mocks.FavoriteRepository{}
		products := &mocks.ProductGateway{}
		products.On("Exists", mock.Anything, int64(2)).Return(true, nil)
		repo.On("Add", mock.Anything, uint(1), int64(2)).Return(nil, repoErr)

		_, err := NewAddFavoriteHandler(repo, products).Handle(context.Background(), AddFavoriteCommand{CustomerID: 1, ProductID: 2})
		assert.Same(t, repoErr, err)
	}
}

func TestRemoveFavoriteHandler(t *testing.T) {
	repo := &mocks.FavoriteRepository{}
	repo.On("Remove", mock.Anything, uint(1), int64(2)).Return(nil).Once()
	repo.On("Remove", mock.Anything, uint(1), int64(3)).Return(apperror.FavoriteNotFound(1, 3)).Once()

	h := NewRemoveFavoriteHandler(repo)
	assert.NoError(t, h.Handle(context.Background(), RemoveFavoriteCommand{CustomerID: 1, ProductID: 2}))
	assert.ErrorIs(t, h.Handle(context.Background(), RemoveFavoriteCommand{CustomerID: 1, ProductID: 3}), apperror.ErrFavoriteNotFound)
	repo.AssertExpectations(t)
}
