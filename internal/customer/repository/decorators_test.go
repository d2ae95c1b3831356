package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/internal/customer/domain/mocks"
	"github.com/tair/shopfront/pkg/apperror"
)

func newMemoryRepos() (*MemoryCustomerRepository, *MemoryFavoriteRepository) {
	store := NewMemoryStore()
	return NewMemoryCustomerRepository(store), NewMemoryFavoriteRepository(store)
}

func TestFavoriteRepositoryWithEventsPublishesOnSuccess(t *testing.T) {
	ctx := context.Background()
	customers, favorites := newMemoryRepos()
	c, err := customers.Create(ctx, domain.NewCustomer{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	publisher := &mocks.FavoriteEventPublisher{}
	publisher.On("PublishFavoriteEvent", mock.Anything, mock.MatchedBy(func(e domain.FavoriteEvent) bool {
		return e.Type == domain.FavoriteAdded && e.CustomerID == c.ID && e.ProductID == 4 && e.FavoriteID != 0
	})).Return(nil).Once()
	publisher.On("PublishFavoriteEvent", mock.Anything, mock.MatchedBy(func(e domain.FavoriteEvent) bool {
		return e.Type == domain.FavoriteRemoved && e.CustomerID == c.ID && e.ProductID == 4
	})).Return(errors.New("broker down")).Once()

	repo := NewFavoriteRepositoryWithEvents(favorites, publisher)

	_, err = repo.Add(ctx, c.ID, 4)
	require.NoError(t, err)
	// a failed publish does not fail the removal
	require.NoError(t, repo.Remove(ctx, c.ID, 4))

	publisher.AssertExpectations(t)
}

func TestFavoriteRepositoryWithEventsSkipsFailedWrites(t *testing.T) {
	ctx := context.Background()
	_, favorites := newMemoryRepos()
	publisher := &mocks.FavoriteEventPublisher{}

	repo := NewFavoriteRepositoryWithEvents(favorites, publisher)

	_, err := repo.Add(ctx, 1, 4)
	assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
	assert.ErrorIs(t, repo.Remove(ctx, 1, 4), apperror.ErrCustomerNotFound)
	_, err = repo.List(ctx, 1)
	assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)

	publisher.AssertNotCalled(t, "PublishFavoriteEvent", mock.Anything, mock.Anything)
}

func TestTracingDecoratorsRecordSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)

	ctx := context.Background()
	memCustomers, memFavorites := newMemoryRepos()
	customers := NewCustomerRepositoryWithTracing(memCustomers)
	favorites := NewFavoriteRepositoryWithTracing(memFavorites)

	c, err := customers.Create(ctx, domain.NewCustomer{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	_, err = favorites.Add(ctx, c.ID, 1)
	require.NoError(t, err)
	_, err = customers.Get(ctx, 999)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "repository.CreateCustomer", spans[0].Name())
	assert.Equal(t, "repository.AddFavorite", spans[1].Name())
	assert.Equal(t, "repository.GetCustomer", spans[2].Name())
	assert.Equal(t, codes.Error, spans[2].Status().Code)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}
