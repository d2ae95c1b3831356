package customer

import (
	"github.com/google/wire"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/internal/customer/usecase/command"
	"github.com/tair/shopfront/internal/customer/usecase/query"
)

// EnrichSettings controls how favorites are enriched with catalog data
type EnrichSettings struct {
	Concurrency int
}

// ProvideCreateCustomerHandler provides the create customer use case
func ProvideCreateCustomerHandler(repo domain.CustomerRepository) *command.CreateCustomerHandler {
	return command.NewCreateCustomerHandler(repo)
}

// ProvideUpdateCustomerHandler provides the update customer use case
func ProvideUpdateCustomerHandler(repo domain.CustomerRepository) *command.UpdateCustomerHandler {
	return command.NewUpdateCustomerHandler(repo)
}

// ProvideDeleteCustomerHandler provides the delete customer use case
func ProvideDeleteCustomerHandler(repo domain.CustomerRepository) *command.DeleteCustomerHandler {
	return command.NewDeleteCustomerHandler(repo)
}

// ProvideAddFavoriteHandler provides the add favorite use case
func ProvideAddFavoriteHandler(repo domain.FavoriteRepository, products domain.ProductGateway) *command.AddFavoriteHandler {
	return command.NewAddFavoriteHandler(repo, products)
}

// ProvideRemoveFavoriteHandler provides the remove favorite use case
func ProvideRemoveFavoriteHandler(repo domain.FavoriteRepository) *command.RemoveFavoriteHandler {
	return command.NewRemoveFavoriteHandler(repo)
}

// ProvideListCustomersHandler provides the list customers use case
func ProvideListCustomersHandler(repo domain.CustomerRepository) *query.ListCustomersHandler {
	return query.NewListCustomersHandler(repo)
}

// ProvideGetCustomerHandler provides the get customer use case
func ProvideGetCustomerHandler(repo domain.CustomerRepository) *query.GetCustomerHandler {
	return query.NewGetCustomerHandler(repo)
}

// ProvideListFavoritesHandler provides the list favorites use case
func ProvideListFavoritesHandler(repo domain.FavoriteRepository, products domain.ProductGateway, settings EnrichSettings) *query.ListFavoritesHandler {
	return query.NewListFavoritesHandlerWithConcurrency(repo, products, settings.Concurrency)
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideCreateCustomerHandler,
	ProvideUpdateCustomerHandler,
	ProvideDeleteCustomerHandler,
	ProvideAddFavoriteHandler,
	ProvideRemoveFavoriteHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListCustomersHandler,
	ProvideGetCustomerHandler,
	ProvideListFavoritesHandler,
)
