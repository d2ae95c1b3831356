//go:build wireinject
// +build wireinject

package customer

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/shopfront/internal/customer/delivery/http"
	"github.com/tair/shopfront/internal/customer/domain"
)

// InitializeHTTPHandler initializes the customer HTTP handler with all dependencies
func InitializeHTTPHandler(
	customers domain.CustomerRepository,
	favorites domain.FavoriteRepository,
	products domain.ProductGateway,
	settings EnrichSettings,
	reg prometheus.Registerer,
) (*http.CustomerHandler, error) {
	wire.Build(
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewCustomerHandlerWithDI,
	)
	return nil, nil
}
