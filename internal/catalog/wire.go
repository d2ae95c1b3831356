//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/shopfront/internal/catalog/delivery/http"
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all dependencies
func InitializeHTTPHandler(client *elasticsearch.Client, settings SearchSettings, reg prometheus.Registerer) (*http.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		QueryHandlerSet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
