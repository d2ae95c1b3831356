package catalog

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/wire"

	"github.com/tair/shopfront/internal/catalog/domain"
	"github.com/tair/shopfront/internal/catalog/repository"
	"github.com/tair/shopfront/internal/catalog/usecase/query"
)

// SearchSettings selects the index and page size used by the search adapter
type SearchSettings struct {
	Index string
	Size  int
}

// ProvideSearchRepository provides the traced Elasticsearch repository
func ProvideSearchRepository(client *elasticsearch.Client, settings SearchSettings) domain.ProductSearchRepository {
	return repository.NewProductSearchRepositoryWithTracing(
		repository.NewElasticsearchProductRepository(client, settings.Index, settings.Size),
	)
}

// ProvideSearchProductsHandler provides the search use case
func ProvideSearchProductsHandler(repo domain.ProductSearchRepository) *query.SearchProductsHandler {
	return query.NewSearchProductsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSearchRepository,
)

var QueryHandlerSet = wire.NewSet(
	ProvideSearchProductsHandler,
)
