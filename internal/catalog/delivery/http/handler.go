package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/shopfront/internal/catalog/domain"
	"github.com/tair/shopfront/internal/catalog/usecase/query"
	"github.com/tair/shopfront/pkg/apperror"
	"github.com/tair/shopfront/pkg/httpserver"
	"github.com/tair/shopfront/pkg/logger"
)

const invalidNumericFilter = "Invalid numeric filter"

// CatalogHandler serves product search
type CatalogHandler struct {
	searchHandler *query.SearchProductsHandler
	metrics       *httpserver.Metrics
}

// NewCatalogHandler creates a handler directly from a search repository
func NewCatalogHandler(repo domain.ProductSearchRepository, reg prometheus.Registerer) *CatalogHandler {
	return NewCatalogHandlerWithDI(query.NewSearchProductsHandler(repo), reg)
}

// NewCatalogHandlerWithDI creates a handler from prebuilt use cases.
// This is used by Wire for dependency injection.
func NewCatalogHandlerWithDI(searchHandler *query.SearchProductsHandler, reg prometheus.Registerer) *CatalogHandler {
	return &CatalogHandler{
		searchHandler: searchHandler,
		metrics:       httpserver.NewMetrics(reg, "shopfront"),
	}
}

// RegisterRoutes mounts the catalog endpoints
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	httpserver.HandleSlashOptional(router, "/products/search",
		h.metrics.Instrument("/products/search", h.SearchProducts), http.MethodGet)
}

// SearchProducts handles GET /products/search
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := query.SearchProductsQuery{Keyword: params.Get("keyword")}
	details := map[string]string{}
	for name, dst := range map[string]**float64{
		"min_price":  &q.MinPrice,
		"max_price":  &q.MaxPrice,
		"min_rating": &q.MinRating,
	} {
		v, err := parseOptionalFloat(params.Get(name))
		if err != nil {
			details[name] = "A valid number is required."
			continue
		}
		*dst = v
	}
	if len(details) > 0 {
		httpserver.WriteError(w, http.StatusBadRequest, invalidNumericFilter, details)
		return
	}

	results, err := h.searchHandler.Handle(r.Context(), q)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindUnavailable {
			logger.Error(r.Context()).Err(err).Msg("Product search failed")
			httpserver.WriteError(w, http.StatusServiceUnavailable, "Search service unavailable.", nil)
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Unexpected product search error")
		httpserver.WriteError(w, http.StatusInternalServerError, "Internal server error.", nil)
		return
	}

	if results == nil {
		results = []domain.ProductSearchResult{}
	}
	httpserver.WriteJSON(w, http.StatusOK, results)
}

// parseOptionalFloat treats an empty value as absent and rejects anything
// that is not a finite number
func parseOptionalFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, strconv.ErrSyntax
	}
	return &f, nil
}
