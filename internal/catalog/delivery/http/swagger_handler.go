package http

// SearchProducts godoc
// @Summary Search products
// @Description Full-text search over product title and description with optional price and rating filters
// @Tags Catalog
// @Produce json
// @Param keyword query string false "Free-text query"
// @Param min_price query number false "Minimum price (inclusive)"
// @Param max_price query number false "Maximum price (inclusive)"
// @Param min_rating query number false "Minimum rating (inclusive)"
// @Success 200 {array} domain.ProductSearchResult
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 503 {object} httpserver.ErrorResponse
// @Router /products/search [get]
func (h *CatalogHandler) SearchProductsDoc() {}
