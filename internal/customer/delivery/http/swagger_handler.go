package http

// ListCustomers godoc
// @Summary List customers
// @Description Return every customer ordered by id
// @Tags Customers
// @Produce json
// @Success 200 {array} domain.Customer
// @Router /users/ [get]
func (h *CustomerHandler) ListCustomersDoc() {}

// CreateCustomer godoc
// @Summary Create customer
// @Description Register a new customer. Emails are unique.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string} true "Customer data"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} httpserver.ErrorResponse "Invalid payload or duplicated email"
// @Router /users/ [post]
func (h *CustomerHandler) CreateCustomerDoc() {}

// GetCustomer godoc
// @Summary Retrieve customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} httpserver.ErrorResponse "Customer not found"
// @Router /users/{id}/ [get]
func (h *CustomerHandler) GetCustomerDoc() {}

// UpdateCustomer godoc
// @Summary Update customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body object{name=string,email=string} true "Customer data"
// @Success 200 {object} domain.Customer
// @Failure 400 {object} httpserver.ErrorResponse "Invalid payload or duplicated email"
// @Failure 404 {object} httpserver.ErrorResponse "Customer not found"
// @Router /users/{id}/ [put]
func (h *CustomerHandler) UpdateCustomerDoc() {}

// DeleteCustomer godoc
// @Summary Delete customer
// @Description Remove a customer together with its favorites
// @Tags Customers
// @Param id path int true "Customer ID"
// @Success 204 "Customer removed"
// @Failure 404 {object} httpserver.ErrorResponse "Customer not found"
// @Router /users/{id}/ [delete]
func (h *CustomerHandler) DeleteCustomerDoc() {}

// ListFavorites godoc
// @Summary List favorites
// @Description Return the customer's favorite products enriched with live catalog data
// @Tags Favorites
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {array} domain.Favorite
// @Failure 404 {object} httpserver.ErrorResponse "Customer not found"
// @Failure 503 {object} httpserver.ErrorResponse "External product service unavailable"
// @Router /users/{id}/favorites/ [get]
func (h *CustomerHandler) ListFavoritesDoc() {}

// AddFavorite godoc
// @Summary Add favorite
// @Tags Favorites
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body object{product_id=int} true "Product to mark"
// @Success 201 {object} domain.Favorite
// @Failure 400 {object} httpserver.ErrorResponse "Invalid payload or favorite already registered"
// @Failure 404 {object} httpserver.ErrorResponse "Customer or product not found"
// @Failure 503 {object} httpserver.ErrorResponse "External product service unavailable"
// @Router /users/{id}/favorites/ [post]
func (h *CustomerHandler) AddFavoriteDoc() {}

// RemoveFavorite godoc
// @Summary Remove favorite
// @Tags Favorites
// @Param id path int true "Customer ID"
// @Param product_id path int true "Product ID"
// @Success 204 "Favorite removed"
// @Failure 404 {object} httpserver.ErrorResponse "Favorite not found"
// @Router /users/{id}/favorites/{product_id}/ [delete]
func (h *CustomerHandler) RemoveFavoriteDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and store connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *CustomerHandler) HealthCheckDoc() {}
