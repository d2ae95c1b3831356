package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/internal/customer/usecase/command"
	"github.com/tair/shopfront/internal/customer/usecase/query"
	"github.com/tair/shopfront/pkg/apperror"
	"github.com/tair/shopfront/pkg/httpserver"
	"github.com/tair/shopfront/pkg/logger"
)

const (
	msgCustomerNotFound   = "Customer not found."
	msgProductNotFound    = "Product not found."
	msgFavoriteNotFound   = "Favorite not found."
	msgFavoriteDuplicate  = "Product already marked as favorite."
	msgDuplicateEmail     = "A customer with this email already exists."
	msgInvalidJSON        = "Invalid JSON payload."
	msgInvalidPayload     = "Invalid payload."
	msgValidateUnavail    = "Unable to validate product with external service."
	msgEnrichUnavail      = "Unable to fetch product details from external service."
	msgInternal           = "Internal server error."
	msgServiceUnavailable = "Service unavailable."
)

// CustomerHandler handles HTTP requests for customers and their favorites
type CustomerHandler struct {
	// Command handlers
	createHandler         *command.CreateCustomerHandler
	updateHandler         *command.UpdateCustomerHandler
	deleteHandler         *command.DeleteCustomerHandler
	addFavoriteHandler    *command.AddFavoriteHandler
	removeFavoriteHandler *command.RemoveFavoriteHandler

	// Query handlers
	listHandler          *query.ListCustomersHandler
	getHandler           *query.GetCustomerHandler
	listFavoritesHandler *query.ListFavoritesHandler

	metrics *httpserver.Metrics
}

// NewCustomerHandler creates a new customer handler from the repositories
// and the product gateway
func NewCustomerHandler(
	customers domain.CustomerRepository,
	favorites domain.FavoriteRepository,
	products domain.ProductGateway,
	reg prometheus.Registerer,
) *CustomerHandler {
	return NewCustomerHandlerWithDI(
		command.NewCreateCustomerHandler(customers),
		command.NewUpdateCustomerHandler(customers),
		command.NewDeleteCustomerHandler(customers),
		command.NewAddFavoriteHandler(favorites, products),
		command.NewRemoveFavoriteHandler(favorites),
		query.NewListCustomersHandler(customers),
		query.NewGetCustomerHandler(customers),
		query.NewListFavoritesHandler(favorites, products),
		reg,
	)
}

// NewCustomerHandlerWithDI creates a customer handler with injected use cases.
// This is used by Wire for dependency injection.
func NewCustomerHandlerWithDI(
	createHandler *command.CreateCustomerHandler,
	updateHandler *command.UpdateCustomerHandler,
	deleteHandler *command.DeleteCustomerHandler,
	addFavoriteHandler *command.AddFavoriteHandler,
	removeFavoriteHandler *command.RemoveFavoriteHandler,
	listHandler *query.ListCustomersHandler,
	getHandler *query.GetCustomerHandler,
	listFavoritesHandler *query.ListFavoritesHandler,
	reg prometheus.Registerer,
) *CustomerHandler {
	return &CustomerHandler{
		createHandler:         createHandler,
		updateHandler:         updateHandler,
		deleteHandler:         deleteHandler,
		addFavoriteHandler:    addFavoriteHandler,
		removeFavoriteHandler: removeFavoriteHandler,
		listHandler:           listHandler,
		getHandler:            getHandler,
		listFavoritesHandler:  listFavoritesHandler,
		metrics:               httpserver.NewMetrics(reg, "shopfront"),
	}
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	const (
		users     = "/users/"
		user      = "/users/{id:[0-9]+}/"
		favorites = "/users/{id:[0-9]+}/favorites/"
		favorite  = "/users/{id:[0-9]+}/favorites/{product_id:[0-9]+}/"
	)

	httpserver.HandleSlashOptional(router, users, h.metrics.Instrument(users, h.ListCustomers), http.MethodGet)
	httpserver.HandleSlashOptional(router, users, h.metrics.Instrument(users, h.CreateCustomer), http.MethodPost)

	httpserver.HandleSlashOptional(router, user, h.metrics.Instrument(user, h.GetCustomer), http.MethodGet)
	httpserver.HandleSlashOptional(router, user, h.metrics.Instrument(user, h.UpdateCustomer), http.MethodPut)
	httpserver.HandleSlashOptional(router, user, h.metrics.Instrument(user, h.DeleteCustomer), http.MethodDelete)

	httpserver.HandleSlashOptional(router, favorites, h.metrics.Instrument(favorites, h.ListFavorites), http.MethodGet)
	httpserver.HandleSlashOptional(router, favorites, h.metrics.Instrument(favorites, h.AddFavorite), http.MethodPost)

	httpserver.HandleSlashOptional(router, favorite, h.metrics.Instrument(favorite, h.RemoveFavorite), http.MethodDelete)
}

type createCustomerRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
}

type updateCustomerRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=254"`
}

type addFavoriteRequest struct {
	ProductID *int64 `json:"product_id" validate:"required,gte=1"`
}

// ListCustomers handles GET /users/
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.listHandler.Handle(r.Context(), query.ListCustomersQuery{})
	if err != nil {
		writeError(w, r, err, msgServiceUnavailable)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	httpserver.WriteJSON(w, http.StatusOK, customers)
}

// CreateCustomer handles POST /users/
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer, err := h.createHandler.Handle(r.Context(), command.CreateCustomerCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err, msgServiceUnavailable)
		return
	}

	httpserver.WriteJSON(w, http.StatusCreated, customer)
}

// GetCustomer handles GET /users/{id}/
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgCustomerNotFound)
	if !ok {
		return
	}

	customer, err := h.getHandler.Handle(r.Context(), query.GetCustomerQuery{ID: uint(id)})
	if err != nil {
		writeError(w, r, err, msgServiceUnavailable)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, customer)
}

// UpdateCustomer handles PUT /users/{id}/
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgCustomerNotFound)
	if !ok {
		return
	}

	var req updateCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer, err := h.updateHandler.Handle(r.Context(), command.UpdateCustomerCommand{
		ID:    uint(id),
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeError(w, r, err, msgServiceUnavailable)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /users/{id}/
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgCustomerNotFound)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteCustomerCommand{ID: uint(id)}); err != nil {
		writeError(w, r, err, msgServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListFavorites handles GET /users/{id}/favorites/
func (h *CustomerHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgCustomerNotFound)
	if !ok {
		return
	}

	favorites, err := h.listFavoritesHandler.Handle(r.Context(), query.ListFavoritesQuery{CustomerID: uint(id)})
	if err != nil {
		writeError(w, r, err, msgEnrichUnavail)
		return
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}

	httpserver.WriteJSON(w, http.StatusOK, favorites)
}

// AddFavorite handles POST /users/{id}/favorites/
func (h *CustomerHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgCustomerNotFound)
	if !ok {
		return
	}

	var req addFavoriteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	favorite, err := h.addFavoriteHandler.Handle(r.Context(), command.AddFavoriteCommand{
		CustomerID: uint(id),
		ProductID:  *req.ProductID,
	})
	if err != nil {
		writeError(w, r, err, msgValidateUnavail)
		return
	}

	httpserver.WriteJSON(w, http.StatusCreated, favorite)
}

// RemoveFavorite handles DELETE /users/{id}/favorites/{product_id}/
func (h *CustomerHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", msgFavoriteNotFound)
	if !ok {
		return
	}
	productID, ok := pathID(w, r, "product_id", msgFavoriteNotFound)
	if !ok {
		return
	}

	err := h.removeFavoriteHandler.Handle(r.Context(), command.RemoveFavoriteCommand{
		CustomerID: uint(id),
		ProductID:  int64(productID),
	})
	if err != nil {
		// an unknown customer is reported the same as an unknown favorite
		if errors.Is(err, apperror.ErrCustomerNotFound) {
			err = apperror.FavoriteNotFound(uint(id), int64(productID))
		}
		writeError(w, r, err, msgServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health. ping may be nil when the store has no
// connection to check.
func (h *CustomerHandler) HealthCheck(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := ping(ctx); err != nil {
				logger.Warn(r.Context()).Err(err).Msg("Health check failed")
				httpserver.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
				return
			}
		}

		httpserver.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// RegisterHealthCheck mounts GET /health
func (h *CustomerHandler) RegisterHealthCheck(router *mux.Router, ping func(ctx context.Context) error) {
	router.HandleFunc("/health", h.HealthCheck(ping)).Methods(http.MethodGet)
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpserver.DecodeJSON(r, dst); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return false
	}
	if details := httpserver.Validate(dst); details != nil {
		httpserver.WriteError(w, http.StatusBadRequest, msgInvalidPayload, details)
		return false
	}
	return true
}

// pathID parses a numeric route variable. The route patterns only admit
// digits, so a failure here means the value overflowed or was zero.
func pathID(w http.ResponseWriter, r *http.Request, name, notFound string) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 63)
	if err != nil || id == 0 {
		httpserver.WriteError(w, http.StatusNotFound, notFound, nil)
		return 0, false
	}
	return id, true
}

// writeError maps contract errors to status codes and messages.
// unavailable is the message used when a dependency could not be reached.
func writeError(w http.ResponseWriter, r *http.Request, err error, unavailable string) {
	switch {
	case errors.Is(err, apperror.ErrCustomerNotFound):
		httpserver.WriteError(w, http.StatusNotFound, msgCustomerNotFound, nil)
	case errors.Is(err, apperror.ErrProductNotFound):
		httpserver.WriteError(w, http.StatusNotFound, msgProductNotFound, nil)
	case errors.Is(err, apperror.ErrFavoriteNotFound):
		httpserver.WriteError(w, http.StatusNotFound, msgFavoriteNotFound, nil)
	case errors.Is(err, apperror.ErrFavoriteAlreadyExists):
		httpserver.WriteError(w, http.StatusBadRequest, msgFavoriteDuplicate, nil)
	case apperror.KindOf(err) == apperror.KindConstraintViolation:
		httpserver.WriteError(w, http.StatusBadRequest, msgDuplicateEmail, map[string]string{"email": "Must be unique."})
	case apperror.KindOf(err) == apperror.KindValidation:
		var details map[string]string
		if appErr, ok := apperror.As(err); ok {
			details = appErr.Fields
		}
		httpserver.WriteError(w, http.StatusBadRequest, msgInvalidPayload, details)
	case apperror.KindOf(err) == apperror.KindUnavailable:
		logger.Warn(r.Context()).Err(err).Msg("Dependency unavailable")
		httpserver.WriteError(w, http.StatusServiceUnavailable, unavailable, nil)
	default:
		logger.Error(r.Context()).Err(err).Msg("Unexpected error")
		httpserver.WriteError(w, http.StatusInternalServerError, msgInternal, nil)
	}
}
