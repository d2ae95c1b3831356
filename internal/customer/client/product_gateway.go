package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/pkg/apperror"
	"github.com/tair/shopfront/pkg/circuitbreaker"
	"github.com/tair/shopfront/pkg/logger"
	"github.com/tair/shopfront/pkg/metrics"
)

// DefaultTimeout bounds every call to the product service
const DefaultTimeout = 5 * time.Second

// Lookup outcomes recorded by the gateway metrics
const (
	outcomeFound       = "found"
	outcomeMissing     = "missing"
	outcomeUnavailable = "unavailable"
	outcomeRejected    = "rejected"
)

// ProductServiceConfig configures ProductServiceClient
type ProductServiceConfig struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit is the sustained requests per second; zero means unlimited.
	RateLimit float64
	RateBurst int
	// BreakerFailures consecutive unavailable results open the circuit;
	// zero disables the breaker.
	BreakerFailures int
	BreakerCooldown time.Duration
	// Transport overrides the base round tripper, mainly for tests.
	Transport http.RoundTripper
}

// ProductServiceClient implements domain.ProductGateway against a
// fakestoreapi-compatible HTTP catalog
type ProductServiceClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *circuitbreaker.Breaker
	lookups    *prometheus.CounterVec
}

// NewProductServiceClient creates a new product service client
func NewProductServiceClient(cfg ProductServiceConfig, reg prometheus.Registerer) *ProductServiceClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	lookups := metrics.RegisterOrReuse(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopfront",
			Name:      "product_gateway_requests_total",
			Help:      "Product catalog lookups by outcome",
		},
		[]string{"outcome"},
	))

	logger.Logger.Info().
		Str("address", cfg.BaseURL).
		Dur("timeout", timeout).
		Float64("rate_limit", cfg.RateLimit).
		Int("breaker_failures", cfg.BreakerFailures).
		Msg("Product service client initialized")

	return &ProductServiceClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(base),
		},
		limiter: rate.NewLimiter(limit, burst),
		breaker: circuitbreaker.New(circuitbreaker.Settings{
			Name:        "product-service",
			MaxFailures: cfg.BreakerFailures,
			Cooldown:    cfg.BreakerCooldown,
		}),
		lookups: lookups,
	}
}

// Exists reports whether the catalog knows productID
func (c *ProductServiceClient) Exists(ctx context.Context, productID int64) (bool, error) {
	details, err := c.GetDetails(ctx, productID)
	if err != nil {
		return false, err
	}
	return details != nil, nil
}

// GetDetails fetches a product. Non-positive ids are answered locally
// without a network call.
func (c *ProductServiceClient) GetDetails(ctx context.Context, productID int64) (*domain.ProductDetails, error) {
	if productID <= 0 {
		c.lookups.WithLabelValues(outcomeRejected).Inc()
		return nil, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		c.lookups.WithLabelValues(outcomeUnavailable).Inc()
		return nil, apperror.Unavailable(apperror.ResourceProductService, fmt.Errorf("rate limiter: %w", err))
	}

	var details *domain.ProductDetails
	err := c.breaker.Call(func() error {
		var fetchErr error
		details, fetchErr = c.fetch(ctx, productID)
		return fetchErr
	})
	if err != nil {
		c.lookups.WithLabelValues(outcomeUnavailable).Inc()
		if errors.Is(err, circuitbreaker.ErrOpen) {
			return nil, apperror.Unavailable(apperror.ResourceProductService, err)
		}
		logger.Warn(ctx).Err(err).Int64("product_id", productID).Msg("Product service lookup failed")
		return nil, err
	}

	if details == nil {
		c.lookups.WithLabelValues(outcomeMissing).Inc()
	} else {
		c.lookups.WithLabelValues(outcomeFound).Inc()
	}
	return details, nil
}

type productPayload struct {
	ID     int64                 `json:"id"`
	Title  string                `json:"title"`
	Image  string                `json:"image"`
	Price  float64               `json:"price"`
	Rating *domain.ProductRating `json:"rating"`
}

// fetch performs one GET; every failure it returns is already classified
// as unavailable
func (c *ProductServiceClient) fetch(ctx context.Context, productID int64) (*domain.ProductDetails, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperror.Unavailable(apperror.ResourceProductService, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Unavailable(apperror.ResourceProductService, fmt.Errorf("could not reach product service: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperror.Unavailable(apperror.ResourceProductService, fmt.Errorf("product service returned HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apperror.Unavailable(apperror.ResourceProductService, fmt.Errorf("failed to read product: %w", err))
	}
	// the catalog answers unknown ids with an empty 200
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var payload productPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperror.Unavailable(apperror.ResourceProductService, fmt.Errorf("failed to decode product: %w", err))
	}

	return &domain.ProductDetails{
		ID:     payload.ID,
		Title:  payload.Title,
		Image:  payload.Image,
		Price:  payload.Price,
		Review: payload.Rating,
	}, nil
}
