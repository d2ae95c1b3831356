package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/pkg/apperror"
)

const backpackJSON = `{"id":1,"title":"Fjallraven Backpack","price":109.95,"description":"Your perfect pack","category":"men's clothing","image":"https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg","rating":{"rate":3.9,"count":120}}`

type fakeCatalog struct {
	hits atomic.Int32
	srv  *httptest.Server
}

func newFakeCatalog(t *testing.T, handler http.HandlerFunc) *fakeCatalog {
	t.Helper()
	fc := &fakeCatalog{}
	fc.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fc.hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(fc.srv.Close)
	return fc
}

func newTestClient(baseURL string, mutate ...func(*ProductServiceConfig)) *ProductServiceClient {
	cfg := ProductServiceConfig{BaseURL: baseURL}
	for _, m := range mutate {
		m(&cfg)
	}
	return NewProductServiceClient(cfg, prometheus.NewRegistry())
}

func TestGetDetailsFound(t *testing.T) {
	var path string
	catalog := newFakeCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = io.WriteString(w, backpackJSON)
	})

	details, err := newTestClient(catalog.srv.URL+"/").GetDetails(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "/products/1", path)
	assert.Equal(t, &domain.ProductDetails{
		ID:     1,
		Title:  "Fjallraven Backpack",
		Image:  "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
		Price:  109.95,
		Review: &domain.ProductRating{Rate: 3.9, Count: 120},
	}, details)
}

func TestGetDetailsAbsent(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"404", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) }},
		{"empty 200", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }},
		{"null body", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "null") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(newFakeCatalog(t, tt.handler).srv.URL)

			details, err := c.GetDetails(context.Background(), 42)
			require.NoError(t, err)
			assert.Nil(t, details)

			exists, err := c.Exists(context.Background(), 42)
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestGetDetailsNonPositiveIDSkipsNetwork(t *testing.T) {
	catalog := newFakeCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, backpackJSON)
	})
	c := newTestClient(catalog.srv.URL)

	for _, id := range []int64{0, -1} {
		details, err := c.GetDetails(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, details)
		exists, err := c.Exists(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, exists)
	}
	assert.Zero(t, catalog.hits.Load())
	assert.Equal(t, float64(4), testutil.ToFloat64(c.lookups.WithLabelValues(outcomeRejected)))
}

func TestGetDetailsUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
		{"bad gateway", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) }},
		{"forbidden", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusForbidden) }},
		{"garbage body", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "<html>") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(newFakeCatalog(t, tt.handler).srv.URL)

			details, err := c.GetDetails(context.Background(), 1)
			assert.Nil(t, details)
			assert.ErrorIs(t, err, apperror.ErrProductServiceUnavailable)

			exists, err := c.Exists(context.Background(), 1)
			assert.False(t, exists)
			assert.ErrorIs(t, err, apperror.ErrProductServiceUnavailable, "unreachable is not the same as missing")
		})
	}
}

func TestGetDetailsNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).GetDetails(context.Background(), 1)
	assert.ErrorIs(t, err, apperror.ErrProductServiceUnavailable)
}

func TestGetDetailsTimeout(t *testing.T) {
	release := make(chan struct{})
	catalog := newFakeCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	c := newTestClient(catalog.srv.URL, func(cfg *ProductServiceConfig) { cfg.Timeout = 50 * time.Millisecond })

	start := time.Now()
	_, err := c.GetDetails(context.Background(), 1)
	assert.ErrorIs(t, err, apperror.ErrProductServiceUnavailable)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCircuitBreakerFailsFast(t *testing.T) {
	catalog := newFakeCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c := newTestClient(catalog.srv.URL, func(cfg *ProductServiceConfig) {
		cfg.BreakerFailures = 2
		cfg.BreakerCooldown = time.Hour
	})

	for i := 0; i < 4; i++ {
		_, err := c.GetDetails(context.Background(), 1)
		assert.ErrorIs(t, err, apperror.ErrProductServiceUnavailable)
	}
	assert.Equal(t, int32(2), catalog.hits.Load())
	assert.Equal(t, float64(4), testutil.ToFloat64(c.lookups.WithLabelValues(outcomeUnavailable)))
}

func TestMissingProductsDoNotTripBreaker(t *testing.T) {
	catalog := newFakeCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	c := newTestClient(catalog.srv.URL, func(cfg *ProductServiceConfig) { cfg.BreakerFailures = 1 })

	for i := 0; i < 3; i++ {
		_, err := c.GetDetails(context.Background(), 9)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), catalog.hits.Load())
}

func TestRateLimiterHonoursContext(t *testing.T) {
	catalog := newFakeCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, backpackJSON)
	})
	c := newTestClient(catalog.srv.URL, func(cfg *ProductServiceConfig) {
		cfg.RateLimit = 0.001
		cfg.RateBurst = 1
	})

	_, err := c.GetDetails(context.Background(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.GetDetails(ctx, 1)
	assert.True(t, errors.Is(err, apperror.ErrProductServiceUnavailable))
	assert.Equal(t, int32(1), catalog.hits.Load())
}
