package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "Invalid payload.", map[string]string{"email": "This field is required."})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Invalid payload.","details":{"email":"This field is required."}}`, rec.Body.String())
}

func TestWriteErrorOmitsEmptyDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, "Customer not found.", nil)
	assert.JSONEq(t, `{"error":"Customer not found."}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Ada", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"} {"name":"b"}`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestValidate(t *testing.T) {
	type payload struct {
		Name  string `json:"name" validate:"required,max=5"`
		Email string `json:"email" validate:"required,email"`
		Count int64  `json:"count" validate:"gte=1"`
	}

	assert.Nil(t, Validate(payload{Name: "Ada", Email: "ada@example.com", Count: 1}))

	details := Validate(payload{Name: "Adalovelace", Email: "nope"})
	assert.Equal(t, "Ensure this field has no more than 5 characters.", details["name"])
	assert.Equal(t, "Enter a valid email address.", details["email"])
	assert.Equal(t, "Ensure this value is greater than or equal to 1.", details["count"])
}

func TestRecoveryMiddleware(t *testing.T) {
	h := RecoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error."}`, rec.Body.String())
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
}

func TestRegisterMiddlewaresAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg, "shopfront")
	// a second handler sharing the registry reuses the collectors
	again := NewMetrics(reg, "shopfront")

	router := mux.NewRouter()
	RegisterMiddlewares(router, DefaultMiddlewareConfig("shopfront-test"))
	router.HandleFunc("/ping", metrics.Instrument("/ping", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusTeapot, map[string]string{"pong": "ok"})
	})).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, float64(1), testutil.ToFloat64(again.requestCounter.WithLabelValues(http.MethodGet, "/ping", "418")))
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8080", Addr("8080"))
	assert.Equal(t, "127.0.0.1:9000", Addr("127.0.0.1:9000"))
}
