package search

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/shopfront/pkg/logger"
)

// Config holds Elasticsearch connection settings. Either Addresses or
// CloudID must be set; APIKey takes precedence over basic auth.
type Config struct {
	Addresses []string
	CloudID   string
	APIKey    string
	Username  string
	Password  string
	Timeout   time.Duration
}

// NewElasticsearchClient builds a client whose transport is traced with
// otelhttp and bounded by cfg.Timeout
func NewElasticsearchClient(cfg Config) (*elasticsearch.Client, error) {
	if len(cfg.Addresses) == 0 && cfg.CloudID == "" {
		return nil, errors.New("elasticsearch: hosts or cloud id must be configured")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	base.ResponseHeaderTimeout = timeout

	esCfg := elasticsearch.Config{
		Addresses: cfg.Addresses,
		CloudID:   cfg.CloudID,
		Transport: otelhttp.NewTransport(base),
	}
	applyAuth(&esCfg, cfg)

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	logger.Logger.Info().
		Strs("addresses", cfg.Addresses).
		Bool("cloud", cfg.CloudID != "").
		Msg("Elasticsearch client initialized")
	return client, nil
}

// applyAuth prefers an API key; basic auth is only used when both the
// username and the password are set
func applyAuth(esCfg *elasticsearch.Config, cfg Config) {
	switch {
	case cfg.APIKey != "":
		esCfg.APIKey = cfg.APIKey
	case cfg.Username != "" && cfg.Password != "":
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}
}
