package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tair/shopfront/pkg/logger"
)

// Storage drivers accepted in STORAGE_DRIVER
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config is the complete process configuration
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string

	HTTPPort           string
	HTTPRequestTimeout time.Duration

	StorageDriver string
	Database      DatabaseConfig

	Elasticsearch ElasticsearchConfig

	ProductService ProductServiceConfig
	CatalogCache   CatalogCacheConfig

	KafkaBrokers        []string
	KafkaFavoritesTopic string

	FavoritesEnrichConcurrency int

	TracingEnabled bool
	JaegerEndpoint string
}

// DatabaseConfig holds PostgreSQL settings
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ElasticsearchConfig holds search index settings
type ElasticsearchConfig struct {
	Hosts      []string
	CloudID    string
	APIKey     string
	Username   string
	Password   string
	Index      string
	SearchSize int
	Timeout    time.Duration
}

// ProductServiceConfig holds settings for the external product catalog API
type ProductServiceConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RateLimit       float64
	RateBurst       int
	BreakerFailures int
	BreakerCooldown time.Duration
}

// CatalogCacheConfig controls caching of product details. A zero TTL
// disables the cache.
type CatalogCacheConfig struct {
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// IsDevelopment reports whether human-friendly output should be used
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}

// Load reads configuration from CONFIG_FILE (or .env) and the environment
func Load() (*Config, error) {
	if file := os.Getenv("CONFIG_FILE"); file != "" {
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Logger.Warn().Err(err).Msg("Failed to load .env file, relying on environment")
	}

	cfg := &Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "shopfront"),
		Environment: getEnv("ENVIRONMENT", "production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		HTTPPort:           getEnv("HTTP_PORT", "8000"),
		HTTPRequestTimeout: getDurationEnv("HTTP_REQUEST_TIMEOUT", 30*time.Second),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StoragePostgres)),
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "shopfront"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Elasticsearch: ElasticsearchConfig{
			Hosts:      getListEnv("ELASTICSEARCH_HOSTS", []string{"http://localhost:9200"}),
			CloudID:    getEnv("ELASTICSEARCH_CLOUD_ID", ""),
			APIKey:     getEnv("ELASTICSEARCH_API_KEY", ""),
			Username:   getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:   getEnv("ELASTICSEARCH_PASSWORD", ""),
			Index:      getEnv("ELASTICSEARCH_INDEX", "products"),
			SearchSize: getIntEnv("ELASTICSEARCH_SEARCH_SIZE", 50),
			Timeout:    getDurationEnv("ELASTICSEARCH_TIMEOUT", 10*time.Second),
		},

		ProductService: ProductServiceConfig{
			BaseURL:         strings.TrimRight(getEnv("PRODUCT_SERVICE_URL", "https://fakestoreapi.com"), "/"),
			Timeout:         getDurationEnv("PRODUCT_SERVICE_TIMEOUT", 5*time.Second),
			RateLimit:       getFloatEnv("PRODUCT_SERVICE_RATE_LIMIT", 0),
			RateBurst:       getIntEnv("PRODUCT_SERVICE_RATE_BURST", 10),
			BreakerFailures: getIntEnv("PRODUCT_SERVICE_BREAKER_FAILURES", 5),
			BreakerCooldown: getDurationEnv("PRODUCT_SERVICE_BREAKER_COOLDOWN", 30*time.Second),
		},
		CatalogCache: CatalogCacheConfig{
			TTL:           getDurationEnv("CATALOG_CACHE_TTL", 0),
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getIntEnv("REDIS_DB", 0),
		},

		KafkaBrokers:        getListEnv("KAFKA_BROKERS", nil),
		KafkaFavoritesTopic: getEnv("KAFKA_FAVORITES_TOPIC", "customer.favorites"),

		FavoritesEnrichConcurrency: getIntEnv("FAVORITES_ENRICH_CONCURRENCY", 1),

		TracingEnabled: getBoolEnv("TRACING_ENABLED", false),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with
func (c *Config) Validate() error {
	var errs []error
	switch c.StorageDriver {
	case StoragePostgres, StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StoragePostgres, StorageMemory, c.StorageDriver))
	}
	if len(c.Elasticsearch.Hosts) == 0 && c.Elasticsearch.CloudID == "" {
		errs = append(errs, errors.New("ELASTICSEARCH_HOSTS or ELASTICSEARCH_CLOUD_ID is required"))
	}
	if c.Elasticsearch.SearchSize <= 0 {
		errs = append(errs, errors.New("ELASTICSEARCH_SEARCH_SIZE must be positive"))
	}
	if c.ProductService.BaseURL == "" {
		errs = append(errs, errors.New("PRODUCT_SERVICE_URL is required"))
	}
	if c.ProductService.Timeout <= 0 {
		errs = append(errs, errors.New("PRODUCT_SERVICE_TIMEOUT must be positive"))
	}
	if c.FavoritesEnrichConcurrency < 1 {
		errs = append(errs, errors.New("FAVORITES_ENRICH_CONCURRENCY must be at least 1"))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		logger.Logger.Warn().Str("key", key).Str("value", value).Msg("Ignoring invalid integer setting")
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
		logger.Logger.Warn().Str("key", key).Str("value", value).Msg("Ignoring invalid number setting")
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
		logger.Logger.Warn().Str("key", key).Str("value", value).Msg("Ignoring invalid boolean setting")
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		logger.Logger.Warn().Str("key", key).Str("value", value).Msg("Ignoring invalid duration setting")
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
