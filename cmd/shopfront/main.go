package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/shopfront/docs"
	"github.com/tair/shopfront/internal/catalog"
	"github.com/tair/shopfront/internal/config"
	"github.com/tair/shopfront/internal/customer"
	"github.com/tair/shopfront/internal/customer/client"
	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/internal/customer/repository"
	"github.com/tair/shopfront/kafka"
	"github.com/tair/shopfront/pkg/cache"
	"github.com/tair/shopfront/pkg/database"
	"github.com/tair/shopfront/pkg/httpserver"
	"github.com/tair/shopfront/pkg/logger"
	"github.com/tair/shopfront/pkg/search"
	"github.com/tair/shopfront/pkg/tracing"
)

// stores bundles the customer-side repositories with their lifecycle hooks
type stores struct {
	customers domain.CustomerRepository
	favorites domain.FavoriteRepository
	ping      func(ctx context.Context) error
	close     func() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Config{ServiceName: "shopfront", Development: true})
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize logger
	logger.Init(logger.Config{
		ServiceName: cfg.ServiceName,
		Development: cfg.IsDevelopment(),
		Level:       cfg.LogLevel,
	})

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("storage", cfg.StorageDriver).
		Msg("Starting shopfront")

	// Initialize tracer
	tp, err := tracing.InitTracer(tracing.Config{
		Enabled:        cfg.TracingEnabled,
		ServiceName:    cfg.ServiceName,
		JaegerEndpoint: cfg.JaegerEndpoint,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	ctx := context.Background()

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	favorites := st.favorites
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaFavoritesTopic)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Kafka unavailable, favorite events disabled")
		} else {
			defer publisher.Close()
			favorites = repository.NewFavoriteRepositoryWithEvents(favorites, publisher)
		}
	}

	reg := prometheus.DefaultRegisterer

	products, closeCache := newProductGateway(ctx, cfg, reg)
	defer closeCache()

	esClient, err := search.NewElasticsearchClient(search.Config{
		Addresses: cfg.Elasticsearch.Hosts,
		CloudID:   cfg.Elasticsearch.CloudID,
		APIKey:    cfg.Elasticsearch.APIKey,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
		Timeout:   cfg.Elasticsearch.Timeout,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Elasticsearch client")
	}

	// Initialize handlers with Wire DI
	catalogHandler, err := catalog.InitializeHTTPHandler(esClient, catalog.SearchSettings{
		Index: cfg.Elasticsearch.Index,
		Size:  cfg.Elasticsearch.SearchSize,
	}, reg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}

	customerHandler, err := customer.InitializeHTTPHandler(
		st.customers, favorites, products,
		customer.EnrichSettings{Concurrency: cfg.FavoritesEnrichConcurrency},
		reg,
	)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize customer handler")
	}

	middlewareConfig := httpserver.DefaultMiddlewareConfig(cfg.ServiceName)
	middlewareConfig.TimeoutDuration = cfg.HTTPRequestTimeout

	router := mux.NewRouter()
	httpserver.RegisterMiddlewares(router, middlewareConfig)

	catalogHandler.RegisterRoutes(router)
	customerHandler.RegisterRoutes(router)
	customerHandler.RegisterHealthCheck(router, st.ping)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	server := &http.Server{
		Addr:              httpserver.Addr(cfg.HTTPPort),
		Handler:           httpserver.Wrap(router, middlewareConfig),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("addr", server.Addr).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Logger.Warn().Msg("Using in-memory storage, data is lost on restart")
		mem := repository.NewMemoryStore()
		return &stores{
			customers: repository.NewCustomerRepositoryWithTracing(repository.NewMemoryCustomerRepository(mem)),
			favorites: repository.NewFavoriteRepositoryWithTracing(repository.NewMemoryFavoriteRepository(mem)),
			close:     func() error { return nil },
		}, nil
	}

	db, err := database.NewGormConnection(ctx, database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		Debug:           cfg.IsDevelopment(),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := repository.AutoMigrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	return &stores{
		customers: repository.NewCustomerRepositoryWithTracing(repository.NewGormCustomerRepository(db)),
		favorites: repository.NewFavoriteRepositoryWithTracing(repository.NewGormFavoriteRepository(db)),
		ping:      sqlDB.PingContext,
		close:     sqlDB.Close,
	}, nil
}

// newProductGateway builds the catalog client, wrapped in a cache when
// CATALOG_CACHE_TTL is set. The returned func releases the cache backend.
func newProductGateway(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (domain.ProductGateway, func()) {
	var gateway domain.ProductGateway = client.NewProductServiceClient(client.ProductServiceConfig{
		BaseURL:         cfg.ProductService.BaseURL,
		Timeout:         cfg.ProductService.Timeout,
		RateLimit:       cfg.ProductService.RateLimit,
		RateBurst:       cfg.ProductService.RateBurst,
		BreakerFailures: cfg.ProductService.BreakerFailures,
		BreakerCooldown: cfg.ProductService.BreakerCooldown,
	}, reg)

	ttl := cfg.CatalogCache.TTL
	if ttl <= 0 {
		return gateway, func() {}
	}

	if cfg.CatalogCache.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Addr:     cfg.CatalogCache.RedisAddr,
			Password: cfg.CatalogCache.RedisPassword,
			DB:       cfg.CatalogCache.RedisDB,
		})
		if err == nil {
			logger.Logger.Info().Str("redis", cfg.CatalogCache.RedisAddr).Dur("ttl", ttl).Msg("Catalog cache backed by Redis")
			store := cache.NewRedisStore(rdb, "shopfront:product:")
			return client.NewCachedProductGateway(gateway, store, ttl), func() { _ = rdb.Close() }
		}
		logger.Logger.Warn().Err(err).Msg("Redis unavailable, falling back to in-process catalog cache")
	}

	logger.Logger.Info().Dur("ttl", ttl).Msg("Catalog cache kept in process")
	store := cache.NewMemoryStore(ttl, 2*ttl)
	return client.NewCachedProductGateway(gateway, store, ttl), func() {}
}
