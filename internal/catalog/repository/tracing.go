package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/shopfront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// ProductSearchRepositoryWithTracing wraps a search repository with spans
type ProductSearchRepositoryWithTracing struct {
	next domain.ProductSearchRepository
}

// NewProductSearchRepositoryWithTracing creates a traced repository
func NewProductSearchRepositoryWithTracing(next domain.ProductSearchRepository) *ProductSearchRepositoryWithTracing {
	return &ProductSearchRepositoryWithTracing{next: next}
}

// Search with tracing
func (r *ProductSearchRepositoryWithTracing) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.ProductSearchResult, error) {
	attrs := []attribute.KeyValue{attribute.String("search.query", filter.Query)}
	if filter.MinPrice != nil {
		attrs = append(attrs, attribute.Float64("search.min_price", *filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		attrs = append(attrs, attribute.Float64("search.max_price", *filter.MaxPrice))
	}
	if filter.MinRating != nil {
		attrs = append(attrs, attribute.Float64("search.min_rating", *filter.MinRating))
	}

	ctx, span := tracer.Start(ctx, "repository.SearchProducts", trace.WithAttributes(attrs...))
	defer span.End()

	results, err := r.next.Search(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("search.hits", len(results)))
	return results, nil
}
