package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/shopfront/internal/customer/domain"
)

var tracer = otel.Tracer("customer-repository")

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// CustomerRepositoryWithTracing wraps a customer repository with spans
type CustomerRepositoryWithTracing struct {
	next domain.CustomerRepository
}

// NewCustomerRepositoryWithTracing creates a traced customer repository
func NewCustomerRepositoryWithTracing(next domain.CustomerRepository) *CustomerRepositoryWithTracing {
	return &CustomerRepositoryWithTracing{next: next}
}

// Create with tracing
func (r *CustomerRepositoryWithTracing) Create(ctx context.Context, in domain.NewCustomer) (c *domain.Customer, err error) {
	ctx, span := tracer.Start(ctx, "repository.CreateCustomer")
	defer func() { endSpan(span, err) }()

	c, err = r.next.Create(ctx, in)
	if err == nil {
		span.SetAttributes(attribute.Int64("customer.id", int64(c.ID)))
	}
	return c, err
}

// List with tracing
func (r *CustomerRepositoryWithTracing) List(ctx context.Context) (cs []domain.Customer, err error) {
	ctx, span := tracer.Start(ctx, "repository.ListCustomers")
	defer func() { endSpan(span, err) }()

	cs, err = r.next.List(ctx)
	span.SetAttributes(attribute.Int("customer.count", len(cs)))
	return cs, err
}

// Get with tracing
func (r *CustomerRepositoryWithTracing) Get(ctx context.Context, id uint) (c *domain.Customer, err error) {
	ctx, span := tracer.Start(ctx, "repository.GetCustomer",
		trace.WithAttributes(attribute.Int64("customer.id", int64(id))),
	)
	defer func() { endSpan(span, err) }()

	return r.next.Get(ctx, id)
}

// Update with tracing
func (r *CustomerRepositoryWithTracing) Update(ctx context.Context, id uint, name, email string) (c *domain.Customer, err error) {
	ctx, span := tracer.Start(ctx, "repository.UpdateCustomer",
		trace.WithAttributes(attribute.Int64("customer.id", int64(id))),
	)
	defer func() { endSpan(span, err) }()

	return r.next.Update(ctx, id, name, email)
}

// Delete with tracing
func (r *CustomerRepositoryWithTracing) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := tracer.Start(ctx, "repository.DeleteCustomer",
		trace.WithAttributes(attribute.Int64("customer.id", int64(id))),
	)
	defer func() { endSpan(span, err) }()

	return r.next.Delete(ctx, id)
}

// FavoriteRepositoryWithTracing wraps a favorite repository with spans
type FavoriteRepositoryWithTracing struct {
	next domain.FavoriteRepository
}

// NewFavoriteRepositoryWithTracing creates a traced favorite repository
func NewFavoriteRepositoryWithTracing(next domain.FavoriteRepository) *FavoriteRepositoryWithTracing {
	return &FavoriteRepositoryWithTracing{next: next}
}

func favoriteAttrs(customerID uint, productID int64) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.Int64("customer.id", int64(customerID)),
		attribute.Int64("product.id", productID),
	)
}

// Add with tracing
func (r *FavoriteRepositoryWithTracing) Add(ctx context.Context, customerID uint, productID int64) (f *domain.Favorite, err error) {
	ctx, span := tracer.Start(ctx, "repository.AddFavorite", favoriteAttrs(customerID, productID))
	defer func() { endSpan(span, err) }()

	return r.next.Add(ctx, customerID, productID)
}

// List with tracing
func (r *FavoriteRepositoryWithTracing) List(ctx context.Context, customerID uint) (fs []domain.Favorite, err error) {
	ctx, span := tracer.Start(ctx, "repository.ListFavorites",
		trace.WithAttributes(attribute.Int64("customer.id", int64(customerID))),
	)
	defer func() { endSpan(span, err) }()

	fs, err = r.next.List(ctx, customerID)
	span.SetAttributes(attribute.Int("favorite.count", len(fs)))
	return fs, err
}

// Remove with tracing
func (r *FavoriteRepositoryWithTracing) Remove(ctx context.Context, customerID uint, productID int64) (err error) {
	ctx, span := tracer.Start(ctx, "repository.RemoveFavorite", favoriteAttrs(customerID, productID))
	defer func() { endSpan(span, err) }()

	return r.next.Remove(ctx, customerID, productID)
}
