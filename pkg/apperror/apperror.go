// Package apperror defines the error kinds shared by use cases, adapters and
// the HTTP boundary. Adapters translate infrastructure failures into an
// *Error; use cases pass them through untouched; the boundary switches on
// the Kind to pick a status code.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers that need to branch on it
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyExists
	KindConstraintViolation
	KindUnavailable
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindConstraintViolation:
		return "constraint_violation"
	case KindUnavailable:
		return "unavailable"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Resources named by the sentinels below
const (
	ResourceCustomer       = "customer"
	ResourceFavorite       = "favorite"
	ResourceProduct        = "product"
	ResourceProductService = "product-service"
	ResourceSearch         = "search"
)

// Error is a classified application error
type Error struct {
	Kind     Kind
	Resource string
	Message  string
	// Fields carries per-field detail for validation and constraint errors.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("%s %s", e.Resource, e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Kind and Resource, so sentinels can be
// compared against errors that carry ids or causes.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Resource == t.Resource
}

var (
	ErrCustomerNotFound          = &Error{Kind: KindNotFound, Resource: ResourceCustomer, Message: "customer not found"}
	ErrFavoriteNotFound          = &Error{Kind: KindNotFound, Resource: ResourceFavorite, Message: "favorite not found"}
	ErrProductNotFound           = &Error{Kind: KindNotFound, Resource: ResourceProduct, Message: "product not found"}
	ErrFavoriteAlreadyExists     = &Error{Kind: KindAlreadyExists, Resource: ResourceFavorite, Message: "product already marked as favorite"}
	ErrProductServiceUnavailable = &Error{Kind: KindUnavailable, Resource: ResourceProductService, Message: "product service unavailable"}
	ErrSearchUnavailable         = &Error{Kind: KindUnavailable, Resource: ResourceSearch, Message: "search index unavailable"}
)

// CustomerNotFound reports a missing customer id
func CustomerNotFound(id uint) error {
	return &Error{Kind: KindNotFound, Resource: ResourceCustomer, Message: fmt.Sprintf("customer %d not found", id)}
}

// FavoriteNotFound reports a missing (customer, product) pair
func FavoriteNotFound(customerID uint, productID int64) error {
	return &Error{
		Kind:     KindNotFound,
		Resource: ResourceFavorite,
		Message:  fmt.Sprintf("favorite product %d not found for customer %d", productID, customerID),
	}
}

// ProductNotFound reports a product the catalog does not know
func ProductNotFound(productID int64) error {
	return &Error{Kind: KindNotFound, Resource: ResourceProduct, Message: fmt.Sprintf("product %d not found", productID)}
}

// FavoriteAlreadyExists reports a duplicate (customer, product) pair
func FavoriteAlreadyExists(customerID uint, productID int64) error {
	return &Error{
		Kind:     KindAlreadyExists,
		Resource: ResourceFavorite,
		Message:  fmt.Sprintf("product %d already marked as favorite for customer %d", productID, customerID),
	}
}

// Unavailable wraps a failure to reach an external dependency
func Unavailable(resource string, err error) error {
	return &Error{Kind: KindUnavailable, Resource: resource, Message: resource + " unavailable", Err: err}
}

// ConstraintViolation reports a store-level uniqueness or integrity failure
// on one field
func ConstraintViolation(resource, field string, err error) error {
	return &Error{
		Kind:     KindConstraintViolation,
		Resource: resource,
		Message:  fmt.Sprintf("%s %s violates a store constraint", resource, field),
		Fields:   map[string]string{field: "must be unique"},
		Err:      err,
	}
}

// Validation reports invalid input with per-field messages
func Validation(fields map[string]string) error {
	return &Error{Kind: KindValidation, Message: "invalid payload", Fields: fields}
}

// KindOf returns the Kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// As returns the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
