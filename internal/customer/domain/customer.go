package domain

import (
	"context"
	"strings"
)

// Customer is the public view of a stored customer
type Customer struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewCustomer carries the data needed to create a customer. Password is
// optional; when set it is stored only as a hash.
type NewCustomer struct {
	Name     string
	Email    string
	Password string
}

// CustomerRepository persists customers. Get, Update and Delete return
// apperror.ErrCustomerNotFound for unknown ids; Create and Update return an
// apperror.KindConstraintViolation error when the email is taken.
type CustomerRepository interface {
	Create(ctx context.Context, in NewCustomer) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id uint) (*Customer, error)
	Update(ctx context.Context, id uint, name, email string) (*Customer, error)
	Delete(ctx context.Context, id uint) error
}

// NormalizeEmail lower-cases the domain part of an address, leaving the
// local part untouched
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
