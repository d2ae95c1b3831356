package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"customer by id", CustomerNotFound(7), ErrCustomerNotFound, true},
		{"wrapped customer", fmt.Errorf("lookup: %w", CustomerNotFound(7)), ErrCustomerNotFound, true},
		{"customer is not favorite", CustomerNotFound(7), ErrFavoriteNotFound, false},
		{"favorite pair", FavoriteNotFound(1, 2), ErrFavoriteNotFound, true},
		{"product", ProductNotFound(3), ErrProductNotFound, true},
		{"duplicate favorite", FavoriteAlreadyExists(1, 2), ErrFavoriteAlreadyExists, true},
		{"unavailable", Unavailable(ResourceProductService, errors.New("dial tcp")), ErrProductServiceUnavailable, true},
		{"search unavailable is not product unavailable", Unavailable(ResourceSearch, nil), ErrProductServiceUnavailable, false},
		{"plain error", errors.New("boom"), ErrCustomerNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("x: %w", ErrCustomerNotFound)))
	assert.Equal(t, KindConstraintViolation, KindOf(ConstraintViolation(ResourceCustomer, "email", nil)))
	assert.Equal(t, KindValidation, KindOf(Validation(map[string]string{"name": "required"})))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable(ResourceProductService, cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "unavailable", KindOf(err).String())
}

func TestConstraintViolationFields(t *testing.T) {
	e, ok := As(fmt.Errorf("create: %w", ConstraintViolation(ResourceCustomer, "email", errors.New("duplicate key"))))
	require.True(t, ok)
	assert.Equal(t, map[string]string{"email": "must be unique"}, e.Fields)
	assert.NotEqual(t, KindNotFound, e.Kind)
}
