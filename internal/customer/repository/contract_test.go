package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/pkg/apperror"
)

// repositoryFactory returns fresh, empty repositories sharing one backing store
type repositoryFactory func(t *testing.T) (domain.CustomerRepository, domain.FavoriteRepository)

// runRepositoryContract exercises the behaviour every storage backend must share
func runRepositoryContract(t *testing.T, newRepos repositoryFactory) {
	ctx := context.Background()

	t.Run("customer lifecycle", func(t *testing.T) {
		customers, _ := newRepos(t)

		created, err := customers.Create(ctx, domain.NewCustomer{Name: "Ada", Email: "ada@Example.com", Password: "secret"})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "ada@example.com", created.Email)

		got, err := customers.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		updated, err := customers.Update(ctx, created.ID, "Ada L.", "ada.l@example.com")
		require.NoError(t, err)
		assert.Equal(t, domain.Customer{ID: created.ID, Name: "Ada L.", Email: "ada.l@example.com"}, *updated)

		require.NoError(t, customers.Delete(ctx, created.ID))
		_, err = customers.Get(ctx, created.ID)
		assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		customers, _ := newRepos(t)
		var ids []uint
		for _, email := range []string{"c@example.com", "a@example.com", "b@example.com"} {
			c, err := customers.Create(ctx, domain.NewCustomer{Name: "n", Email: email})
			require.NoError(t, err)
			ids = append(ids, c.ID)
		}

		list, err := customers.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		for i, c := range list {
			assert.Equal(t, ids[i], c.ID)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		customers, _ := newRepos(t)

		_, err := customers.Get(ctx, 999)
		assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
		_, err = customers.Update(ctx, 999, "x", "x@example.com")
		assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
		assert.ErrorIs(t, customers.Delete(ctx, 999), apperror.ErrCustomerNotFound)
	})

	t.Run("duplicate email is a constraint violation", func(t *testing.T) {
		customers, _ := newRepos(t)
		first, err := customers.Create(ctx, domain.NewCustomer{Name: "A", Email: "dup@example.com"})
		require.NoError(t, err)

		_, err = customers.Create(ctx, domain.NewCustomer{Name: "B", Email: "dup@example.com"})
		require.Error(t, err)
		assert.Equal(t, apperror.KindConstraintViolation, apperror.KindOf(err))
		assert.NotErrorIs(t, err, apperror.ErrCustomerNotFound)

		second, err := customers.Create(ctx, domain.NewCustomer{Name: "B", Email: "other@example.com"})
		require.NoError(t, err)
		_, err = customers.Update(ctx, second.ID, "B", "dup@example.com")
		assert.Equal(t, apperror.KindConstraintViolation, apperror.KindOf(err))

		// keeping one's own email is not a conflict
		_, err = customers.Update(ctx, first.ID, "A2", "dup@example.com")
		assert.NoError(t, err)
	})

	t.Run("favorites add list remove", func(t *testing.T) {
		customers, favorites := newRepos(t)
		c, err := customers.Create(ctx, domain.NewCustomer{Name: "Ada", Email: "fav@example.com"})
		require.NoError(t, err)

		list, err := favorites.List(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, list)

		f1, err := favorites.Add(ctx, c.ID, 7)
		require.NoError(t, err)
		assert.Equal(t, c.ID, f1.CustomerID)
		assert.Equal(t, int64(7), f1.ProductID)
		assert.Nil(t, f1.Title)
		f2, err := favorites.Add(ctx, c.ID, 3)
		require.NoError(t, err)

		_, err = favorites.Add(ctx, c.ID, 7)
		assert.ErrorIs(t, err, apperror.ErrFavoriteAlreadyExists)

		list, err = favorites.List(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, f1.ID, list[0].ID)
		assert.Equal(t, f2.ID, list[1].ID)

		require.NoError(t, favorites.Remove(ctx, c.ID, 7))
		assert.ErrorIs(t, favorites.Remove(ctx, c.ID, 7), apperror.ErrFavoriteNotFound)

		// removed pairs can be added again
		_, err = favorites.Add(ctx, c.ID, 7)
		assert.NoError(t, err)
	})

	t.Run("favorites of unknown customer", func(t *testing.T) {
		_, favorites := newRepos(t)

		_, err := favorites.Add(ctx, 404, 1)
		assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
		_, err = favorites.List(ctx, 404)
		assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
		assert.ErrorIs(t, favorites.Remove(ctx, 404, 1), apperror.ErrCustomerNotFound)
	})

	t.Run("same product for different customers", func(t *testing.T) {
		customers, favorites := newRepos(t)
		a, err := customers.Create(ctx, domain.NewCustomer{Name: "A", Email: "a1@example.com"})
		require.NoError(t, err)
		b, err := customers.Create(ctx, domain.NewCustomer{Name: "B", Email: "b1@example.com"})
		require.NoError(t, err)

		_, err = favorites.Add(ctx, a.ID, 5)
		require.NoError(t, err)
		_, err = favorites.Add(ctx, b.ID, 5)
		require.NoError(t, err)
	})

	t.Run("deleting a customer cascades to favorites", func(t *testing.T) {
		customers, favorites := newRepos(t)
		a, err := customers.Create(ctx, domain.NewCustomer{Name: "A", Email: "cascade@example.com"})
		require.NoError(t, err)
		other, err := customers.Create(ctx, domain.NewCustomer{Name: "O", Email: "keep@example.com"})
		require.NoError(t, err)
		_, err = favorites.Add(ctx, a.ID, 1)
		require.NoError(t, err)
		_, err = favorites.Add(ctx, other.ID, 1)
		require.NoError(t, err)

		require.NoError(t, customers.Delete(ctx, a.ID))

		_, err = favorites.List(ctx, a.ID)
		assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
		kept, err := favorites.List(ctx, other.ID)
		require.NoError(t, err)
		assert.Len(t, kept, 1)
	})
}
