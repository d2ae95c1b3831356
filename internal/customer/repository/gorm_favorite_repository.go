package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/pkg/apperror"
)

// GormFavoriteRepository implements domain.FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorite repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Add marks productID as a favorite of customerID
func (r *GormFavoriteRepository) Add(ctx context.Context, customerID uint, productID int64) (*domain.Favorite, error) {
	if err := r.ensureCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	m := favoriteModel{CustomerID: customerID, ProductID: productID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, apperror.FavoriteAlreadyExists(customerID, productID)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			// customer deleted between the check and the insert
			return nil, apperror.CustomerNotFound(customerID)
		}
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	f := m.toDomain()
	return &f, nil
}

// List returns the customer's favorites ordered by id
func (r *GormFavoriteRepository) List(ctx context.Context, customerID uint) ([]domain.Favorite, error) {
	if err := r.ensureCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	var models []favoriteModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id asc").
		Find(&models).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	favorites := make([]domain.Favorite, 0, len(models))
	for _, m := range models {
		favorites = append(favorites, m.toDomain())
	}
	return favorites, nil
}

// Remove deletes a single favorite
func (r *GormFavoriteRepository) Remove(ctx context.Context, customerID uint, productID int64) error {
	if err := r.ensureCustomer(ctx, customerID); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&favoriteModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.FavoriteNotFound(customerID, productID)
	}
	return nil
}

func (r *GormFavoriteRepository) ensureCustomer(ctx context.Context, customerID uint) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&customerModel{}).
		Where("id = ?", customerID).
		Count(&count).
		Error
	if err != nil {
		return fmt.Errorf("failed to check customer %d: %w", customerID, err)
	}
	if count == 0 {
		return apperror.CustomerNotFound(customerID)
	}
	return nil
}
