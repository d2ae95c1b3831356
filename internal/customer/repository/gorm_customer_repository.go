package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/pkg/apperror"
)

// GormCustomerRepository implements domain.CustomerRepository using GORM.
// The *gorm.DB must be opened with TranslateError enabled.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create inserts a new customer
func (r *GormCustomerRepository) Create(ctx context.Context, in domain.NewCustomer) (*domain.Customer, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	m := customerModel{
		Name:         in.Name,
		Email:        domain.NormalizeEmail(in.Email),
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ConstraintViolation(apperror.ResourceCustomer, "email", err)
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	c := m.toDomain()
	return &c, nil
}

// List returns all customers ordered by id
func (r *GormCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var models []customerModel
	if err := r.db.WithContext(ctx).Order("id asc").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]domain.Customer, 0, len(models))
	for _, m := range models {
		customers = append(customers, m.toDomain())
	}
	return customers, nil
}

// Get finds a customer by id
func (r *GormCustomerRepository) Get(ctx context.Context, id uint) (*domain.Customer, error) {
	m, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	c := m.toDomain()
	return &c, nil
}

// Update replaces a customer's name and email
func (r *GormCustomerRepository) Update(ctx context.Context, id uint, name, email string) (*domain.Customer, error) {
	m, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Name = name
	m.Email = domain.NormalizeEmail(email)
	err = r.db.WithContext(ctx).
		Model(m).
		Updates(map[string]any{"name": m.Name, "email": m.Email}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.ConstraintViolation(apperror.ResourceCustomer, "email", err)
		}
		return nil, fmt.Errorf("failed to update customer %d: %w", id, err)
	}

	c := m.toDomain()
	return &c, nil
}

// Delete removes a customer; its favorites go with it through the foreign key
func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&customerModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.CustomerNotFound(id)
	}
	return nil
}

func (r *GormCustomerRepository) find(ctx context.Context, id uint) (*customerModel, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.CustomerNotFound(id)
		}
		return nil, fmt.Errorf("failed to find customer %d: %w", id, err)
	}
	return &m, nil
}
