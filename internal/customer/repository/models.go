package repository

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tair/shopfront/internal/customer/domain"
)

// customerModel is the customers table
type customerModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:254;not null;uniqueIndex:idx_customers_email"`
	PasswordHash string `gorm:"size:255"`
	IsStaff      bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Favorites []favoriteModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (customerModel) TableName() string {
	return "customers"
}

func (m customerModel) toDomain() domain.Customer {
	return domain.Customer{ID: m.ID, Name: m.Name, Email: m.Email}
}

// favoriteModel is the favorites table; (customer_id, product_id) is unique
type favoriteModel struct {
	ID         uint  `gorm:"primaryKey"`
	CustomerID uint  `gorm:"not null;index;uniqueIndex:idx_favorites_customer_product"`
	ProductID  int64 `gorm:"not null;uniqueIndex:idx_favorites_customer_product;check:chk_favorites_product_id,product_id > 0"`
	CreatedAt  time.Time
}

func (favoriteModel) TableName() string {
	return "favorites"
}

func (m favoriteModel) toDomain() domain.Favorite {
	return domain.Favorite{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		ProductID:  m.ProductID,
		CreatedAt:  m.CreatedAt,
	}
}

// AutoMigrate creates or updates the customers and favorites tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&customerModel{}, &favoriteModel{}); err != nil {
		return fmt.Errorf("failed to migrate customer tables: %w", err)
	}
	return nil
}

// hashPassword returns the bcrypt hash of password, or "" when no password
// was supplied
func hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
