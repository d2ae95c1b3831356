package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tair/shopfront/internal/customer/domain"
	"github.com/tair/shopfront/pkg/apperror"
)

// MemoryStore holds customers and favorites in process memory with the
// same constraints the relational schema enforces: unique emails, unique
// (customer, product) pairs and cascade delete.
type MemoryStore struct {
	mu sync.RWMutex

	customers      map[uint]customerModel
	favorites      map[uint]favoriteModel
	nextCustomerID uint
	nextFavoriteID uint
	now            func() time.Time
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers: make(map[uint]customerModel),
		favorites: make(map[uint]favoriteModel),
		now:       time.Now,
	}
}

func (s *MemoryStore) emailTaken(email string, except uint) bool {
	for id, c := range s.customers {
		if id != except && c.Email == email {
			return true
		}
	}
	return false
}

// MemoryCustomerRepository implements domain.CustomerRepository over a MemoryStore
type MemoryCustomerRepository struct {
	store *MemoryStore
}

// NewMemoryCustomerRepository creates a customer repository backed by store
func NewMemoryCustomerRepository(store *MemoryStore) *MemoryCustomerRepository {
	return &MemoryCustomerRepository{store: store}
}

// Create inserts a new customer
func (r *MemoryCustomerRepository) Create(_ context.Context, in domain.NewCustomer) (*domain.Customer, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	email := domain.NormalizeEmail(in.Email)
	if s.emailTaken(email, 0) {
		return nil, apperror.ConstraintViolation(apperror.ResourceCustomer, "email", nil)
	}

	s.nextCustomerID++
	now := s.now()
	m := customerModel{
		ID:           s.nextCustomerID,
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.customers[m.ID] = m

	c := m.toDomain()
	return &c, nil
}

// List returns all customers ordered by id
func (r *MemoryCustomerRepository) List(_ context.Context) ([]domain.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]domain.Customer, 0, len(s.customers))
	for _, m := range s.customers {
		customers = append(customers, m.toDomain())
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

// Get finds a customer by id
func (r *MemoryCustomerRepository) Get(_ context.Context, id uint) (*domain.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.customers[id]
	if !ok {
		return nil, apperror.CustomerNotFound(id)
	}
	c := m.toDomain()
	return &c, nil
}

// Update replaces a customer's name and email
func (r *MemoryCustomerRepository) Update(_ context.Context, id uint, name, email string) (*domain.Customer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.customers[id]
	if !ok {
		return nil, apperror.CustomerNotFound(id)
	}
	email = domain.NormalizeEmail(email)
	if s.emailTaken(email, id) {
		return nil, apperror.ConstraintViolation(apperror.ResourceCustomer, "email", nil)
	}

	m.Name = name
	m.Email = email
	m.UpdatedAt = s.now()
	s.customers[id] = m

	c := m.toDomain()
	return &c, nil
}

// Delete removes a customer and all of its favorites
func (r *MemoryCustomerRepository) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return apperror.CustomerNotFound(id)
	}
	delete(s.customers, id)
	for fid, f := range s.favorites {
		if f.CustomerID == id {
			delete(s.favorites, fid)
		}
	}
	return nil
}

// MemoryFavoriteRepository implements domain.FavoriteRepository over a MemoryStore
type MemoryFavoriteRepository struct {
	store *MemoryStore
}

// NewMemoryFavoriteRepository creates a favorite repository backed by store
func NewMemoryFavoriteRepository(store *MemoryStore) *MemoryFavoriteRepository {
	return &MemoryFavoriteRepository{store: store}
}

// Add marks productID as a favorite of customerID
func (r *MemoryFavoriteRepository) Add(_ context.Context, customerID uint, productID int64) (*domain.Favorite, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customerID]; !ok {
		return nil, apperror.CustomerNotFound(customerID)
	}
	for _, f := range s.favorites {
		if f.CustomerID == customerID && f.ProductID == productID {
			return nil, apperror.FavoriteAlreadyExists(customerID, productID)
		}
	}

	s.nextFavoriteID++
	m := favoriteModel{
		ID:         s.nextFavoriteID,
		CustomerID: customerID,
		ProductID:  productID,
		CreatedAt:  s.now(),
	}
	s.favorites[m.ID] = m

	f := m.toDomain()
	return &f, nil
}

// List returns the customer's favorites ordered by id
func (r *MemoryFavoriteRepository) List(_ context.Context, customerID uint) ([]domain.Favorite, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.customers[customerID]; !ok {
		return nil, apperror.CustomerNotFound(customerID)
	}

	favorites := make([]domain.Favorite, 0)
	for _, m := range s.favorites {
		if m.CustomerID == customerID {
			favorites = append(favorites, m.toDomain())
		}
	}
	sort.Slice(favorites, func(i, j int) bool { return favorites[i].ID < favorites[j].ID })
	return favorites, nil
}

// Remove deletes a single favorite
func (r *MemoryFavoriteRepository) Remove(_ context.Context, customerID uint, productID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customerID]; !ok {
		return apperror.CustomerNotFound(customerID)
	}
	for id, f := range s.favorites {
		if f.CustomerID == customerID && f.ProductID == productID {
			delete(s.favorites, id)
			return nil
		}
	}
	return apperror.FavoriteNotFound(customerID, productID)
}
