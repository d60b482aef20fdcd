package repositories

import (
	"fmt"
	"time"

	"grocer/internal/models"

	"github.com/google/uuid"
)

// FileCartRepository is a flat-file implementation of CartRepository.
type FileCartRepository struct {
	store *FileStore
}

// NewFileCartRepository creates a new instance of FileCartRepository.
func NewFileCartRepository(store *FileStore) *FileCartRepository {
	return &FileCartRepository{store: store}
}

// GetByUserID returns the user's cart.
func (r *FileCartRepository) GetByUserID(userID string) (*models.Cart, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var carts []models.Cart
	if err := r.store.read(cartsFile, &carts); err != nil {
		return nil, err
	}
	for i := range carts {
		if carts[i].UserID == userID {
			return &carts[i], nil
		}
	}
	return nil, fmt.Errorf("cart for user %s: %w", userID, models.ErrNotFound)
}

// Save upserts the cart (matched by user ID).
func (r *FileCartRepository) Save(cart *models.Cart) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if cart.ID == "" {
		cart.ID = uuid.New().String()
		cart.CreatedAt = time.Now()
	}
	cart.UpdatedAt = time.Now()

	var carts []models.Cart
	if err := r.store.read(cartsFile, &carts); err != nil {
		return err
	}
	for i := range carts {
		if carts[i].UserID == cart.UserID {
			carts[i] = *cart
			return r.store.write(cartsFile, carts)
		}
	}
	carts = append(carts, *cart)
	return r.store.write(cartsFile, carts)
}
