package repositories

import "grocer/internal/models"

// CartRepository defines the interface for cart data access. Save upserts
// the whole cart, items included; GetByUserID returns ErrNotFound when the
// user has no cart yet.
type CartRepository interface {
	GetByUserID(userID string) (*models.Cart, error)
	Save(cart *models.Cart) error
}
