package repositories

import "grocer/internal/models"

// ProductFilter narrows a catalog listing. Category is a case-insensitive
// exact match; Search is a case-insensitive substring match against name or
// description. Zero values mean "no filter".
type ProductFilter struct {
	Category   string
	Search     string
	ActiveOnly bool
}

// ProductRepository defines the interface for product data access.
//
// DecrementStock is a conditional decrement: it only succeeds when the
// product currently has at least qty in stock, so stock can never go
// negative regardless of interleaving. IncrementStock is its inverse, used
// to restore stock when a later checkout step fails.
type ProductRepository interface {
	Find(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	Count() (int64, error)
	Categories() ([]string, error)
	DecrementStock(id string, qty int) error
	IncrementStock(id string, qty int) error
}
