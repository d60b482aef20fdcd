package repositories

import (
	"fmt"
	"sort"
	"strings"

	"grocer/internal/models"

	"github.com/google/uuid"
)

// FileProductRepository is a flat-file implementation of ProductRepository.
type FileProductRepository struct {
	store *FileStore
}

// NewFileProductRepository creates a new instance of FileProductRepository.
func NewFileProductRepository(store *FileStore) *FileProductRepository {
	return &FileProductRepository{store: store}
}

// Find retrieves products matching the filter.
func (r *FileProductRepository) Find(filter ProductFilter) ([]models.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var products []models.Product
	if err := r.store.read(productsFile, &products); err != nil {
		return nil, err
	}

	matched := make([]models.Product, 0, len(products))
	search := strings.ToLower(filter.Search)
	for _, p := range products {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if filter.ActiveOnly && !p.IsActive {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

// GetByID returns a product by its ID.
func (r *FileProductRepository) GetByID(id string) (*models.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.getLocked(id)
}

// getLocked looks a product up; the caller must hold the store lock.
func (r *FileProductRepository) getLocked(id string) (*models.Product, error) {
	var products []models.Product
	if err := r.store.read(productsFile, &products); err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
}

// Create appends a new product.
func (r *FileProductRepository) Create(product *models.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	var products []models.Product
	if err := r.store.read(productsFile, &products); err != nil {
		return err
	}
	products = append(products, *product)
	return r.store.write(productsFile, products)
}

// Update replaces an existing product.
func (r *FileProductRepository) Update(product *models.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var products []models.Product
	if err := r.store.read(productsFile, &products); err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = *product
			return r.store.write(productsFile, products)
		}
	}
	return fmt.Errorf("product with ID %s: %w", product.ID, models.ErrNotFound)
}

// Delete removes a product by its ID.
func (r *FileProductRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var products []models.Product
	if err := r.store.read(productsFile, &products); err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return r.store.write(productsFile, products)
		}
	}
	return fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
}

// Count returns the number of products in the catalog.
func (r *FileProductRepository) Count() (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var products []models.Product
	if err := r.store.read(productsFile, &products); err != nil {
		return 0, err
	}
	return int64(len(products)), nil
}

// Categories returns the distinct categories present in the catalog.
func (r *FileProductRepository) Categories() ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var products []models.Product
	if err := r.store.read(productsFile, &products); err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// DecrementStock subtracts qty from a product's stock only when enough
// remains. The check and the write happen under the store lock, so stock
// cannot go negative.
func (r *FileProductRepository) DecrementStock(id string, qty int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var products []models.Product
	if err := r.store.read(productsFile, &products); err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			if products[i].Stock < qty {
				return fmt.Errorf("product %s: %w", id, models.ErrInsufficientStock)
			}
			products[i].Stock -= qty
			return r.store.write(productsFile, products)
		}
	}
	return fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
}

// IncrementStock adds qty back to a product's stock.
func (r *FileProductRepository) IncrementStock(id string, qty int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var products []models.Product
	if err := r.store.read(productsFile, &products); err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products[i].Stock += qty
			return r.store.write(productsFile, products)
		}
	}
	return fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
}
