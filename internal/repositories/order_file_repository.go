package repositories

import (
	"fmt"
	"sort"
	"time"

	"grocer/internal/models"

	"github.com/google/uuid"
)

// FileOrderRepository is a flat-file implementation of OrderRepository.
type FileOrderRepository struct {
	store *FileStore
}

// NewFileOrderRepository creates a new instance of FileOrderRepository.
func NewFileOrderRepository(store *FileStore) *FileOrderRepository {
	return &FileOrderRepository{store: store}
}

// Create appends a new order.
func (r *FileOrderRepository) Create(order *models.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	var orders []models.Order
	if err := r.store.read(ordersFile, &orders); err != nil {
		return err
	}
	orders = append(orders, *order)
	return r.store.write(ordersFile, orders)
}

// GetByID returns an order by its ID.
func (r *FileOrderRepository) GetByID(id string) (*models.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var orders []models.Order
	if err := r.store.read(ordersFile, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
}

// GetAll returns every order, newest first.
func (r *FileOrderRepository) GetAll() ([]models.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var orders []models.Order
	if err := r.store.read(ordersFile, &orders); err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}

// GetByUserID returns one user's orders, newest first.
func (r *FileOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var orders []models.Order
	if err := r.store.read(ordersFile, &orders); err != nil {
		return nil, err
	}
	matched := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == userID {
			matched = append(matched, o)
		}
	}
	sortNewestFirst(matched)
	return matched, nil
}

// UpdateStatus overwrites an order's status.
func (r *FileOrderRepository) UpdateStatus(id string, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var orders []models.Order
	if err := r.store.read(ordersFile, &orders); err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			orders[i].UpdatedAt = time.Now()
			return r.store.write(ordersFile, orders)
		}
	}
	return fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
}

func sortNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
