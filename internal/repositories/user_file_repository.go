package repositories

import (
	"fmt"
	"time"

	"grocer/internal/models"

	"github.com/google/uuid"
)

// FileUserRepository is a flat-file implementation of UserRepository. Unlike
// the GORM engine there is no soft delete; removed users are gone.
type FileUserRepository struct {
	store *FileStore
}

// NewFileUserRepository creates a new instance of FileUserRepository.
func NewFileUserRepository(store *FileStore) *FileUserRepository {
	return &FileUserRepository{store: store}
}

// Create appends a new user.
func (r *FileUserRepository) Create(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	var users []models.User
	if err := r.store.read(usersFile, &users); err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == user.Email {
			return fmt.Errorf("user %s: %w", user.Email, models.ErrEmailTaken)
		}
	}
	users = append(users, *user)
	return r.store.write(usersFile, users)
}

// GetByEmail returns a user by email.
func (r *FileUserRepository) GetByEmail(email string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var users []models.User
	if err := r.store.read(usersFile, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)
}

// GetByID returns a user by ID.
func (r *FileUserRepository) GetByID(id string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var users []models.User
	if err := r.store.read(usersFile, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user with ID %s: %w", id, models.ErrNotFound)
}

// GetAll returns every user.
func (r *FileUserRepository) GetAll() ([]models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var users []models.User
	if err := r.store.read(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Update replaces an existing user.
func (r *FileUserRepository) Update(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []models.User
	if err := r.store.read(usersFile, &users); err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			users[i] = *user
			return r.store.write(usersFile, users)
		}
	}
	return fmt.Errorf("user with ID %s: %w", user.ID, models.ErrNotFound)
}

// Delete removes a user by ID.
func (r *FileUserRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []models.User
	if err := r.store.read(usersFile, &users); err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users = append(users[:i], users[i+1:]...)
			return r.store.write(usersFile, users)
		}
	}
	return fmt.Errorf("user with ID %s: %w", id, models.ErrNotFound)
}
