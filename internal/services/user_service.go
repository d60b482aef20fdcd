package services

import (
	"grocer/internal/models"
	"grocer/internal/repositories"
)

// UserService handles admin user management.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns every account without credential fields.
func (s *UserService) ListUsers() ([]models.UserSummary, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summarize())
	}
	return summaries, nil
}

// GetUser returns a single account without credential fields.
func (s *UserService) GetUser(id string) (*models.UserSummary, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	summary := user.Summarize()
	return &summary, nil
}

// UserPatch carries a partial user update; empty fields keep the stored
// value.
type UserPatch struct {
	Name  string
	Email string
	Role  string
}

// UpdateUser applies a partial update to an account.
func (s *UserService) UpdateUser(id string, patch UserPatch) (*models.UserSummary, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != "" {
		user.Name = patch.Name
	}
	if patch.Email != "" {
		user.Email = patch.Email
	}
	if patch.Role != "" {
		user.Role = patch.Role
	}
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	summary := user.Summarize()
	return &summary, nil
}

// DeleteUser removes an account.
func (s *UserService) DeleteUser(id string) error {
	return s.repo.Delete(id)
}

// Stats returns the aggregate counts for the admin dashboard.
func (s *UserService) Stats() (*models.UserStats, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	stats := &models.UserStats{TotalUsers: int64(len(users))}
	for i := range users {
		if users[i].IsAdmin() {
			stats.AdminCount++
		}
	}
	return stats, nil
}
