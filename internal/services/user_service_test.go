package services_test

import (
	"testing"

	"grocer/internal/models"
	"grocer/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_ListUsers_OmitsCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetAll").Return([]models.User{
		{ID: "u1", Name: "Alice", Email: "alice@example.com", Password: "hash", Role: models.RoleAdmin},
		{ID: "u2", Name: "Bob", Email: "bob@example.com", Password: "hash", Role: models.RoleUser},
	}, nil).Once()

	users, err := service.ListUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "alice@example.com", users[0].Email)
	// UserSummary has no password field at all; spot-check the shape.
	assert.Equal(t, models.UserSummary{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: models.RoleUser}, users[1])
}

func TestUserService_UpdateUser_Partial(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	stored := &models.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: models.RoleUser}
	mockRepo.On("GetByID", "u1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()

	updated, err := service.UpdateUser("u1", services.UserPatch{Role: models.RoleAdmin})
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, "Alice", updated.Name)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Stats(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetAll").Return([]models.User{
		{ID: "u1", Role: models.RoleAdmin},
		{ID: "u2", Role: models.RoleUser},
		{ID: "u3", Role: models.RoleUser},
	}, nil).Once()

	stats, err := service.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.AdminCount)
}
