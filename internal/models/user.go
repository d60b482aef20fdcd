package models

import "gorm.io/gorm"

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a customer or administrator account.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role       string `json:"role" gorm:"type:varchar(16);default:user" validate:"omitempty,oneof=user admin"`
	gorm.Model `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}

// UserSummary is the shape of a user exposed over the API: everything but
// the password hash and soft-delete bookkeeping.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Summarize strips the credential fields off a user.
func (u *User) Summarize() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserStats is the aggregate returned to the admin dashboard.
type UserStats struct {
	TotalUsers int64 `json:"total_users"`
	AdminCount int64 `json:"admin_count"`
}
