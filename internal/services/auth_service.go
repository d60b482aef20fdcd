package services

import (
	"errors"
	"fmt"
	"time"

	"grocer/internal/models"
	"grocer/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and bearer-token validation.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	adminEmail string
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService. Accounts registered with
// adminEmail get the admin role, everyone else is a regular user.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret, adminEmail string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		adminEmail: adminEmail,
		tokenDurat: 24 * time.Hour,
	}
}

// Register hashes the password, assigns the role and saves the user, then
// returns a fresh token so the client is logged in immediately.
func (s *AuthService) Register(user *models.User) (string, error) {
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return "", fmt.Errorf("email '%s': %w", user.Email, models.ErrEmailTaken)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	user.Role = models.RoleUser
	if user.Email == s.adminEmail {
		user.Role = models.RoleAdmin
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			return "", err
		}
		return "", fmt.Errorf("failed to register user: %w", err)
	}
	return s.issueToken(user)
}

// Login authenticates a user by email and password and returns a token.
// Failures are deliberately indistinguishable between a missing account and
// a wrong password.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, models.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, models.ErrInvalidCredential
	}
	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// issueToken signs an HS256 token carrying the identity claims the
// middleware needs: id, email and role.
func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   now.Add(s.tokenDurat).Unix(),
		"iat":   now.Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a bearer token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
