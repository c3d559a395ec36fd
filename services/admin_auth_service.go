package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminSuspended     = errors.New("admin account is suspended")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// AdminAuthService handles admin authentication operations
type AdminAuthService struct {
	cost int
}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService() *AdminAuthService {
	return &AdminAuthService{cost: bcrypt.DefaultCost}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	if !s.ValidatePassword(password) {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks minimum length (8)
func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// CheckLogin decides whether admin may log in with password.
// A nil admin (unknown email) and a wrong password return the same error.
func (s *AdminAuthService) CheckLogin(admin *models.Admin, password string) error {
	if admin == nil || !s.VerifyPassword(admin.PasswordHash, password) {
		return ErrInvalidCredentials
	}
	if admin.Status == models.AdminStatusSuspended {
		return ErrAdminSuspended
	}
	return nil
}

// NormalizeEmail lowercases and trims an email for lookups
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var adminAuthService *AdminAuthService

// GetAdminAuthService returns the global admin auth service instance
func GetAdminAuthService() *AdminAuthService {
	if adminAuthService == nil {
		adminAuthService = NewAdminAuthService()
	}
	return adminAuthService
}

// HashAdminPassword hashes a password using the global service
func HashAdminPassword(password string) (string, error) {
	return GetAdminAuthService().HashPassword(password)
}

// VerifyAdminPassword verifies a password using the global service
func VerifyAdminPassword(hash, password string) bool {
	return GetAdminAuthService().VerifyPassword(hash, password)
}
