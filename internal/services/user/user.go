// Package services contains the admin-facing user management logic,
// including the policy that protects the seeded default admin account.
package services

import (
	"context"
	"errors"

	"github.com/seacatering/sea-catering-backend/internal/lib/password"
	"github.com/seacatering/sea-catering-backend/internal/models"
	"github.com/seacatering/sea-catering-backend/internal/storage/repository"
)

// ErrProtectedAdmin is returned when an operation targets the default
// admin account.
var ErrProtectedAdmin = errors.New("default admin account is protected")

// ErrEmailTaken is returned when the requested email already exists.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository describes the user storage contract for management.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]*models.User, error)
	UpdateUser(ctx context.Context, id string, user models.User) (int, error)
	RemoveUser(ctx context.Context, id string) (int, error)
}

// UserService implements admin user management. The default admin email
// comes from configuration; rows matching it are never listed, updated or
// deleted here.
type UserService struct {
	repo       UserRepository
	adminEmail string
}

// NewUserService creates a new UserService.
func NewUserService(repo UserRepository, adminEmail string) *UserService {
	return &UserService{
		repo:       repo,
		adminEmail: adminEmail,
	}
}

// List returns all user-role accounts, without the default admin.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.ListUsersByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, err
	}
	filtered := make([]*models.User, 0, len(users))
	for _, u := range users {
		if s.isDefaultAdmin(u.Email) {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered, nil
}

// Create adds a new account with the given role. Creating an admin under
// the default admin email is refused.
func (s *UserService) Create(ctx context.Context, req models.DummyUser) (string, error) {
	if s.isDefaultAdmin(req.Email) {
		return "", ErrProtectedAdmin
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if req.Password != "" {
		hashed, err := password.GetHash(req.Password)
		if err != nil {
			return "", err
		}
		user.PasswordHash = &hashed
	}

	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return "", ErrEmailTaken
		}
		return "", err
	}
	return id, nil
}

// Update rewrites name, email and role, and the password when provided.
// The default admin account cannot be updated.
func (s *UserService) Update(ctx context.Context, id string, req models.DummyUser) (int, error) {
	existing, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if s.isDefaultAdmin(existing.Email) || s.isDefaultAdmin(req.Email) {
		return 0, ErrProtectedAdmin
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if req.Password != "" {
		hashed, err := password.GetHash(req.Password)
		if err != nil {
			return 0, err
		}
		user.PasswordHash = &hashed
	}

	count, err := s.repo.UpdateUser(ctx, id, user)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}

// Remove deletes an account. The default admin account cannot be deleted.
func (s *UserService) Remove(ctx context.Context, id string) (int, error) {
	existing, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if s.isDefaultAdmin(existing.Email) {
		return 0, ErrProtectedAdmin
	}

	count, err := s.repo.RemoveUser(ctx, id)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}

func (s *UserService) isDefaultAdmin(email string) bool {
	return s.adminEmail != "" && email == s.adminEmail
}
