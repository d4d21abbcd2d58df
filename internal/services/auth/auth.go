// Package services contains the business logic for registration, login and
// OAuth sign-in.
package services

import (
	"context"
	"errors"
	"unicode"

	"github.com/seacatering/sea-catering-backend/internal/lib/jwt"
	"github.com/seacatering/sea-catering-backend/internal/lib/password"
	"github.com/seacatering/sea-catering-backend/internal/models"
	"github.com/seacatering/sea-catering-backend/internal/storage/repository"
)

// ErrEmailTaken is returned when the registration email already exists.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned on a failed login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrWeakPassword is returned when the password fails the policy: at least
// six characters with an uppercase letter, a lowercase letter and a digit.
var ErrWeakPassword = errors.New("password does not meet the policy")

// ErrAdminOAuth is returned when the default admin email is used with an
// OAuth provider. The admin must log in with credentials.
var ErrAdminOAuth = errors.New("admin must login using credentials")

// UserRepository describes the user storage contract used by auth.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService handles registration, login and token issuance.
type AuthService struct {
	users      UserRepository
	jwtMaker   jwt.Maker
	adminEmail string
}

// NewAuthService creates a new AuthService. adminEmail feeds the policy
// that keeps the seeded admin on credentials-only login.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, adminEmail string) *AuthService {
	return &AuthService{
		users:      users,
		jwtMaker:   jwtMaker,
		adminEmail: adminEmail,
	}
}

// Register creates a new user with a hashed password and the default
// "user" role, returning the new ID.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (string, error) {
	if !passwordMeetsPolicy(rawPassword) {
		return "", ErrWeakPassword
	}
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: &hashed,
		Role:         models.RoleUser,
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return "", ErrEmailTaken
		}
		return "", err
	}
	return id, nil
}

// Login checks the password and issues a signed token. A missing user and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.PasswordHash == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(*user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// LoginOAuth signs in a user authenticated by an OAuth provider, creating
// the account on first login. OAuth accounts carry no password hash.
func (s *AuthService) LoginOAuth(ctx context.Context, name, email string) (string, *models.User, error) {
	if s.adminEmail != "" && email == s.adminEmail {
		return "", nil, ErrAdminOAuth
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return "", nil, err
		}
		id, err := s.users.CreateUser(ctx, models.User{
			Name:  name,
			Email: email,
			Role:  models.RoleUser,
		})
		if err != nil {
			return "", nil, err
		}
		user = &models.User{ID: id, Name: name, Email: email, Role: models.RoleUser}
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func passwordMeetsPolicy(raw string) bool {
	if len(raw) < 6 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
