package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seacatering/sea-catering-backend/internal/lib/password"
	"github.com/seacatering/sea-catering-backend/internal/models"
	"github.com/seacatering/sea-catering-backend/internal/storage/repository"
)

const adminEmail = "admin@seacatering.local"

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) ListUsersByRole(ctx context.Context, role string) ([]*models.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}
func (m *RepoMock) UpdateUser(ctx context.Context, id string, user models.User) (int, error) {
	args := m.Called(ctx, id, user)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveUser(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func TestList(t *testing.T) {
	t.Run("filters the default admin out", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ListUsersByRole", mock.Anything, models.RoleUser).Return([]*models.User{
			{ID: "user-1", Email: "budi@example.com"},
			{ID: "user-2", Email: adminEmail},
		}, nil)

		svc := NewUserService(repo, adminEmail)
		users, err := svc.List(context.Background())

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "user-1", users[0].ID)
	})
}

func TestCreate(t *testing.T) {
	t.Run("hashes the password when provided", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.PasswordHash != nil &&
				password.CompareHash(*u.PasswordHash, "Secret123") == nil
		})).Return("user-1", nil)

		svc := NewUserService(repo, adminEmail)
		id, err := svc.Create(context.Background(), models.DummyUser{
			Name:     "Budi",
			Email:    "budi@example.com",
			Password: "Secret123",
			Role:     models.RoleUser,
		})

		require.NoError(t, err)
		assert.Equal(t, "user-1", id)
	})

	t.Run("refuses the default admin email", func(t *testing.T) {
		repo := new(RepoMock)
		svc := NewUserService(repo, adminEmail)

		_, err := svc.Create(context.Background(), models.DummyUser{
			Name:  "Imposter",
			Email: adminEmail,
			Role:  models.RoleAdmin,
		})

		assert.ErrorIs(t, err, ErrProtectedAdmin)
		repo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("maps unique violation to email taken", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateUser", mock.Anything, mock.Anything).
			Return("", repository.ErrUniqueViolation)

		svc := NewUserService(repo, adminEmail)
		_, err := svc.Create(context.Background(), models.DummyUser{
			Name:  "Budi",
			Email: "budi@example.com",
			Role:  models.RoleUser,
		})

		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestUpdate(t *testing.T) {
	req := models.DummyUser{Name: "Budi", Email: "budi@example.com", Role: models.RoleUser}

	t.Run("refuses to touch the default admin row", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByID", mock.Anything, "admin-1").
			Return(&models.User{ID: "admin-1", Email: adminEmail, Role: models.RoleAdmin}, nil)

		svc := NewUserService(repo, adminEmail)
		_, err := svc.Update(context.Background(), "admin-1", req)

		assert.ErrorIs(t, err, ErrProtectedAdmin)
		repo.AssertNotCalled(t, "UpdateUser")
	})

	t.Run("refuses to rename onto the default admin email", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByID", mock.Anything, "user-1").
			Return(&models.User{ID: "user-1", Email: "budi@example.com", Role: models.RoleUser}, nil)

		svc := NewUserService(repo, adminEmail)
		_, err := svc.Update(context.Background(), "user-1", models.DummyUser{
			Name:  "Budi",
			Email: adminEmail,
			Role:  models.RoleUser,
		})

		assert.ErrorIs(t, err, ErrProtectedAdmin)
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByID", mock.Anything, "user-1").
			Return(&models.User{ID: "user-1", Email: "budi@example.com", Role: models.RoleUser}, nil)
		repo.On("UpdateUser", mock.Anything, "user-1", mock.Anything).Return(0, nil)

		svc := NewUserService(repo, adminEmail)
		_, err := svc.Update(context.Background(), "user-1", req)

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRemove(t *testing.T) {
	t.Run("removes a regular user", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByID", mock.Anything, "user-1").
			Return(&models.User{ID: "user-1", Email: "budi@example.com", Role: models.RoleUser}, nil)
		repo.On("RemoveUser", mock.Anything, "user-1").Return(1, nil)

		svc := NewUserService(repo, adminEmail)
		count, err := svc.Remove(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("refuses the default admin", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByID", mock.Anything, "admin-1").
			Return(&models.User{ID: "admin-1", Email: adminEmail, Role: models.RoleAdmin}, nil)

		svc := NewUserService(repo, adminEmail)
		_, err := svc.Remove(context.Background(), "admin-1")

		assert.ErrorIs(t, err, ErrProtectedAdmin)
		repo.AssertNotCalled(t, "RemoveUser")
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetUserByID", mock.Anything, "nope").
			Return(nil, repository.ErrNotFound)

		svc := NewUserService(repo, adminEmail)
		_, err := svc.Remove(context.Background(), "nope")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
