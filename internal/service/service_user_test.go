// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/store"
	storemocks "github.com/MKhiriev/go-auth-api/internal/store/mocks"
	"github.com/MKhiriev/go-auth-api/models"
)

func newTestUserService(t *testing.T) (UserService, *storemocks.MockUserRepository, *mockCredentials) {
	ctrl := gomock.NewController(t)
	repo := storemocks.NewMockUserRepository(ctrl)
	creds := &mockCredentials{}
	return NewUserService(repo, creds, logger.Nop()), repo, creds
}

// mockCredentials is a hand-rolled CredentialService stub for user-service
// tests; the gomock version lives in mocks/ and is used by the HTTP layer.
type mockCredentials struct {
	hashFn    func(ctx context.Context, plaintext string) (string, error)
	compareFn func(ctx context.Context, plaintext, hash string) (bool, error)
}

func (m *mockCredentials) HashPassword(ctx context.Context, plaintext string) (string, error) {
	if m.hashFn != nil {
		return m.hashFn(ctx, plaintext)
	}
	return "hashed:" + plaintext, nil
}

func (m *mockCredentials) ComparePassword(ctx context.Context, plaintext, hash string) (bool, error) {
	if m.compareFn != nil {
		return m.compareFn(ctx, plaintext, hash)
	}
	return hash == "hashed:"+plaintext, nil
}

func (m *mockCredentials) GenerateToken(ctx context.Context, payload models.TokenPayload) (string, error) {
	return "token", nil
}

func (m *mockCredentials) VerifyToken(ctx context.Context, tokenString string) (models.TokenPayload, bool) {
	return models.TokenPayload{}, false
}

// ---- CreateUser ----

func TestCreateUser_ValidationSkipsStore(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "john@example.com", "secret123"},
		{"empty email", "John", "", "secret123"},
		{"empty password", "John", "john@example.com", ""},
	}

	// no repository expectations: validation must fail before any store call
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, tt.userName, tt.email, tt.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreateUser_Success(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	repo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "John", u.Name)
			assert.Equal(t, "john@example.com", u.Email)
			assert.Equal(t, "hashed:secret123", u.PasswordHash)
			u.ID = 1
			return u, nil
		})

	created, err := svc.CreateUser(ctx, "John", "john@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateUser_DuplicateEmailPreCheck(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByEmail(ctx, "taken@example.com").
		Return(models.User{ID: 1, Email: "taken@example.com"}, nil)

	_, err := svc.CreateUser(ctx, "John", "taken@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_DuplicateEmailConstraint(t *testing.T) {
	// The pre-check misses but the UNIQUE constraint fires: a concurrent
	// registration won the race. Both paths surface the same sentinel.
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByEmail(ctx, "raced@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	repo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.CreateUser(ctx, "John", "raced@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_HashingFailure(t *testing.T) {
	svc, repo, creds := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	creds.hashFn = func(ctx context.Context, plaintext string) (string, error) {
		return "", errors.New("bcrypt blew up")
	}

	_, err := svc.CreateUser(ctx, "John", "john@example.com", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
}

// ---- ValidateUser ----

func TestValidateUser_Success(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()

	stored := models.User{ID: 5, Email: "john@example.com", PasswordHash: "hashed:secret123"}
	repo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(stored, nil)

	user, ok, err := svc.ValidateUser(ctx, "john@example.com", "secret123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, stored.ID, user.ID)
}

func TestValidateUser_UniformFailure(t *testing.T) {
	// Unknown email and wrong password are indistinguishable to the caller.
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByEmail(ctx, "ghost@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	user, ok, err := svc.ValidateUser(ctx, "ghost@example.com", "whatever")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, user)

	repo.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(models.User{ID: 5, Email: "john@example.com", PasswordHash: "hashed:secret123"}, nil)

	user, ok, err = svc.ValidateUser(ctx, "john@example.com", "wrong-password")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, user)
}

func TestValidateUser_StoreError(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(models.User{}, errors.New("connection refused"))

	_, ok, err := svc.ValidateUser(ctx, "john@example.com", "secret123")
	require.Error(t, err)
	assert.False(t, ok)
}

// ---- GetUserByID / GetAllUsers ----

func TestGetUserByID_NotFound(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByID(ctx, int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetUserByID(ctx, 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Contains(t, err.Error(), "Not found")
}

func TestGetAllUsers_Success(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetAllUsers(ctx).
		Return([]models.User{{ID: 1}, {ID: 2}}, nil)

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

// ---- UpdateUser / DeleteUser ----

func TestUpdateUser_NothingToUpdate(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.UpdateUser(context.Background(), 1, models.UserUpdate{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateUser_ExistenceCheckedFirst(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()
	newName := "Johnny"

	repo.EXPECT().
		FindUserByID(ctx, int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.UpdateUser(ctx, 404, models.UserUpdate{Name: &newName})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()
	taken := "taken@example.com"

	repo.EXPECT().
		FindUserByID(ctx, int64(1)).
		Return(models.User{ID: 1}, nil)
	repo.EXPECT().
		UpdateUser(ctx, int64(1), models.UserUpdate{Email: &taken}).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.UpdateUser(ctx, 1, models.UserUpdate{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestDeleteUser_Success(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{ID: 1}, nil)
	repo.EXPECT().DeleteUser(ctx, int64(1)).Return(nil)

	require.NoError(t, svc.DeleteUser(ctx, 1))
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByID(ctx, int64(404)).
		Return(models.User{}, store.ErrNoUserWasFound)

	err := svc.DeleteUser(ctx, 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
