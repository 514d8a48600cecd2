package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/store"
	"github.com/MKhiriev/go-auth-api/models"
)

// userService is the concrete implementation of [UserService]. It applies
// business rules on top of a [store.UserRepository] and delegates all
// cryptographic work to a [CredentialService].
type userService struct {
	userRepository store.UserRepository
	credentials    CredentialService
	logger         *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given repository
// and credential service.
func NewUserService(userRepository store.UserRepository, credentials CredentialService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		credentials:    credentials,
		logger:         logger,
	}
}

// GetAllUsers returns every registered user.
func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// GetUserByID returns the user with the given id, or a wrapped
// [ErrUserNotFound] when no such record exists.
func (s *userService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("%w: user with id %d", ErrUserNotFound, id)
		}
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// CreateUser registers a new account.
//
// It requires non-empty name, email, and password, pre-checks email
// uniqueness, hashes the password, and persists the record. The pre-check
// is a check-then-act sequence and is therefore racy under concurrent
// registrations; the store's UNIQUE constraint is the authoritative guard,
// and its violation is mapped to the same [ErrEmailAlreadyExists] so both
// paths surface identically.
func (s *userService) CreateUser(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	// friendly-path uniqueness check; the UNIQUE constraint closes the race
	_, err := s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return models.User{}, ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, fmt.Errorf("email uniqueness check failed: %w", err)
	}

	hash, err := s.credentials.HashPassword(ctx, password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// ValidateUser authenticates by email and password.
//
// Unknown email and wrong password both yield ok == false with no error:
// the caller cannot distinguish the two, which keeps login responses
// uniform.
func (s *userService) ValidateUser(ctx context.Context, email, password string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, false, nil
		}
		return models.User{}, false, fmt.Errorf("user search by email failed: %w", err)
	}

	match, err := s.credentials.ComparePassword(ctx, password, user.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("password comparison failed")
		return models.User{}, false, fmt.Errorf("password comparison failed: %w", err)
	}
	if !match {
		return models.User{}, false, nil
	}

	return user, true, nil
}

// UpdateUser applies a partial update (name and/or email) to an existing
// user. The record must exist before any mutation is attempted.
func (s *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if update.Name == nil && update.Email == nil {
		return models.User{}, fmt.Errorf("%w: nothing to update", ErrValidation)
	}

	if _, err := s.GetUserByID(ctx, id); err != nil {
		return models.User{}, err
	}

	updated, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			return models.User{}, fmt.Errorf("%w: user with id %d", ErrUserNotFound, id)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("user update failed: %w", err)
		}
	}

	return updated, nil
}

// DeleteUser removes an existing user. The record must exist first; a miss
// surfaces as a wrapped [ErrUserNotFound] before any mutation is attempted.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.GetUserByID(ctx, id); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return fmt.Errorf("%w: user with id %d", ErrUserNotFound, id)
		}
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
