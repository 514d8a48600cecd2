package store

import (
	"context"

	"github.com/MKhiriev/go-auth-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// UserRepository is the persistence contract for user records. The user
// table is the only shared mutable resource in the application; every
// method is an awaited call against the database and is safe for use from
// concurrent requests.
//
// Lookup methods return [ErrNoUserWasFound] when no record matches;
// CreateUser and UpdateUser return [ErrEmailAlreadyExists] when the email
// UNIQUE constraint is violated.
type UserRepository interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
