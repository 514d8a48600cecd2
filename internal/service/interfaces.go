package service

import (
	"context"

	"github.com/MKhiriev/go-auth-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// CredentialService owns every cryptographic concern of the API: password
// hashing and comparison, token issuance and verification, all as awaited
// calls. Implementations must be safe for concurrent use.
type CredentialService interface {
	// HashPassword derives a salted, one-way bcrypt hash of plaintext.
	// Fails only on an underlying library error.
	HashPassword(ctx context.Context, plaintext string) (string, error)

	// ComparePassword reports whether plaintext matches hash. A mismatch is
	// (false, nil); an error is returned only for library-level faults such
	// as a malformed hash.
	ComparePassword(ctx context.Context, plaintext, hash string) (bool, error)

	// GenerateToken issues a signed, time-bounded token encoding the
	// identity payload {id, email, name}.
	GenerateToken(ctx context.Context, payload models.TokenPayload) (string, error)

	// VerifyToken returns the decoded payload for a valid, unexpired,
	// correctly signed token, or ok == false on any failure. Expiry and
	// signature failures are indistinguishable to the caller.
	VerifyToken(ctx context.Context, tokenString string) (models.TokenPayload, bool)
}

// UserService implements the business rules atop the user store: field
// validation, email uniqueness, existence checks before mutation, and
// uniform credential validation.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, name, email, password string) (models.User, error)

	// ValidateUser authenticates by email and password. Unknown email and
	// wrong password are both reported as ok == false; callers must not be
	// able to tell them apart.
	ValidateUser(ctx context.Context, email, password string) (models.User, bool, error)

	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
