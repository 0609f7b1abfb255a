package service

import (
	"context"

	"github.com/organizemymind/go-user-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// UserService orchestrates CRUD on the User entity: input validation, id
// assignment, credential hashing, and persistence through the repository.
type UserService interface {
	// Create validates the input, assigns an id, hashes the raw secret and
	// persists the record. The raw secret never reaches the store.
	Create(ctx context.Context, input models.CreateUserInput) (models.User, error)

	// FindOne returns the user with the given id.
	FindOne(ctx context.Context, id string) (models.User, error)

	// FindAll returns all users ordered by username.
	FindAll(ctx context.Context) ([]models.User, error)

	// Update applies the non-nil fields of input and returns the full
	// record as persisted after the change.
	Update(ctx context.Context, id string, input models.UpdateUserInput) (models.User, error)

	// Remove permanently deletes the user with the given id.
	Remove(ctx context.Context, id string) error
}

// AuthService handles account registration, credential verification and JWT
// token lifecycle.
type AuthService interface {
	// Register creates the account and issues a token for it. The token is
	// issued only after the record is durably created; on conflict no token
	// exists.
	Register(ctx context.Context, input models.CreateUserInput) (models.RegistrationPayload, error)

	// Login verifies the credentials and issues a fresh token.
	// Unknown username and wrong password are indistinguishable to the
	// caller: both fail with ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (models.RegistrationPayload, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
