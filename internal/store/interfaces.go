package store

import (
	"context"

	"github.com/organizemymind/go-user-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the persistence boundary for the User entity.
//
// All mutating operations are durable on success and atomic per call: each
// maps to a single SQL statement, so a failure leaves no partial field
// application behind. Uniqueness of username and email is enforced by the
// store's constraints; concurrent conflicting creates are resolved there,
// with the loser observing [ErrUserAlreadyExists].
type UserRepository interface {
	// CreateUser inserts a new user record and returns the persisted row.
	// Fails with ErrUserAlreadyExists when username or email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given id.
	// Fails with ErrUserNotFound when no record matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// FindUserByUsername returns the user with the given username.
	// Fails with ErrUserNotFound when no record matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindAllUsers returns all user records ordered by username.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies only the non-nil fields of input to the record
	// with the given id. An empty input is a no-op write that still fails
	// with ErrUserNotFound when the id does not exist.
	UpdateUser(ctx context.Context, id string, input models.UpdateUserInput) error

	// DeleteUser removes the record with the given id.
	// Fails with ErrUserNotFound when the id does not exist.
	DeleteUser(ctx context.Context, id string) error
}
