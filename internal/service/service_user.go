package service

import (
	"context"
	"fmt"

	"github.com/organizemymind/go-user-api/internal/logger"
	"github.com/organizemymind/go-user-api/internal/store"
	"github.com/organizemymind/go-user-api/internal/utils"
	"github.com/organizemymind/go-user-api/models"
)

// userService is the concrete implementation of UserService.
// It owns id assignment and credential hashing; the repository below it only
// ever sees a finished record with a bcrypt hash in place of the raw secret.
type userService struct {
	// userRepository is the data-access layer used to persist and look up users.
	userRepository store.UserRepository

	// uuidGenerator produces the id assigned to every new account.
	uuidGenerator *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Create registers a new user record.
//
// It validates that every input field is non-empty, assigns a fresh UUID,
// replaces the raw secret with its bcrypt hash, and delegates persistence to
// the UserRepository. The raw secret is never stored and never logged.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if any input field is empty.
//   - A wrapped storage error if the repository call fails (e.g. username or
//     email already taken — see store.ErrUserAlreadyExists).
func (s *userService) Create(ctx context.Context, input models.CreateUserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if input.Username == "" || input.FullName == "" || input.Email == "" || input.PasswordHash == "" {
		log.Error().Str("username", input.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hashed, err := utils.HashPassword(input.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*userService.Create").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           s.uuidGenerator.Generate(),
		Username:     input.Username,
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hashed,
	}

	createdUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// FindOne returns the user with the given id.
//
// Returns a wrapped store.ErrUserNotFound carrying the id when no record
// matches.
func (s *userService) FindOne(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user %s: %w", id, err)
	}

	return foundUser, nil
}

// FindAll returns every registered user ordered by username.
func (s *userService) FindAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.FindAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// Update applies the non-nil fields of input to the record with the given id
// and returns the record as persisted after the change.
//
// Returns:
//   - A wrapped store.ErrUserNotFound when the id does not exist.
//   - A wrapped store.ErrUserAlreadyExists when the new username or email
//     collides with another record.
func (s *userService) Update(ctx context.Context, id string, input models.UpdateUserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.userRepository.UpdateUser(ctx, id, input); err != nil {
		log.Err(err).Str("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user %s: %w", id, err)
	}

	updatedUser, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("re-fetch after update failed")
		return models.User{}, fmt.Errorf("user %s: %w", id, err)
	}

	return updatedUser, nil
}

// Remove permanently deletes the user with the given id. The id is never
// reassigned afterwards.
//
// Returns a wrapped store.ErrUserNotFound when the id does not exist.
func (s *userService) Remove(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user %s: %w", id, err)
	}

	return nil
}
