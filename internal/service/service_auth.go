package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/organizemymind/go-user-api/internal/config"
	"github.com/organizemymind/go-user-api/internal/logger"
	"github.com/organizemymind/go-user-api/internal/store"
	"github.com/organizemymind/go-user-api/internal/utils"
	"github.com/organizemymind/go-user-api/models"
)

// authService is the concrete implementation of AuthService.
// It composes the UserService for account creation and the UserRepository
// for credential lookups, and owns the JWT lifecycle.
type authService struct {
	// userService creates accounts; hashing and id assignment live there.
	userService UserService

	// userRepository is used for direct lookups by username during login.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserService and
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userService UserService, userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userService:    userService,
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account and issues a token for it.
//
// The sequence is strictly create-then-issue: the token is generated only
// after the record is durably persisted, so a conflicting registration never
// observes a token. A token-signing failure after a successful create is
// surfaced as ErrTokenCreationFailed; the account exists and the caller may
// log in instead.
//
// Returns the payload (persisted user + signed token) or:
//   - ErrInvalidDataProvided if any input field is empty.
//   - A wrapped store.ErrUserAlreadyExists when username or email is taken.
func (a *authService) Register(ctx context.Context, input models.CreateUserInput) (models.RegistrationPayload, error) {
	log := logger.FromContext(ctx)

	createdUser, err := a.userService.Create(ctx, input)
	if err != nil {
		return models.RegistrationPayload{}, err
	}

	token, err := a.CreateToken(ctx, createdUser)
	if err != nil {
		log.Err(err).Str("id", createdUser.ID).Msg("token issuance after registration failed")
		return models.RegistrationPayload{}, err
	}

	return models.RegistrationPayload{
		User:  createdUser,
		Token: token.SignedString,
	}, nil
}

// Login authenticates an existing user and issues a fresh token.
//
// It looks the account up by username and verifies the password against the
// stored bcrypt hash. An unknown username and a wrong password both fail with
// ErrInvalidCredentials so the response does not reveal which part was wrong.
func (a *authService) Login(ctx context.Context, username, password string) (models.RegistrationPayload, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials data provided")
		return models.RegistrationPayload{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown username")
			return models.RegistrationPayload{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.RegistrationPayload{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.PasswordHash) {
		log.Warn().Str("username", username).Msg("wrong password")
		return models.RegistrationPayload{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		return models.RegistrationPayload{}, err
	}

	return models.RegistrationPayload{
		User:  foundUser,
		Token: token.SignedString,
	}, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, the user id as "sub", the username as a
// custom claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
