package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/organizemymind/go-user-api/internal/logger"
	"github.com/organizemymind/go-user-api/internal/service"
	"github.com/organizemymind/go-user-api/internal/store"
	"github.com/organizemymind/go-user-api/internal/utils"
	"github.com/organizemymind/go-user-api/models"
)

// Resolver is the root resolver behind [Schema]. It serves both Query and
// Mutation fields and delegates all business logic to the service layer.
type Resolver struct {
	userService service.UserService
	authService service.AuthService

	logger *logger.Logger
}

// NewResolver constructs the root resolver over the given services.
func NewResolver(services *service.Services, logger *logger.Logger) *Resolver {
	return &Resolver{
		userService: services.UserService,
		authService: services.AuthService,
		logger:      logger,
	}
}

// NewSchema parses [Schema] against a fresh root resolver. Called once at
// process start; a schema/resolver mismatch is a startup error, never a
// request-time one.
func NewSchema(services *service.Services, logger *logger.Logger) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, NewResolver(services, logger))
}

// createUserInput mirrors the CreateUserInput SDL type. Field names follow
// the schema's snake_case wire names.
type createUserInput struct {
	Username      string
	Full_name     string
	Email         string
	Password_hash string
}

// updateUserInput mirrors the UpdateUserInput SDL type; nil means "leave
// unchanged".
type updateUserInput struct {
	Username  *string
	Full_name *string
	Email     *string
}

// FindOneUser resolves the findOneUser query.
func (r *Resolver) FindOneUser(ctx context.Context, args struct{ ID graphql.ID }) (*userResolver, error) {
	user, err := r.userService.FindOne(ctx, string(args.ID))
	if err != nil {
		return nil, mapUserError(string(args.ID), err)
	}

	return &userResolver{user: user}, nil
}

// FindUsers resolves the findUsers query.
func (r *Resolver) FindUsers(ctx context.Context) ([]*userResolver, error) {
	users, err := r.userService.FindAll(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resolvers := make([]*userResolver, 0, len(users))
	for _, user := range users {
		resolvers = append(resolvers, &userResolver{user: user})
	}

	return resolvers, nil
}

// Me resolves the me query: the account behind the request's bearer token,
// or null when the request carries no valid token.
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, nil
	}

	user, err := r.userService.FindOne(ctx, userID)
	if err != nil {
		// a valid token for a since-deleted account is not an error,
		// the viewer simply no longer exists
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}
		return nil, mapError(err)
	}

	return &userResolver{user: user}, nil
}

// Register resolves the register mutation: account creation plus token
// issuance. On conflict no token is issued.
func (r *Resolver) Register(ctx context.Context, args struct{ Input createUserInput }) (*registerPayloadResolver, error) {
	payload, err := r.authService.Register(ctx, models.CreateUserInput{
		Username:     args.Input.Username,
		FullName:     args.Input.Full_name,
		Email:        args.Input.Email,
		PasswordHash: args.Input.Password_hash,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &registerPayloadResolver{payload: payload}, nil
}

// Login resolves the login mutation.
func (r *Resolver) Login(ctx context.Context, args struct{ Username, Password string }) (*registerPayloadResolver, error) {
	payload, err := r.authService.Login(ctx, args.Username, args.Password)
	if err != nil {
		return nil, mapError(err)
	}

	return &registerPayloadResolver{payload: payload}, nil
}

// UpdateUser resolves the updateUser mutation: a partial update returning
// the record as persisted afterwards.
func (r *Resolver) UpdateUser(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateUserInput
}) (*userResolver, error) {
	user, err := r.userService.Update(ctx, string(args.ID), models.UpdateUserInput{
		Username: args.Input.Username,
		FullName: args.Input.Full_name,
		Email:    args.Input.Email,
	})
	if err != nil {
		return nil, mapUserError(string(args.ID), err)
	}

	return &userResolver{user: user}, nil
}

// RemoveUser resolves the removeUser mutation. Returns true on deletion;
// a missing id is a NOT_FOUND error, never a silent false.
func (r *Resolver) RemoveUser(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if err := r.userService.Remove(ctx, string(args.ID)); err != nil {
		return false, mapUserError(string(args.ID), err)
	}

	return true, nil
}

// userResolver adapts a models.User to the User SDL type. The stored hash
// has no corresponding field and is unreachable from the API.
type userResolver struct {
	user models.User
}

func (u *userResolver) ID() graphql.ID {
	return graphql.ID(u.user.ID)
}

func (u *userResolver) Username() string {
	return u.user.Username
}

// Full_name matches the snake_case field name of the SDL; the library
// resolves fields to methods case-insensitively.
func (u *userResolver) Full_name() string {
	return u.user.FullName
}

func (u *userResolver) Email() string {
	return u.user.Email
}

// registerPayloadResolver adapts a models.RegistrationPayload to the
// RegisterPayload SDL type.
type registerPayloadResolver struct {
	payload models.RegistrationPayload
}

func (p *registerPayloadResolver) User() *userResolver {
	return &userResolver{user: p.payload.User}
}

func (p *registerPayloadResolver) Token() string {
	return p.payload.Token
}
