package graph

import (
	"errors"
	"fmt"

	"github.com/organizemymind/go-user-api/internal/service"
	"github.com/organizemymind/go-user-api/internal/store"
)

// GraphQL error extension codes surfaced to clients.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// resolverError is a GraphQL-facing error with a machine-readable code in
// its extensions. It implements the ResolverError contract of
// graph-gophers/graphql-go, so the code ends up under extensions.code in the
// response.
type resolverError struct {
	code    string
	message string
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]any {
	return map[string]any{"code": e.code}
}

// mapError translates domain errors into resolver errors with extension
// codes. Unknown errors are masked behind a generic internal error so that
// driver details never reach clients.
func mapError(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return &resolverError{code: CodeNotFound, message: "user not found"}
	case errors.Is(err, store.ErrUserAlreadyExists):
		return &resolverError{code: CodeConflict, message: "username or email already taken"}
	case errors.Is(err, service.ErrInvalidDataProvided):
		return &resolverError{code: CodeBadUserInput, message: "invalid data provided"}
	case errors.Is(err, service.ErrInvalidCredentials):
		return &resolverError{code: CodeUnauthenticated, message: "invalid username or password"}
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return &resolverError{code: CodeUnauthenticated, message: "token is expired or invalid"}
	default:
		return &resolverError{code: CodeInternal, message: "internal server error"}
	}
}

// mapUserError is mapError for id-addressed operations: a missing record
// names the offending id in the message, so clients see which lookup failed.
func mapUserError(id string, err error) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return &resolverError{code: CodeNotFound, message: fmt.Sprintf("user with id %s not found", id)}
	}
	return mapError(err)
}
