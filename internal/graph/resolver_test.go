package graph

import (
	"context"
	"encoding/json"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/organizemymind/go-user-api/internal/logger"
	"github.com/organizemymind/go-user-api/internal/mock"
	"github.com/organizemymind/go-user-api/internal/service"
	"github.com/organizemymind/go-user-api/internal/store"
	"github.com/organizemymind/go-user-api/internal/utils"
	"github.com/organizemymind/go-user-api/models"
)

func newTestSchema(t *testing.T, ctrl *gomock.Controller) (*graphql.Schema, *mock.MockUserService, *mock.MockAuthService) {
	t.Helper()

	mockUsers := mock.NewMockUserService(ctrl)
	mockAuth := mock.NewMockAuthService(ctrl)

	schema, err := NewSchema(&service.Services{
		UserService: mockUsers,
		AuthService: mockAuth,
	}, logger.Nop())
	require.NoError(t, err)

	return schema, mockUsers, mockAuth
}

func errCode(t *testing.T, resp *graphql.Response) string {
	t.Helper()
	require.NotEmpty(t, resp.Errors, "expected a GraphQL error")
	code, _ := resp.Errors[0].Extensions["code"].(string)
	return code
}

func decodeData(t *testing.T, resp *graphql.Response, into any) {
	t.Helper()
	require.Empty(t, resp.Errors, "unexpected GraphQL errors: %v", resp.Errors)
	require.NoError(t, json.Unmarshal(resp.Data, into))
}

func TestSchema_Parses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, _, _ := newTestSchema(t, ctrl)
	assert.NotNil(t, schema)
}

// ── findOneUser ──────────────────────────────────────────────────────────────

func TestFindOneUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindOne(gomock.Any(), "id-1").Return(models.User{
		ID:           "id-1",
		Username:     "john",
		FullName:     "John Doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$secret-hash",
	}, nil)

	query := `query($id: ID!) { findOneUser(id: $id) { id username full_name email } }`
	resp := schema.Exec(ctx, query, "", map[string]any{"id": "id-1"})

	var data struct {
		FindOneUser struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			FullName string `json:"full_name"`
			Email    string `json:"email"`
		} `json:"findOneUser"`
	}
	decodeData(t, resp, &data)

	assert.Equal(t, "id-1", data.FindOneUser.ID)
	assert.Equal(t, "john", data.FindOneUser.Username)
	assert.Equal(t, "John Doe", data.FindOneUser.FullName)
	assert.Equal(t, "john@example.com", data.FindOneUser.Email)
}

func TestFindOneUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindOne(gomock.Any(), "missing-id").Return(models.User{}, store.ErrUserNotFound)

	query := `query($id: ID!) { findOneUser(id: $id) { id } }`
	resp := schema.Exec(ctx, query, "", map[string]any{"id": "missing-id"})

	assert.Equal(t, CodeNotFound, errCode(t, resp))
	assert.Contains(t, resp.Errors[0].Error(), "missing-id", "the message must name the id that missed")
}

func TestUser_HasNoPasswordHashField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, _, _ := newTestSchema(t, ctrl)

	// asking for the stored hash must fail schema validation
	query := `query { findOneUser(id: "id-1") { id password_hash } }`
	resp := schema.Exec(context.Background(), query, "", nil)

	require.NotEmpty(t, resp.Errors)
	assert.Contains(t, resp.Errors[0].Error(), "password_hash")
}

// ── findUsers ────────────────────────────────────────────────────────────────

func TestFindUsers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindAll(gomock.Any()).Return([]models.User{
		{ID: "id-1", Username: "alice"},
		{ID: "id-2", Username: "bob"},
	}, nil)

	resp := schema.Exec(ctx, `query { findUsers { id username } }`, "", nil)

	var data struct {
		FindUsers []struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"findUsers"`
	}
	decodeData(t, resp, &data)

	require.Len(t, data.FindUsers, 2)
	assert.Equal(t, "alice", data.FindUsers[0].Username)
	assert.Equal(t, "bob", data.FindUsers[1].Username)
}

func TestFindUsers_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)

	mockUsers.EXPECT().FindAll(gomock.Any()).Return([]models.User{}, nil)

	resp := schema.Exec(context.Background(), `query { findUsers { id } }`, "", nil)

	var data struct {
		FindUsers []any `json:"findUsers"`
	}
	decodeData(t, resp, &data)
	assert.Empty(t, data.FindUsers)
}

// ── me ───────────────────────────────────────────────────────────────────────

func TestMe_Unauthenticated_ReturnsNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, _, _ := newTestSchema(t, ctrl)

	resp := schema.Exec(context.Background(), `query { me { id } }`, "", nil)

	var data struct {
		Me *struct{} `json:"me"`
	}
	decodeData(t, resp, &data)
	assert.Nil(t, data.Me)
}

func TestMe_Authenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)
	ctx := context.WithValue(context.Background(), utils.UserIDCtxKey, "id-1")

	mockUsers.EXPECT().FindOne(gomock.Any(), "id-1").Return(models.User{ID: "id-1", Username: "john"}, nil)

	resp := schema.Exec(ctx, `query { me { id username } }`, "", nil)

	var data struct {
		Me *struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"me"`
	}
	decodeData(t, resp, &data)
	require.NotNil(t, data.Me)
	assert.Equal(t, "john", data.Me.Username)
}

func TestMe_DeletedAccount_ReturnsNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)
	ctx := context.WithValue(context.Background(), utils.UserIDCtxKey, "id-gone")

	mockUsers.EXPECT().FindOne(gomock.Any(), "id-gone").Return(models.User{}, store.ErrUserNotFound)

	resp := schema.Exec(ctx, `query { me { id } }`, "", nil)

	var data struct {
		Me *struct{} `json:"me"`
	}
	decodeData(t, resp, &data)
	assert.Nil(t, data.Me)
}

// ── register ─────────────────────────────────────────────────────────────────

const registerMutation = `
	mutation($input: CreateUserInput!) {
		register(input: $input) {
			user { id username full_name email }
			token
		}
	}`

func registerVars() map[string]any {
	return map[string]any{
		"input": map[string]any{
			"username":      "john",
			"full_name":     "John Doe",
			"email":         "john@example.com",
			"password_hash": "super-secret-password",
		},
	}
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, _, mockAuth := newTestSchema(t, ctrl)
	ctx := context.Background()

	mockAuth.EXPECT().Register(gomock.Any(), models.CreateUserInput{
		Username:     "john",
		FullName:     "John Doe",
		Email:        "john@example.com",
		PasswordHash: "super-secret-password",
	}).Return(models.RegistrationPayload{
		User:  models.User{ID: "id-1", Username: "john", FullName: "John Doe", Email: "john@example.com"},
		Token: "signed-token",
	}, nil)

	resp := schema.Exec(ctx, registerMutation, "", registerVars())

	var data struct {
		Register struct {
			User struct {
				ID       string `json:"id"`
				Username string `json:"username"`
			} `json:"user"`
			Token string `json:"token"`
		} `json:"register"`
	}
	decodeData(t, resp, &data)

	assert.Equal(t, "id-1", data.Register.User.ID)
	assert.Equal(t, "signed-token", data.Register.Token)
}

func TestRegister_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, _, mockAuth := newTestSchema(t, ctrl)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.RegistrationPayload{}, store.ErrUserAlreadyExists)

	resp := schema.Exec(context.Background(), registerMutation, "", registerVars())

	assert.Equal(t, CodeConflict, errCode(t, resp))
}

func TestRegister_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, _, mockAuth := newTestSchema(t, ctrl)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.RegistrationPayload{}, service.ErrInvalidDataProvided)

	resp := schema.Exec(context.Background(), registerMutation, "", registerVars())

	assert.Equal(t, CodeBadUserInput, errCode(t, resp))
}

// ── login ────────────────────────────────────────────────────────────────────

const loginMutation = `
	mutation($username: String!, $password: String!) {
		login(username: $username, password: $password) {
			user { id username }
			token
		}
	}`

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, _, mockAuth := newTestSchema(t, ctrl)

	mockAuth.EXPECT().Login(gomock.Any(), "john", "secret").Return(models.RegistrationPayload{
		User:  models.User{ID: "id-1", Username: "john"},
		Token: "signed-token",
	}, nil)

	resp := schema.Exec(context.Background(), loginMutation, "", map[string]any{
		"username": "john",
		"password": "secret",
	})

	var data struct {
		Login struct {
			Token string `json:"token"`
		} `json:"login"`
	}
	decodeData(t, resp, &data)
	assert.Equal(t, "signed-token", data.Login.Token)
}

func TestLogin_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, _, mockAuth := newTestSchema(t, ctrl)

	mockAuth.EXPECT().Login(gomock.Any(), "john", "wrong").
		Return(models.RegistrationPayload{}, service.ErrInvalidCredentials)

	resp := schema.Exec(context.Background(), loginMutation, "", map[string]any{
		"username": "john",
		"password": "wrong",
	})

	assert.Equal(t, CodeUnauthenticated, errCode(t, resp))
}

// ── updateUser ───────────────────────────────────────────────────────────────

const updateMutation = `
	mutation($id: ID!, $input: UpdateUserInput!) {
		updateUser(id: $id, input: $input) { id username full_name email }
	}`

func TestUpdateUser_PartialInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)
	newEmail := "new@example.com"

	mockUsers.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, input models.UpdateUserInput) (models.User, error) {
			// only the supplied field may be set
			require.NotNil(t, input.Email)
			assert.Equal(t, newEmail, *input.Email)
			assert.Nil(t, input.Username)
			assert.Nil(t, input.FullName)
			return models.User{ID: id, Username: "john", FullName: "John Doe", Email: newEmail}, nil
		},
	)

	resp := schema.Exec(context.Background(), updateMutation, "", map[string]any{
		"id":    "id-1",
		"input": map[string]any{"email": newEmail},
	})

	var data struct {
		UpdateUser struct {
			Email string `json:"email"`
		} `json:"updateUser"`
	}
	decodeData(t, resp, &data)
	assert.Equal(t, newEmail, data.UpdateUser.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)

	mockUsers.EXPECT().Update(gomock.Any(), "missing-id", gomock.Any()).
		Return(models.User{}, store.ErrUserNotFound)

	resp := schema.Exec(context.Background(), updateMutation, "", map[string]any{
		"id":    "missing-id",
		"input": map[string]any{},
	})

	assert.Equal(t, CodeNotFound, errCode(t, resp))
	assert.Contains(t, resp.Errors[0].Error(), "missing-id")
}

func TestUpdateUser_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)

	mockUsers.EXPECT().Update(gomock.Any(), "id-1", gomock.Any()).
		Return(models.User{}, store.ErrUserAlreadyExists)

	resp := schema.Exec(context.Background(), updateMutation, "", map[string]any{
		"id":    "id-1",
		"input": map[string]any{"username": "taken"},
	})

	assert.Equal(t, CodeConflict, errCode(t, resp))
}

// ── removeUser ───────────────────────────────────────────────────────────────

const removeMutation = `mutation($id: ID!) { removeUser(id: $id) }`

func TestRemoveUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)

	mockUsers.EXPECT().Remove(gomock.Any(), "id-1").Return(nil)

	resp := schema.Exec(context.Background(), removeMutation, "", map[string]any{"id": "id-1"})

	var data struct {
		RemoveUser bool `json:"removeUser"`
	}
	decodeData(t, resp, &data)
	assert.True(t, data.RemoveUser)
}

func TestRemoveUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)

	mockUsers.EXPECT().Remove(gomock.Any(), "missing-id").Return(store.ErrUserNotFound)

	resp := schema.Exec(context.Background(), removeMutation, "", map[string]any{"id": "missing-id"})

	assert.Equal(t, CodeNotFound, errCode(t, resp))
	assert.Contains(t, resp.Errors[0].Error(), "missing-id")
}

// ── error masking ────────────────────────────────────────────────────────────

func TestUnknownErrorsAreMasked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schema, mockUsers, _ := newTestSchema(t, ctrl)

	mockUsers.EXPECT().FindAll(gomock.Any()).
		Return(nil, assert.AnError)

	resp := schema.Exec(context.Background(), `query { findUsers { id } }`, "", nil)

	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, CodeInternal, errCode(t, resp))
	assert.NotContains(t, resp.Errors[0].Error(), assert.AnError.Error(), "driver detail must not leak")
}
