package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/organizemymind/go-user-api/internal/logger"
	"github.com/organizemymind/go-user-api/internal/mock"
	"github.com/organizemymind/go-user-api/internal/service"
	"github.com/organizemymind/go-user-api/internal/store"
	"github.com/organizemymind/go-user-api/models"
)

func newTestRouter(t *testing.T, ctrl *gomock.Controller) (http.Handler, *mock.MockUserService, *mock.MockAuthService, *mock.MockAppInfoService) {
	t.Helper()

	mockUsers := mock.NewMockUserService(ctrl)
	mockAuth := mock.NewMockAuthService(ctrl)
	mockAppInfo := mock.NewMockAppInfoService(ctrl)

	h, err := NewHandler(&service.Services{
		UserService:    mockUsers,
		AuthService:    mockAuth,
		AppInfoService: mockAppInfo,
	}, logger.Nop())
	require.NoError(t, err)

	return h.Init(), mockUsers, mockAuth, mockAppInfo
}

func postQuery(t *testing.T, router http.Handler, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string         `json:"message"`
		Extensions map[string]any `json:"extensions"`
	} `json:"errors"`
}

func decodeGraphQL(t *testing.T, rec *httptest.ResponseRecorder) graphqlResponse {
	t.Helper()

	var resp graphqlResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestQueryEndpoint_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, mockAuth, _ := newTestRouter(t, ctrl)

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.RegistrationPayload{
		User:  models.User{ID: "id-1", Username: "john", FullName: "John Doe", Email: "john@example.com"},
		Token: "signed-token",
	}, nil)

	body := `{"query":"mutation { register(input: {username: \"john\", full_name: \"John Doe\", email: \"john@example.com\", password_hash: \"secret\"}) { user { id username } token } }"}`
	rec := postQuery(t, router, body, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeGraphQL(t, rec)
	require.Empty(t, resp.Errors)

	var data struct {
		Register struct {
			User struct {
				ID string `json:"id"`
			} `json:"user"`
			Token string `json:"token"`
		} `json:"register"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "id-1", data.Register.User.ID)
	assert.Equal(t, "signed-token", data.Register.Token)
}

func TestQueryEndpoint_ErrorExtensions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mockUsers, _, _ := newTestRouter(t, ctrl)

	mockUsers.EXPECT().Remove(gomock.Any(), "missing-id").Return(store.ErrUserNotFound)

	body := `{"query":"mutation { removeUser(id: \"missing-id\") }"}`
	rec := postQuery(t, router, body, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeGraphQL(t, rec)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "NOT_FOUND", resp.Errors[0].Extensions["code"])
}

func TestQueryEndpoint_GetMethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, _ := newTestRouter(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/query", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestVersionEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, mockAppInfo := newTestRouter(t, ctrl)

	mockAppInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestTraceIDHeaderIsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, mockAppInfo := newTestRouter(t, ctrl)
	mockAppInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestTraceIDHeaderIsPropagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, mockAppInfo := newTestRouter(t, ctrl)
	mockAppInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("X-Trace-ID", "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get("X-Trace-ID"))
}

func TestHealthEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _, _, _ := newTestRouter(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
