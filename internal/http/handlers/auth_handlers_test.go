package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
	httpx "github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/http"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/http/handlers"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/http/middleware"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/mocks"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/services"
)

type testServer struct {
	router   *gin.Engine
	userRepo *mocks.MockUserRepository
	cache    *mocks.MockSessionCache
	mailer   *mocks.MockNotificationService
	tokenSvc *mocks.MockTokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServer{
		userRepo: mocks.NewMockUserRepository(),
		cache:    mocks.NewMockSessionCache(),
		mailer:   mocks.NewMockNotificationService(),
		tokenSvc: mocks.NewMockTokenService(),
	}

	authSvc := services.NewAuthService(
		s.userRepo,
		s.cache,
		mocks.NewMockPasswordService(),
		s.tokenSvc,
		s.mailer,
		mocks.NewMockAssetStore(),
		mocks.NewMockActivationGuard(),
	)

	ah := handlers.NewAuthHandlers(authSvc, s.tokenSvc)
	authmw := middleware.NewAuthMW(s.tokenSvc, s.cache)
	s.router = httpx.BuildRouter(ah, authmw)
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func cookieValue(w *httptest.ResponseRecorder, name string) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func TestRegisterEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/registration", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["activationToken"])
	// the code travels by mail only
	assert.NotContains(t, w.Body.String(), "4821")
	require.Len(t, s.mailer.Sent, 1)
}

func TestRegisterEndpoint_Validation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/registration", gin.H{
		"name":     "Alice",
		"email":    "not-an-email",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func TestLoginEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: "u1", Name: "Alice", Email: email, PasswordHash: "hashed_secret123"}, nil
	}

	t.Run("success sets both cookies", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/login", gin.H{
			"email":    "alice@example.com",
			"password": "secret123",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "access_token_u1", cookieValue(w, "access_token"))
		assert.Equal(t, "refresh_token_u1", cookieValue(w, "refresh_token"))

		resp := decode(t, w)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "access_token_u1", resp["accessToken"])
		user := resp["user"].(map[string]any)
		assert.Equal(t, "alice@example.com", user["email"])
		assert.NotContains(t, user, "password")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/login", gin.H{
			"email":    "alice@example.com",
			"password": "nope",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decode(t, w)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Invalid email or password", resp["message"])
	})
}

func TestMeEndpoint(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	s.cache.Set(ctx, &domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"})

	t.Run("with a valid cookie", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/me", nil, &http.Cookie{Name: "access_token", Value: "access_token_u1"})

		require.Equal(t, http.StatusOK, w.Code)
		user := decode(t, w)["user"].(map[string]any)
		assert.Equal(t, "Alice", user["name"])
	})

	t.Run("with a bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer access_token_u1")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("without a token", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("with no live session", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/me", nil, &http.Cookie{Name: "access_token", Value: "access_token_ghost"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	s.cache.Set(ctx, &domain.User{ID: "u1", Email: "alice@example.com"})

	t.Run("from cookie", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/refresh", nil, &http.Cookie{Name: "refresh_token", Value: "refresh_token_u1"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "access_token_u1", cookieValue(w, "access_token"))
		assert.Equal(t, "access_token_u1", decode(t, w)["accessToken"])
	})

	t.Run("missing token", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/refresh", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("after logout", func(t *testing.T) {
		logout := s.do(t, http.MethodGet, "/api/v1/logout", nil, &http.Cookie{Name: "access_token", Value: "access_token_u1"})
		require.Equal(t, http.StatusOK, logout.Code)

		w := s.do(t, http.MethodPost, "/api/v1/refresh", nil, &http.Cookie{Name: "refresh_token", Value: "refresh_token_u1"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Session expired, please login again", decode(t, w)["message"])
	})
}

func TestLogoutEndpoint_ClearsCookies(t *testing.T) {
	s := newTestServer(t)
	s.cache.Set(context.Background(), &domain.User{ID: "u1"})

	w := s.do(t, http.MethodGet, "/api/v1/logout", nil, &http.Cookie{Name: "access_token", Value: "access_token_u1"})
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == "access_token" || c.Name == "refresh_token" {
			assert.Empty(t, c.Value)
			assert.Negative(t, c.MaxAge)
		}
	}
	assert.Equal(t, 0, s.cache.Len())
}

func TestActivateEndpoint(t *testing.T) {
	s := newTestServer(t)

	t.Run("wrong code", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/activate-user", gin.H{
			"activation_token": "activation_token_alice@example.com",
			"activation_code":  "1234",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid activation code", decode(t, w)["message"])
	})

	t.Run("correct code", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/activate-user", gin.H{
			"activation_token": "activation_token_alice@example.com",
			"activation_code":  "4821",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "User activated successfully.", decode(t, w)["message"])
	})
}
