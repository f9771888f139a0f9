package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openaws/openaws-api/internal/mocks"
	"github.com/openaws/openaws-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthHandler, *mocks.MemoryUserStore) {
	t.Helper()

	userStore := mocks.NewMemoryUserStore()
	jwtService := &mocks.MockJWTService{Token: "test-token"}
	hasher := auth.NewBcryptHasher(4) // minimum cost keeps tests fast

	return NewAuthHandler(userStore, jwtService, hasher, nil), userStore
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	handler(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Parallel()

	handler, userStore := newAuthFixture(t)

	w := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
		Email:    "learner@example.com",
		Password: "correct horse battery",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test-token", resp.Token)

	// The stored user carries a hash, never the plaintext.
	stored, err := userStore.GetByEmail(context.Background(), "learner@example.com")
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, stored.ID)
	assert.Empty(t, stored.Password)
	assert.NotEmpty(t, stored.HashedPassword)
	assert.NotEqual(t, "correct horse battery", stored.HashedPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	handler, _ := newAuthFixture(t)

	req := RegisterRequest{Email: "learner@example.com", Password: "correct horse battery"}
	w := postJSON(t, handler.Register, "/api/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, handler.Register, "/api/auth/register", req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	handler, _ := newAuthFixture(t)

	testCases := []struct {
		name    string
		request RegisterRequest
	}{
		{
			name:    "invalid email",
			request: RegisterRequest{Email: "not-an-email", Password: "correct horse battery"},
		},
		{
			name:    "password too short",
			request: RegisterRequest{Email: "learner@example.com", Password: "short"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := postJSON(t, handler.Register, "/api/auth/register", tc.request)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	handler, _ := newAuthFixture(t)

	w := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
		Email:    "learner@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
		Email:    "learner@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "test-token", resp.Token)
}

func TestLoginBadCredentials(t *testing.T) {
	t.Parallel()

	handler, _ := newAuthFixture(t)

	w := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
		Email:    "learner@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Wrong password and unknown email produce the same response, so the
	// endpoint does not reveal which emails are registered.
	wrongPassword := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
		Email:    "learner@example.com",
		Password: "wrong password entirely",
	})
	unknownEmail := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
		Email:    "stranger@example.com",
		Password: "correct horse battery",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}
