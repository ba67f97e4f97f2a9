package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

func newTestAuthHandler() (*AuthHandler, *UserService) {
	service, _ := newTestUserService()
	return NewAuthHandler(service, newTestJWTService()), service
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _ := newTestAuthHandler()

	body, _ := json.Marshal(types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "password123",
	})
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.NotNil(t, response.User)
	assert.Equal(t, "ada@example.com", response.User.Email)
	assert.NotEmpty(t, response.Token)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	handler, _ := newTestAuthHandler()

	body, _ := json.Marshal(types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "short",
	})
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, _ := newTestAuthHandler()

	body, _ := json.Marshal(types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "password123",
	})

	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	handler.Register(httptest.NewRecorder(), req)

	req = httptest.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	handler, service := newTestAuthHandler()

	_, err := service.Register(t.Context(), &types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	body, _ := json.Marshal(types.LoginRequest{Email: "ada@example.com", Password: "password123"})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.NotEmpty(t, response.Token)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler, _ := newTestAuthHandler()

	body, _ := json.Marshal(types.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	handler, _ := newTestAuthHandler()

	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	handler, service := newTestAuthHandler()

	user, err := service.Register(t.Context(), &types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "old-password",
	})
	require.NoError(t, err)

	body, _ := json.Marshal(types.UpdatePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})
	req := httptest.NewRequest("PUT", "/auth/password", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.UpdatePasswordWithUserID(rec, req, user.ID)

	require.Equal(t, http.StatusOK, rec.Code)

	// New password now authenticates
	_, err = service.Login(t.Context(), &types.LoginRequest{Email: "ada@example.com", Password: "new-password"})
	assert.NoError(t, err)
}

func TestAuthHandler_UpdatePassword_WrongCurrent(t *testing.T) {
	handler, service := newTestAuthHandler()

	user, err := service.Register(t.Context(), &types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "old-password",
	})
	require.NoError(t, err)

	body, _ := json.Marshal(types.UpdatePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-password",
	})
	req := httptest.NewRequest("PUT", "/auth/password", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.UpdatePasswordWithUserID(rec, req, user.ID)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
