package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekwell-dev/job-board/backend/internal/domain"
)

func findCookie(t *testing.T, rr *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	res := rr.Result()
	defer res.Body.Close()

	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSendToken(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	user := &domain.User{
		ID:           uuid.New(),
		Name:         "Ann",
		Email:        "a@x.com",
		Phone:        "555",
		Role:         domain.RoleEmployer,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Now(),
	}

	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/user/register", nil)

	h.sendToken(rr, r, http.StatusOK, user, "User registered successfully")

	require.Equal(t, http.StatusOK, rr.Code)

	cookie := findCookie(t, rr, "token")
	require.NotNil(t, cookie, "token cookie must be set")
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.True(t, cookie.Expires.After(time.Now()))

	// the cookie must carry a verifiable token for the same user
	gotID, err := h.tokens.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotID)

	var body struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Token   string         `json:"token"`
		User    map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "User registered successfully", body.Message)
	assert.Equal(t, cookie.Value, body.Token)
	assert.Equal(t, "a@x.com", body.User["email"])

	// the password hash must never reach the client
	_, hasPassword := body.User["password"]
	_, hasPasswordHash := body.User["passwordHash"]
	assert.False(t, hasPassword)
	assert.False(t, hasPasswordHash)
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	user := &domain.User{ID: uuid.New(), Name: "Ann", Email: "a@x.com", Role: domain.RoleJobSeeker}
	r := httptest.NewRequest(http.MethodGet, "/user/getuser", nil)
	r = r.WithContext(context.WithValue(r.Context(), CurrentUserCtx, user))
	rr := httptest.NewRecorder()

	h.GetUser(rr, r)

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Success bool           `json:"success"`
		User    map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "a@x.com", body.User["email"])
}

func TestLogoutExpiresCookie(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/user/logout", nil)

	h.Logout(rr, r)

	require.Equal(t, http.StatusCreated, rr.Code)

	cookie := findCookie(t, rr, "token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.False(t, cookie.Expires.After(time.Now()))

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "User logged out successfully!", body.Message)
}
