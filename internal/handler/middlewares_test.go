package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekwell-dev/job-board/backend/internal/domain"
	"github.com/seekwell-dev/job-board/backend/internal/token"
)

func TestAuthMissingCookie(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run without a token")
	})

	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/job/getmyJobs", nil)

	h.auth(next).ServeHTTP(rr, r)

	env := decodeErrorEnvelope(t, rr)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "User not authorized", env.Message)
}

func TestAuthInvalidToken(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run with a bad token")
	})

	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/job/getmyJobs", nil)
	r.AddCookie(&http.Cookie{Name: "token", Value: "not.a.jwt"})

	h.auth(next).ServeHTTP(rr, r)

	env := decodeErrorEnvelope(t, rr)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "token is invalid, try again", env.Message)
}

func TestAuthExpiredToken(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	// signed with the handler's secret but already expired
	ss, _, err := token.NewService("test-secret", -time.Minute).Issue(uuid.New())
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run with an expired token")
	})

	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/job/getmyJobs", nil)
	r.AddCookie(&http.Cookie{Name: "token", Value: ss})

	h.auth(next).ServeHTTP(rr, r)

	env := decodeErrorEnvelope(t, rr)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "token is expired, try again", env.Message)
}

func TestPreventJobSeeker(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	tests := []struct {
		name       string
		role       domain.Role
		wantPassed bool
	}{
		{name: "job seeker is rejected", role: domain.RoleJobSeeker, wantPassed: false},
		{name: "employer passes", role: domain.RoleEmployer, wantPassed: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			passed := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				passed = true
				w.WriteHeader(http.StatusOK)
			})

			user := &domain.User{ID: uuid.New(), Role: tt.role}
			r := httptest.NewRequest(http.MethodPost, "/job/post", nil)
			r = r.WithContext(context.WithValue(r.Context(), CurrentUserCtx, user))
			rr := httptest.NewRecorder()

			h.preventJobSeeker(next).ServeHTTP(rr, r)

			assert.Equal(t, tt.wantPassed, passed)
			if !tt.wantPassed {
				env := decodeErrorEnvelope(t, rr)
				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Equal(t, "Job Seeker is not allowed to access this resource.", env.Message)
			}
		})
	}
}
