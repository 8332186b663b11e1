package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekwell-dev/job-board/backend/internal/apperr"
	"github.com/seekwell-dev/job-board/backend/internal/config"
	"github.com/seekwell-dev/job-board/backend/internal/token"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 3600
	cfg.Cookie.Expiration = 5

	h, err := NewHandler(cfg, nil, nil, nil)
	require.NoError(t, err)

	return h
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeErrorEnvelope(t *testing.T, rr *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	env := errorEnvelope{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestFailClassification(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "tagged error keeps its status and message",
			err:        apperr.NotFound("Job Not Found!"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Job Not Found!",
		},
		{
			name:       "malformed id",
			err:        apperr.ErrInvalidID,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Resource not found. Invalid id",
		},
		{
			name:       "unique violation names the duplicate field",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Duplicate email Entered",
		},
		{
			name:       "invalid token",
			err:        token.ErrTokenInvalid,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "token is invalid, try again",
		},
		{
			name:       "expired token",
			err:        token.ErrTokenExpired,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "token is expired, try again",
		},
		{
			name:       "missing row",
			err:        sql.ErrNoRows,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Resource not found",
		},
		{
			name:       "unknown errors never leak details",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			h.fail(rr, r, tt.err)

			env := decodeErrorEnvelope(t, rr)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}
}

func TestFailTranslatesValidationErrors(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	err := h.validate.Struct(req)
	require.Error(t, err)

	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)

	h.fail(rr, r, err)

	env := decodeErrorEnvelope(t, rr)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "required")
}

func TestConstraintField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "email", constraintField("users_email_key"))
	assert.Equal(t, "posted_by", constraintField("jobs_posted_by_key"))
	assert.Equal(t, "field", constraintField("weird"))
}
