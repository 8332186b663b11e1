package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/seekwell-dev/job-board/backend/internal/apperr"
	"github.com/seekwell-dev/job-board/backend/internal/token"
)

const pgUniqueViolation = "23505"

// fail is the single place that turns a failure into the client-facing
// {success:false, message} envelope. Handlers never format error JSON
// themselves; they hand whatever went wrong to fail. First match wins.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	var validationErrors validator.ValidationErrors
	var pgErr *pgconn.PgError

	switch {
	case errors.As(err, &appErr):
		h.respondError(w, r, appErr.Status, appErr.Message)
	case errors.As(err, &validationErrors):
		h.respondError(w, r, http.StatusBadRequest, validationErrors[0].Translate(h.translator))
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("Duplicate %s Entered", constraintField(pgErr.ConstraintName)))
	case errors.Is(err, token.ErrTokenInvalid):
		h.respondError(w, r, http.StatusBadRequest, "token is invalid, try again")
	case errors.Is(err, token.ErrTokenExpired):
		h.respondError(w, r, http.StatusBadRequest, "token is expired, try again")
	case errors.Is(err, sql.ErrNoRows):
		h.respondError(w, r, http.StatusNotFound, "Resource not found")
	default:
		h.logInternalServerError(r, err)
		h.respondError(w, r, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.writeJSON(w, r, status, M{
		"success": false,
		"message": message,
	})
}

// constraintField extracts the column from a constraint name such as
// users_email_key.
func constraintField(constraint string) string {
	parts := strings.Split(constraint, "_")
	if len(parts) < 3 {
		return "field"
	}
	return strings.Join(parts[1:len(parts)-1], "_")
}
