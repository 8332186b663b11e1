package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/seekwell-dev/job-board/backend/internal/apperr"
	"github.com/seekwell-dev/job-board/backend/internal/domain"
	"github.com/seekwell-dev/job-board/backend/internal/password"
	"github.com/seekwell-dev/job-board/backend/internal/utils"
)

// sendToken issues a token for user, sets it as an HTTP-only cross-site
// cookie and echoes it in the JSON body alongside the user.
func (h *Handler) sendToken(w http.ResponseWriter, r *http.Request, status int, user *domain.User, message string) {
	ss, _, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	// SameSite=None requires Secure
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    ss,
		Expires:  time.Now().Add(time.Duration(h.config.Cookie.Expiration) * 24 * time.Hour),
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	h.writeJSON(w, r, status, M{
		"success": true,
		"user":    user,
		"message": message,
		"token":   ss,
	})
}

func (h *Handler) publishMail(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name" validate:"required,min=3,max=30"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"required"`
		Role     string `json:"role" validate:"required,oneof=job_seeker employer"`
		Password string `json:"password" validate:"required,min=8,max=32"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.fail(w, r, apperr.BadRequest(err.Error()))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, r, err)
		return
	}

	isExists, err := h.repository.CheckEmailIfExists(req.Email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if isExists {
		h.fail(w, r, apperr.BadRequest("Email already exists!"))
		return
	}

	passwordHash, err := password.Hash(req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         domain.Role(req.Role),
		PasswordHash: passwordHash,
	}

	// the unique constraint on email backstops the pre-check; a concurrent
	// duplicate surfaces as a pg unique violation through fail
	if err := h.repository.CreateUser(user); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.publishMail(domain.MailMessage{
		Type: "welcome",
		To:   user.Email,
		Data: domain.WelcomeMailData{
			Name: user.Name,
		},
	}); err != nil {
		h.fail(w, r, err)
		return
	}

	h.sendToken(w, r, http.StatusOK, user, "User registered successfully")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"required,oneof=job_seeker employer"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.fail(w, r, apperr.BadRequest(err.Error()))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, r, err)
		return
	}

	user, err := h.repository.GetUserByEmail(req.Email)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.fail(w, r, apperr.BadRequest("Invalid email or password."))
		default:
			h.fail(w, r, err)
		}
		return
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		h.fail(w, r, apperr.BadRequest("Invalid email or password."))
		return
	}

	if user.Role != domain.Role(req.Role) {
		h.fail(w, r, apperr.BadRequest("User with this role not found!"))
		return
	}

	h.sendToken(w, r, http.StatusOK, user, "User logged in successfully!")
}

// Logout overwrites the cookie with an already-expired one. Tokens are
// stateless, so a copy the client kept stays valid until its TTL elapses.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now(),
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	h.writeJSON(w, r, http.StatusCreated, M{
		"success": true,
		"message": "User logged out successfully!",
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtx).(*domain.User)
	h.writeJSON(w, r, http.StatusOK, M{
		"success": true,
		"user":    user,
	})
}

const resetMailSentMessage = "Password reset code sent if the email is registered."

func (h *Handler) RequireResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.fail(w, r, apperr.BadRequest(err.Error()))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, r, err)
		return
	}

	user, err := h.repository.GetUserByEmail(req.Email)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// same response either way so the endpoint cannot be used to
			// probe which emails are registered
			h.writeJSON(w, r, http.StatusOK, M{"success": true, "message": resetMailSentMessage})
		default:
			h.fail(w, r, err)
		}
		return
	}

	otp := utils.GenerateRandomOTP()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	if err := h.redisClient.Set(ctx, fmt.Sprintf("otp_%s_reset_password", user.Email), otp, time.Duration(h.config.OTP.Expiration)*time.Second).Err(); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.publishMail(domain.MailMessage{
		Type: "reset_password",
		To:   user.Email,
		Data: domain.ResetPasswordMailData{
			Name:       user.Name,
			OTP:        otp,
			Expiration: h.config.OTP.Expiration / 60, // shown in minutes in the mail
		},
	}); err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, M{"success": true, "message": resetMailSentMessage})
}

func (h *Handler) ConfirmResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		OTP      string `json:"otp" validate:"required"`
		Password string `json:"password" validate:"required,min=8,max=32"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.fail(w, r, apperr.BadRequest(err.Error()))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	otp, err := h.redisClient.Get(ctx, fmt.Sprintf("otp_%s_reset_password", req.Email)).Result()
	if err != nil || otp != req.OTP {
		h.fail(w, r, apperr.BadRequest("Invalid or expired reset code."))
		return
	}

	user, err := h.repository.GetUserByEmail(req.Email)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.fail(w, r, apperr.BadRequest("Invalid or expired reset code."))
		default:
			h.fail(w, r, err)
		}
		return
	}

	passwordHash, err := password.Hash(req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.repository.UpdateUserPassword(user.ID, passwordHash); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.redisClient.Del(ctx, fmt.Sprintf("otp_%s_reset_password", req.Email)).Err(); err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, M{"success": true, "message": "Password reset successfully."})
}
