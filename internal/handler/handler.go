package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/seekwell-dev/job-board/backend/internal/config"
	"github.com/seekwell-dev/job-board/backend/internal/repository"
	"github.com/seekwell-dev/job-board/backend/internal/token"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	tokens      *token.Service
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		tokens:      token.NewService(cfg.JWT.Secret, time.Duration(cfg.JWT.Expiration)*time.Second),
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/user", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(h.auth).Get("/logout", h.Logout)
		r.With(h.auth).Get("/getuser", h.GetUser)
		r.Route("/password", func(r chi.Router) {
			r.Post("/forgot", h.RequireResetPassword)
			r.Post("/reset", h.ConfirmResetPassword)
		})
	})

	h.Mux.Route("/job", func(r chi.Router) {
		r.Get("/getall", h.GetAllJobs)

		// everything below requires a logged-in user
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/get/{id}", h.GetSingleJob)

			// job seekers are shut out of posting and managing jobs
			r.Group(func(r chi.Router) {
				r.Use(h.preventJobSeeker)
				r.Post("/post", h.PostJob)
				r.Get("/getmyJobs", h.GetMyJobs)
				r.Put("/update/{id}", h.UpdateJob)
				r.Delete("/delete/{id}", h.DeleteJob)
			})
		})
	})
}
