// Package verifyresend реализует HTTP-обработчик повторной отправки
// письма верификации.
package verifyresend

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/contacts-backend/internal/http/response"
	"github.com/magabrotheeeer/contacts-backend/internal/lib/sl"
	authservice "github.com/magabrotheeeer/contacts-backend/internal/services/auth"
	"github.com/magabrotheeeer/contacts-backend/internal/storage/repository"
)

// Request — входные данные повторной отправки письма.
type Request struct {
	Email string `json:"email" validate:"required,email"`
}

// Service описывает интерфейс повторной отправки письма верификации.
type Service interface {
	RequestVerification(ctx context.Context, email string) error
}

// Handler обрабатывает HTTP-запросы повторной отправки письма.
type Handler struct {
	log      *slog.Logger
	auth     Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{
		log:      log,
		auth:     auth,
		validate: validator.New(),
	}
}

// ServeHTTP ставит письмо верификации в очередь повторно.
// Ответ об успехе не зависит от исхода доставки письма.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verifyresend"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing required field email"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing required field email"))
		return
	}

	if err := h.auth.RequestVerification(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			log.Info("resend for unknown email", slog.String("email", req.Email))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Email not found"))
		case errors.Is(err, authservice.ErrAlreadyVerified):
			log.Info("resend for verified email", slog.String("email", req.Email))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("Verification has already been passed"))
		default:
			log.Error("resend failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to resend verification email"))
		}
		return
	}

	log.Info("verification email resent", slog.String("email", req.Email))
	render.JSON(w, r, response.OK("Verification email sent"))
}
