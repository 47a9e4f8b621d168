// Package verifyconfirm реализует HTTP-обработчик подтверждения почты
// по токену верификации из письма.
package verifyconfirm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/contacts-backend/internal/http/response"
	"github.com/magabrotheeeer/contacts-backend/internal/lib/sl"
	"github.com/magabrotheeeer/contacts-backend/internal/storage/repository"
)

// Service описывает интерфейс подтверждения почты.
type Service interface {
	ConfirmVerification(ctx context.Context, token string) error
}

// Handler обрабатывает HTTP-запросы подтверждения почты.
type Handler struct {
	log  *slog.Logger
	auth Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{log: log, auth: auth}
}

// ServeHTTP подтверждает почту по токену из пути запроса.
// Токен одноразовый: после подтверждения он очищается, и повторный
// запрос с тем же токеном получает 404.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verifyconfirm"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := chi.URLParam(r, "verificationToken")

	if err := h.auth.ConfirmVerification(r.Context(), token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Info("verification token not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("User not found"))
			return
		}
		log.Error("verification failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to verify email"))
		return
	}

	log.Info("email verified")
	render.JSON(w, r, response.OK("Verification successful"))
}
