// Package current реализует HTTP-обработчик получения текущего пользователя.
package current

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/contacts-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contacts-backend/internal/http/response"
)

// Handler обрабатывает HTTP-запросы текущего пользователя.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP возвращает почту и тариф владельца токена сессии.
// Пользователь уже загружен SessionMiddleware.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.current"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("no user in request context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("Not authorized"))
		return
	}

	render.JSON(w, r, user.Public())
}
