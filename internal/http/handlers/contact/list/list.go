// Package list реализует HTTP-обработчик получения всех контактов.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/contacts-backend/internal/http/response"
	"github.com/magabrotheeeer/contacts-backend/internal/lib/sl"
	"github.com/magabrotheeeer/contacts-backend/internal/models"
)

// Service описывает интерфейс получения списка контактов.
type Service interface {
	List() ([]models.Contact, error)
}

// Handler обрабатывает HTTP-запросы списка контактов.
type Handler struct {
	log      *slog.Logger
	contacts Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, contacts Service) *Handler {
	return &Handler{log: log, contacts: contacts}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	contacts, err := h.contacts.List()
	if err != nil {
		log.Error("failed to list contacts", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list contacts"))
		return
	}

	render.JSON(w, r, contacts)
}
