// Package read реализует HTTP-обработчик получения контакта по id.
package read

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/contacts-backend/internal/http/response"
	"github.com/magabrotheeeer/contacts-backend/internal/lib/sl"
	"github.com/magabrotheeeer/contacts-backend/internal/models"
	contactservice "github.com/magabrotheeeer/contacts-backend/internal/services/contact"
)

// Service описывает интерфейс получения контакта.
type Service interface {
	Get(id string) (*models.Contact, error)
}

// Handler обрабатывает HTTP-запросы чтения контакта.
type Handler struct {
	log      *slog.Logger
	contacts Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, contacts Service) *Handler {
	return &Handler{log: log, contacts: contacts}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	contact, err := h.contacts.Get(id)
	if err != nil {
		if errors.Is(err, contactservice.ErrContactNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Not found"))
			return
		}
		log.Error("failed to read contact", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read contact"))
		return
	}

	render.JSON(w, r, contact)
}
