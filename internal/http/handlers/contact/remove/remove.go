// Package remove реализует HTTP-обработчик удаления контакта.
package remove

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

// Service описывает интерфейс удаления контакта.
type Service interface {
	Remove(id string) (*models.Contact, error)
}

// Handler обрабатывает HTTP-запросы удаления контакта.
type Handler struct {
	log      *slog.Logger
	contacts Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, contacts Service) *Handler {
	return &Handler{log: log, contacts: contacts}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if _, err := h.contacts.Remove(id); err != nil {
		if errors.Is(err, contactservice.ErrContactNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Not found"))
			return
		}
		log.Error("failed to remove contact", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to remove contact"))
		return
	}

	log.Info("contact removed", slog.String("id", id))
	render.JSON(w, r, response.OK("contact deleted"))
}
