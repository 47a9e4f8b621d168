// Package update реализует HTTP-обработчик изменения контакта.
package update

import (
	"encoding/json"
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

// Request — изменяемые поля контакта; пустые поля не трогаются.
type Request struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Service описывает интерфейс изменения контакта.
type Service interface {
	Update(id string, update models.Contact) (*models.Contact, error)
}

// Handler обрабатывает HTTP-запросы изменения контакта.
type Handler struct {
	log      *slog.Logger
	contacts Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, contacts Service) *Handler {
	return &Handler{log: log, contacts: contacts}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing fields"))
		return
	}
	if req.Name == "" && req.Email == "" && req.Phone == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing fields"))
		return
	}

	contact, err := h.contacts.Update(id, models.Contact{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		if errors.Is(err, contactservice.ErrContactNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Not found"))
			return
		}
		log.Error("failed to update contact", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update contact"))
		return
	}

	log.Info("contact updated", slog.String("id", id))
	render.JSON(w, r, contact)
}
