// Package create реализует HTTP-обработчик добавления контакта.
package create

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/contacts-backend/internal/http/response"
	"github.com/magabrotheeeer/contacts-backend/internal/lib/sl"
	"github.com/magabrotheeeer/contacts-backend/internal/models"
)

// Request — входные данные нового контакта.
type Request struct {
	Name  string `json:"name" validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// Service описывает интерфейс добавления контакта.
type Service interface {
	Create(name, email, phone string) (*models.Contact, error)
}

// Handler обрабатывает HTTP-запросы добавления контакта.
type Handler struct {
	log      *slog.Logger
	contacts Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, contacts Service) *Handler {
	return &Handler{
		log:      log,
		contacts: contacts,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing fields"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	contact, err := h.contacts.Create(req.Name, req.Email, req.Phone)
	if err != nil {
		log.Error("failed to create contact", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create contact"))
		return
	}

	log.Info("contact created", slog.String("id", contact.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, contact)
}
