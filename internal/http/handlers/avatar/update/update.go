// Package update реализует HTTP-обработчик загрузки аватара.
//
// Изображение принимается из multipart-поля "avatar", сохраняется в
// публичный каталог, нормализуется до 250x250 и становится текущим
// аватаром пользователя.
package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/contacts-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contacts-backend/internal/http/response"
	"github.com/magabrotheeeer/contacts-backend/internal/lib/sl"
	avatarservice "github.com/magabrotheeeer/contacts-backend/internal/services/avatar"
)

const maxUploadSize = 10 << 20 // 10 MiB

// Service описывает интерфейс обновления аватара.
type Service interface {
	UpdateAvatar(ctx context.Context, userUID, filename string, data []byte) (string, error)
}

// Handler обрабатывает HTTP-запросы обновления аватара.
type Handler struct {
	log     *slog.Logger
	avatars Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, avatars Service) *Handler {
	return &Handler{log: log, avatars: avatars}
}

// ServeHTTP принимает изображение и возвращает ссылку на новый аватар.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.avatar.update"

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

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("avatar")
	if err != nil {
		log.Info("avatar field missing", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(`Please add avatar image to field "avatar"`))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("failed to read uploaded file", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(`Please add avatar image to field "avatar"`))
		return
	}

	avatarURL, err := h.avatars.UpdateAvatar(r.Context(), user.UID, header.Filename, data)
	if err != nil {
		if errors.Is(err, avatarservice.ErrEmptyImage) {
			log.Info("empty avatar payload")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(`Please add avatar image to field "avatar"`))
			return
		}
		log.Error("avatar update failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update avatar"))
		return
	}

	log.Info("avatar updated", slog.String("uid", user.UID))
	render.JSON(w, r, map[string]any{
		"avatarURL": avatarURL,
	})
}
