// Package contactsbackend собирает HTTP-приложение: маршруты, middleware
// и раздачу статики с аватарами.
package contactsbackend

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/contacts-backend/internal/http/handlers/auth/current"
	"github.com/magabrotheeeer/contacts-backend/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/contacts-backend/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/contacts-backend/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/contacts-backend/internal/http/handlers/auth/verifyconfirm"
	"github.com/magabrotheeeer/contacts-backend/internal/http/handlers/auth/verifyresend"
	avatarupdate "github.com/magabrotheeeer/contacts-backend/internal/http/handlers/avatar/update"
	contactcreate "github.com/magabrotheeeer/contacts-backend/internal/http/handlers/contact/create"
	contactlist "github.com/magabrotheeeer/contacts-backend/internal/http/handlers/contact/list"
	contactread "github.com/magabrotheeeer/contacts-backend/internal/http/handlers/contact/read"
	contactremove "github.com/magabrotheeeer/contacts-backend/internal/http/handlers/contact/remove"
	contactupdate "github.com/magabrotheeeer/contacts-backend/internal/http/handlers/contact/update"
	"github.com/magabrotheeeer/contacts-backend/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/contacts-backend/internal/services/auth"
	avatarservice "github.com/magabrotheeeer/contacts-backend/internal/services/avatar"
	contactservice "github.com/magabrotheeeer/contacts-backend/internal/services/contact"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	auth *authservice.AuthService,
	avatars *avatarservice.AvatarService,
	contacts *contactservice.ContactService,
	avatarsDir string) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	// Открытые конечные точки
	r.Post("/register", register.New(logger, auth).ServeHTTP)
	r.Post("/login", login.New(logger, auth).ServeHTTP)
	r.Get("/verify/{verificationToken}", verifyconfirm.New(logger, auth).ServeHTTP)
	r.Post("/verify", verifyresend.New(logger, auth).ServeHTTP)

	// Группа с проверкой токена сессии
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.SessionMiddleware(auth, logger))
		r.Post("/logout", logout.New(logger, auth).ServeHTTP)
		r.Get("/current", current.New(logger).ServeHTTP)
		r.Patch("/avatars", avatarupdate.New(logger, avatars).ServeHTTP)

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", contactlist.New(logger, contacts).ServeHTTP)
			r.Post("/", contactcreate.New(logger, contacts).ServeHTTP)
			r.Get("/{id}", contactread.New(logger, contacts).ServeHTTP)
			r.Put("/{id}", contactupdate.New(logger, contacts).ServeHTTP)
			r.Delete("/{id}", contactremove.New(logger, contacts).ServeHTTP)
		})
	})

	// Публичная статика с аватарами
	r.Handle("/public/avatars/*",
		http.StripPrefix("/public/avatars/", http.FileServer(http.Dir(avatarsDir))))

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
