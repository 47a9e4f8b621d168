package current

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/contacts-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contacts-backend/internal/models"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCurrentHandler_ServeHTTP(t *testing.T) {
	handler := New(newNoopLogger())

	t.Run("returns public projection", func(t *testing.T) {
		user := &models.User{
			UID:          "user-uid-1",
			Email:        "user1@example.com",
			PasswordHash: "$2a$10$secret",
			Subscription: "pro",
			Verify:       true,
		}

		req := httptest.NewRequest(http.MethodGet, "/current", nil)
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserKey, user))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		var got map[string]any
		assert.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, "user1@example.com", got["email"])
		assert.Equal(t, "pro", got["subscription"])
		assert.NotContains(t, body, "secret")
	})

	t.Run("no user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/current", nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var got map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Not authorized", got["message"])
	})
}
