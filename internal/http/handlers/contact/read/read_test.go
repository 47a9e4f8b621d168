package read

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/contacts-backend/internal/models"
	contactservice "github.com/magabrotheeeer/contacts-backend/internal/services/contact"
)

// Мок сервиса с методом Get
type ContactServiceMock struct {
	mock.Mock
}

func (m *ContactServiceMock) Get(id string) (*models.Contact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestReadHandler_ServeHTTP(t *testing.T) {
	existing := &models.Contact{
		ID:    "contact-1",
		Name:  "Allen Raymond",
		Email: "nulla.ante@vestibul.co.uk",
		Phone: "(992) 914-3792",
	}

	tests := []struct {
		name           string
		id             string
		mockContact    *models.Contact
		mockErr        error
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "existing contact",
			id:             "contact-1",
			mockContact:    existing,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing contact",
			id:             "no-such-id",
			mockErr:        contactservice.ErrContactNotFound,
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "Not found",
		},
		{
			name:           "service error",
			id:             "contact-1",
			mockErr:        errors.New("read error"),
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "failed to read contact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contactMock := new(ContactServiceMock)
			handler := New(newNoopLogger(), contactMock)

			contactMock.On("Get", tt.id).Return(tt.mockContact, tt.mockErr).Once()

			router := chi.NewRouter()
			router.Get("/contacts/{id}", handler.ServeHTTP)

			req := httptest.NewRequest(http.MethodGet, "/contacts/"+tt.id, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, got["message"])
				return
			}

			assert.Equal(t, existing.ID, got["id"])
			assert.Equal(t, existing.Name, got["name"])

			contactMock.AssertExpectations(t)
		})
	}
}
