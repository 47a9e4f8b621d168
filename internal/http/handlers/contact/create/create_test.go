package create

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/contacts-backend/internal/models"
)

// Мок сервиса с методом Create
type ContactServiceMock struct {
	mock.Mock
}

func (m *ContactServiceMock) Create(name, email, phone string) (*models.Contact, error) {
	args := m.Called(name, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	created := &models.Contact{
		ID:    "contact-1",
		Name:  "Allen Raymond",
		Email: "nulla.ante@vestibul.co.uk",
		Phone: "(992) 914-3792",
	}

	tests := []struct {
		name           string
		requestBody    string
		mockContact    *models.Contact
		mockErr        error
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "valid contact",
			requestBody:    `{"name":"Allen Raymond","email":"nulla.ante@vestibul.co.uk","phone":"(992) 914-3792"}`,
			mockContact:    created,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "missing fields",
		},
		{
			name:           "missing phone",
			requestBody:    `{"name":"Allen Raymond","email":"nulla.ante@vestibul.co.uk"}`,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "missing required phone field",
		},
		{
			name:           "name too short",
			requestBody:    `{"name":"Al","email":"nulla.ante@vestibul.co.uk","phone":"(992) 914-3792"}`,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "field name length must be at least 3 characters long",
		},
		{
			name:           "service error",
			requestBody:    `{"name":"Allen Raymond","email":"nulla.ante@vestibul.co.uk","phone":"(992) 914-3792"}`,
			mockErr:        errors.New("write error"),
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "failed to create contact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contactMock := new(ContactServiceMock)
			handler := New(newNoopLogger(), contactMock)

			if tt.mockContact != nil || tt.mockErr != nil {
				contactMock.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(tt.mockContact, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/contacts", bytes.NewReader([]byte(tt.requestBody)))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, got["message"])
				return
			}

			assert.Equal(t, created.ID, got["id"])
			assert.Equal(t, created.Name, got["name"])
			assert.Equal(t, created.Email, got["email"])
			assert.Equal(t, created.Phone, got["phone"])

			contactMock.AssertExpectations(t)
		})
	}
}
