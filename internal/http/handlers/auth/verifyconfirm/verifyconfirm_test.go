package verifyconfirm

import (
	"context"
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

	"github.com/magabrotheeeer/contacts-backend/internal/storage/repository"
)

// Мок сервиса с методом ConfirmVerification
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) ConfirmVerification(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestVerifyConfirmHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		mockErr        error
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "successful confirmation",
			token:          "verification-token",
			wantStatusCode: http.StatusOK,
			wantMessage:    "Verification successful",
		},
		{
			name:           "unknown or already used token",
			token:          "used-token",
			mockErr:        repository.ErrUserNotFound,
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "User not found",
		},
		{
			name:           "service error",
			token:          "verification-token",
			mockErr:        errors.New("db error"),
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "failed to verify email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			handler := New(newNoopLogger(), authMock)

			authMock.On("ConfirmVerification", mock.Anything, tt.token).Return(tt.mockErr).Once()

			router := chi.NewRouter()
			router.Get("/verify/{verificationToken}", handler.ServeHTTP)

			req := httptest.NewRequest(http.MethodGet, "/verify/"+tt.token, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantMessage, got["message"])

			authMock.AssertExpectations(t)
		})
	}
}
