package services_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/contacts-backend/internal/models"
	services "github.com/magabrotheeeer/contacts-backend/internal/services/contact"
)

// Мок для ContactStore
type ContactStoreMock struct {
	mock.Mock
}

func (m *ContactStoreMock) List() ([]models.Contact, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *ContactStoreMock) GetByID(id string) (*models.Contact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *ContactStoreMock) Add(name, email, phone string) (*models.Contact, error) {
	args := m.Called(name, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *ContactStoreMock) Update(id string, update models.Contact) (*models.Contact, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *ContactStoreMock) Remove(id string) (*models.Contact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func newTestService(store *ContactStoreMock) *services.ContactService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewContactService(store, logger)
}

func TestContactService_Get(t *testing.T) {
	existing := &models.Contact{ID: "contact-1", Name: "Allen Raymond"}

	tests := []struct {
		name       string
		id         string
		setupMocks func(s *ContactStoreMock)
		want       *models.Contact
		wantErr    error
	}{
		{
			name: "existing contact",
			id:   "contact-1",
			setupMocks: func(s *ContactStoreMock) {
				s.On("GetByID", "contact-1").Return(existing, nil).Once()
			},
			want: existing,
		},
		{
			name: "missing contact",
			id:   "no-such-id",
			setupMocks: func(s *ContactStoreMock) {
				s.On("GetByID", "no-such-id").Return(nil, nil).Once()
			},
			wantErr: services.ErrContactNotFound,
		},
		{
			name: "store error",
			id:   "contact-1",
			setupMocks: func(s *ContactStoreMock) {
				s.On("GetByID", "contact-1").Return(nil, errors.New("read error")).Once()
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(ContactStoreMock)
			svc := newTestService(store)
			tt.setupMocks(store)

			got, err := svc.Get(tt.id)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.want != nil:
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			default:
				assert.Error(t, err)
			}

			store.AssertExpectations(t)
		})
	}
}

func TestContactService_Update_NotFound(t *testing.T) {
	store := new(ContactStoreMock)
	svc := newTestService(store)

	store.On("Update", "no-such-id", mock.Anything).Return(nil, nil).Once()

	got, err := svc.Update("no-such-id", models.Contact{Name: "Nobody"})
	assert.ErrorIs(t, err, services.ErrContactNotFound)
	assert.Nil(t, got)
}

func TestContactService_Remove_NotFound(t *testing.T) {
	store := new(ContactStoreMock)
	svc := newTestService(store)

	store.On("Remove", "no-such-id").Return(nil, nil).Once()

	got, err := svc.Remove("no-such-id")
	assert.ErrorIs(t, err, services.ErrContactNotFound)
	assert.Nil(t, got)
}

func TestContactService_Create(t *testing.T) {
	store := new(ContactStoreMock)
	svc := newTestService(store)

	created := &models.Contact{ID: "contact-1", Name: "Allen Raymond", Email: "nulla.ante@vestibul.co.uk", Phone: "(992) 914-3792"}
	store.On("Add", "Allen Raymond", "nulla.ante@vestibul.co.uk", "(992) 914-3792").Return(created, nil).Once()

	got, err := svc.Create("Allen Raymond", "nulla.ante@vestibul.co.uk", "(992) 914-3792")
	assert.NoError(t, err)
	assert.Equal(t, created, got)

	store.AssertExpectations(t)
}
