// Package services содержит бизнес-логику телефонной книги поверх
// файлового хранилища контактов.
package services

import (
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/contacts-backend/internal/models"
)

// ErrContactNotFound возвращается, когда контакт с указанным id отсутствует.
var ErrContactNotFound = errors.New("contact not found")

// ContactStore описывает контракт файлового хранилища контактов.
type ContactStore interface {
	List() ([]models.Contact, error)
	GetByID(id string) (*models.Contact, error)
	Add(name, email, phone string) (*models.Contact, error)
	Update(id string, update models.Contact) (*models.Contact, error)
	Remove(id string) (*models.Contact, error)
}

// ContactService реализует операции телефонной книги.
type ContactService struct {
	store ContactStore
	log   *slog.Logger
}

// NewContactService создает новый экземпляр ContactService.
func NewContactService(store ContactStore, log *slog.Logger) *ContactService {
	return &ContactService{store: store, log: log}
}

// List возвращает все контакты.
func (s *ContactService) List() ([]models.Contact, error) {
	return s.store.List()
}

// Get возвращает контакт по id.
func (s *ContactService) Get(id string) (*models.Contact, error) {
	contact, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// Create добавляет новый контакт.
func (s *ContactService) Create(name, email, phone string) (*models.Contact, error) {
	contact, err := s.store.Add(name, email, phone)
	if err != nil {
		return nil, err
	}
	s.log.Info("contact created", slog.String("id", contact.ID))
	return contact, nil
}

// Update обновляет поля контакта по id.
func (s *ContactService) Update(id string, update models.Contact) (*models.Contact, error) {
	contact, err := s.store.Update(id, update)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	s.log.Info("contact updated", slog.String("id", id))
	return contact, nil
}

// Remove удаляет контакт по id.
func (s *ContactService) Remove(id string) (*models.Contact, error) {
	contact, err := s.store.Remove(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	s.log.Info("contact removed", slog.String("id", id))
	return contact, nil
}
