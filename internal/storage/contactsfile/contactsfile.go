// Package contactsfile реализует хранилище контактов в одном JSON-файле.
// Файл перезаписывается целиком при каждой мутации: гарантируется только
// last-write-wins, транзакционности нет. Доступ из разных горутин
// сериализуется мьютексом.
package contactsfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/contacts-backend/internal/models"
)

// Store хранилище контактов в плоском JSON-файле.
type Store struct {
	path string
	mu   sync.Mutex
}

// New создает хранилище контактов. Если файла нет, он будет создан
// с пустым списком при первой записи.
func New(path string) *Store {
	return &Store{path: path}
}

// List возвращает все контакты.
func (s *Store) List() ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

// GetByID возвращает контакт по id или nil, если контакта нет.
func (s *Store) GetByID(id string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i], nil
		}
	}
	return nil, nil
}

// Add добавляет контакт, назначая ему новый uuid, и возвращает его.
func (s *Store) Add(name, email, phone string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.readAll()
	if err != nil {
		return nil, err
	}
	newContact := models.Contact{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
	contacts = append(contacts, newContact)
	if err := s.writeAll(contacts); err != nil {
		return nil, err
	}
	return &newContact, nil
}

// Update заменяет поля контакта с указанным id и возвращает обновлённый
// контакт, либо nil, если контакта нет.
func (s *Store) Update(id string, update models.Contact) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID != id {
			continue
		}
		if update.Name != "" {
			contacts[i].Name = update.Name
		}
		if update.Email != "" {
			contacts[i].Email = update.Email
		}
		if update.Phone != "" {
			contacts[i].Phone = update.Phone
		}
		if err := s.writeAll(contacts); err != nil {
			return nil, err
		}
		updated := contacts[i]
		return &updated, nil
	}
	return nil, nil
}

// Remove удаляет контакт по id и возвращает удалённый контакт,
// либо nil, если контакта нет.
func (s *Store) Remove(id string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID != id {
			continue
		}
		removed := contacts[i]
		contacts = append(contacts[:i], contacts[i+1:]...)
		if err := s.writeAll(contacts); err != nil {
			return nil, err
		}
		return &removed, nil
	}
	return nil, nil
}

func (s *Store) readAll() ([]models.Contact, error) {
	const op = "contactsfile.readAll"
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Contact{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var contacts []models.Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return contacts, nil
}

func (s *Store) writeAll(contacts []models.Contact) error {
	const op = "contactsfile.writeAll"
	data, err := json.MarshalIndent(contacts, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
