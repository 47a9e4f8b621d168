package models

// Contact представляет запись телефонной книги пользователя.
// Контакты хранятся в отдельном JSON-файле, см. storage/contactsfile.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
