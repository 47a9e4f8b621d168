// Package models содержит доменную модель пользователя системы,
// включающую учётные данные, состояние верификации почты и ссылку на аватар.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID               string  // Уникальный идентификатор пользователя
	Email             string  // Электронная почта (уникальная)
	PasswordHash      string  // Хэш пароля пользователя
	Subscription      string  // Тариф: starter, pro или business
	SessionToken      *string // Текущий токен сессии, nil если сессии нет
	Verify            bool    // Подтверждена ли почта
	VerificationToken *string // Токен подтверждения почты, nil после верификации
	AvatarURL         string  // Ссылка на текущий аватар
}

// PublicUser — публичная проекция пользователя, возвращаемая наружу.
// Хэш пароля и токены наружу не отдаются.
type PublicUser struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
}

// Public возвращает публичную проекцию пользователя.
func (u *User) Public() PublicUser {
	return PublicUser{
		Email:        u.Email,
		Subscription: u.Subscription,
	}
}
