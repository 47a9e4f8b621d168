// Package jwt реализует выпуск и разбор токенов сессии.
//
// Токен сессии — подписанный JWT (HS256) с идентификатором пользователя,
// временем выпуска и фиксированным сроком жизни. Токен проверяется только
// по подписи и сроку, без обращения к хранилищу.
package jwt

import (
	"time"
)

// Maker описывает интерфейс выпуска и разбора токенов сессии.
type Maker interface {
	// GenerateToken выпускает токен сессии для пользователя с указанным uid.
	GenerateToken(userUID, subscription string) (string, error)
	// ParseToken проверяет подпись и срок токена и возвращает его claims.
	ParseToken(tokenStr string) (*SessionClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
//
// Секрет задаётся один раз при старте процесса и далее не меняется.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
