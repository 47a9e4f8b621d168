// Package gravatar строит детерминированную ссылку на аватар-заглушку по
// адресу почты. Заглушка назначается при регистрации, пока пользователь
// не загрузил собственный аватар.
package gravatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar"

// URL возвращает ссылку на gravatar для указанной почты: 250x250,
// рейтинг "x", генерируемая картинка "retro" для адресов без аккаунта.
// Для одной и той же почты ссылка всегда одинаковая.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s/%x?s=250&r=x&d=retro", baseURL, hash)
}
