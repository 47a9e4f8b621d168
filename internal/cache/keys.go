package cache

import "fmt"

// UserKey возвращает ключ кеша для проекции пользователя по его uid.
func UserKey(userUID string) string {
	return fmt.Sprintf("user:%s", userUID)
}
