// Package services содержит логику приёма аватаров: сохранение загруженного
// изображения в публичный каталог, приведение к фиксированному размеру
// и обновление ссылки на аватар в учётной записи.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/magabrotheeeer/contacts-backend/internal/cache"
	"github.com/magabrotheeeer/contacts-backend/internal/lib/sl"
)

// ErrEmptyImage возвращается, когда изображение не передано.
var ErrEmptyImage = errors.New("empty avatar image")

// avatarSize — сторона квадрата, к которой приводится каждый аватар.
const avatarSize = 250

// UserRepository описывает обновление ссылки на аватар в хранилище.
type UserRepository interface {
	UpdateAvatarURL(ctx context.Context, userUID, avatarURL string) error
}

// Cache описывает инвалидацию кэша проекций пользователей.
type Cache interface {
	Invalidate(key string) error
}

// AvatarService сохраняет и нормализует аватары пользователей.
type AvatarService struct {
	users      UserRepository
	cache      Cache
	avatarsDir string
	log        *slog.Logger
}

// NewAvatarService создает новый экземпляр AvatarService.
// avatarsDir — каталог публичной статики, из которого раздаются аватары.
func NewAvatarService(users UserRepository, cacheStore Cache, avatarsDir string, log *slog.Logger) *AvatarService {
	return &AvatarService{
		users:      users,
		cache:      cacheStore,
		avatarsDir: avatarsDir,
		log:        log,
	}
}

// UpdateAvatar сохраняет изображение в каталог аватаров, приводит его к
// размеру 250x250 и обновляет ссылку на аватар пользователя.
//
// Нормализация выполняется на месте уже после записи файла по конечному
// пути: параллельный читатель может на короткое время увидеть исходное
// изображение. Ошибка нормализации фатальна для всего запроса.
func (s *AvatarService) UpdateAvatar(ctx context.Context, userUID, filename string, data []byte) (string, error) {
	const op = "services.avatar.UpdateAvatar"

	if len(data) == 0 {
		return "", ErrEmptyImage
	}

	name := userUID + "_" + filepath.Base(filename)
	dst := filepath.Join(s.avatarsDir, name)

	if err := os.MkdirAll(s.avatarsDir, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	img, err := imaging.Open(dst)
	if err != nil {
		return "", fmt.Errorf("%s: decode image: %w", op, err)
	}
	resized := imaging.Resize(img, avatarSize, avatarSize, imaging.Lanczos)
	if err := imaging.Save(resized, dst); err != nil {
		return "", fmt.Errorf("%s: save resized image: %w", op, err)
	}

	avatarURL := path.Join("public", "avatars", name)
	if err := s.users.UpdateAvatarURL(ctx, userUID, avatarURL); err != nil {
		return "", err
	}
	if err := s.cache.Invalidate(cache.UserKey(userUID)); err != nil {
		s.log.Warn("failed to invalidate user cache", slog.String("uid", userUID), sl.Err(err))
	}

	s.log.Info("avatar updated", slog.String("uid", userUID), slog.String("avatar_url", avatarURL))
	return avatarURL, nil
}
