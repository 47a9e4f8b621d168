package services_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	services "github.com/magabrotheeeer/contacts-backend/internal/services/avatar"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) UpdateAvatarURL(ctx context.Context, userUID, avatarURL string) error {
	args := m.Called(ctx, userUID, avatarURL)
	return args.Error(0)
}

// Мок для Cache
type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newTestService(t *testing.T, repo *UserRepoMock, cacheMock *CacheMock) (*services.AvatarService, string) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewAvatarService(repo, cacheMock, dir, logger), dir
}

func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAvatarService_UpdateAvatar(t *testing.T) {
	repo := new(UserRepoMock)
	cacheMock := new(CacheMock)
	svc, dir := newTestService(t, repo, cacheMock)

	repo.On("UpdateAvatarURL", mock.Anything, "user-uid-1", "public/avatars/user-uid-1_photo.png").
		Return(nil).Once()
	cacheMock.On("Invalidate", "user:user-uid-1").Return(nil).Once()

	data := makePNG(t, 640, 480)
	avatarURL, err := svc.UpdateAvatar(context.Background(), "user-uid-1", "photo.png", data)
	require.NoError(t, err)
	assert.Equal(t, "public/avatars/user-uid-1_photo.png", avatarURL)

	saved, err := imaging.Open(filepath.Join(dir, "user-uid-1_photo.png"))
	require.NoError(t, err)
	bounds := saved.Bounds()
	assert.Equal(t, 250, bounds.Dx())
	assert.Equal(t, 250, bounds.Dy())

	repo.AssertExpectations(t)
	cacheMock.AssertExpectations(t)
}

func TestAvatarService_UpdateAvatar_SmallImageIsUpscaled(t *testing.T) {
	repo := new(UserRepoMock)
	cacheMock := new(CacheMock)
	svc, dir := newTestService(t, repo, cacheMock)

	repo.On("UpdateAvatarURL", mock.Anything, "user-uid-1", mock.Anything).Return(nil).Once()
	cacheMock.On("Invalidate", "user:user-uid-1").Return(nil).Once()

	data := makePNG(t, 40, 60)
	_, err := svc.UpdateAvatar(context.Background(), "user-uid-1", "tiny.png", data)
	require.NoError(t, err)

	saved, err := imaging.Open(filepath.Join(dir, "user-uid-1_tiny.png"))
	require.NoError(t, err)
	assert.Equal(t, 250, saved.Bounds().Dx())
	assert.Equal(t, 250, saved.Bounds().Dy())
}

func TestAvatarService_UpdateAvatar_EmptyImage(t *testing.T) {
	repo := new(UserRepoMock)
	cacheMock := new(CacheMock)
	svc, _ := newTestService(t, repo, cacheMock)

	avatarURL, err := svc.UpdateAvatar(context.Background(), "user-uid-1", "photo.png", nil)
	assert.ErrorIs(t, err, services.ErrEmptyImage)
	assert.Empty(t, avatarURL)

	repo.AssertNotCalled(t, "UpdateAvatarURL")
}

func TestAvatarService_UpdateAvatar_NotAnImage(t *testing.T) {
	repo := new(UserRepoMock)
	cacheMock := new(CacheMock)
	svc, _ := newTestService(t, repo, cacheMock)

	avatarURL, err := svc.UpdateAvatar(context.Background(), "user-uid-1", "notes.txt", []byte("plain text"))
	assert.Error(t, err)
	assert.Empty(t, avatarURL)

	repo.AssertNotCalled(t, "UpdateAvatarURL")
}

func TestAvatarService_UpdateAvatar_FilenameIsSanitized(t *testing.T) {
	repo := new(UserRepoMock)
	cacheMock := new(CacheMock)
	svc, dir := newTestService(t, repo, cacheMock)

	repo.On("UpdateAvatarURL", mock.Anything, "user-uid-1", "public/avatars/user-uid-1_escape.png").
		Return(nil).Once()
	cacheMock.On("Invalidate", "user:user-uid-1").Return(nil).Once()

	data := makePNG(t, 300, 300)
	avatarURL, err := svc.UpdateAvatar(context.Background(), "user-uid-1", "../../escape.png", data)
	require.NoError(t, err)
	assert.Equal(t, "public/avatars/user-uid-1_escape.png", avatarURL)

	_, err = os.Stat(filepath.Join(dir, "user-uid-1_escape.png"))
	assert.NoError(t, err)
}
