// Package services содержит логику бизнес-уровня жизненного цикла учетной
// записи: регистрация, вход и выход, верификация почты и разбор токена сессии.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/contacts-backend/internal/cache"
	"github.com/magabrotheeeer/contacts-backend/internal/lib/gravatar"
	"github.com/magabrotheeeer/contacts-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/contacts-backend/internal/lib/password"
	"github.com/magabrotheeeer/contacts-backend/internal/lib/sl"
	"github.com/magabrotheeeer/contacts-backend/internal/models"
	"github.com/magabrotheeeer/contacts-backend/internal/rabbitmq"
)

// ErrNotVerified возвращается при попытке входа до подтверждения почты.
var ErrNotVerified = errors.New("email is not verified")

// ErrInvalidCredentials возвращается, когда пароль не совпадает с хэшем.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAlreadyVerified возвращается при повторном запросе письма верификации
// для уже подтверждённой почты.
var ErrAlreadyVerified = errors.New("verification has already been passed")

// DefaultSubscription — тариф, назначаемый при регистрации без явного выбора.
const DefaultSubscription = "starter"

const userCacheTTL = time.Hour

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его uid.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// GetUser возвращает пользователя по uid.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// GetUserByEmail возвращает пользователя по почте.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByVerificationToken возвращает владельца токена верификации.
	GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error)
	// UpdateSessionToken заменяет токен сессии пользователя.
	UpdateSessionToken(ctx context.Context, userUID, token string) error
	// ClearSessionToken очищает токен сессии пользователя.
	ClearSessionToken(ctx context.Context, userUID string) error
	// ConfirmVerification помечает почту подтверждённой и очищает токен.
	ConfirmVerification(ctx context.Context, userUID string) error
}

// Cache описывает методы для кэширования проекций пользователей.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// EmailPublisher публикует письмо в очередь доставки.
type EmailPublisher interface {
	Publish(routingKey string, message any) error
}

// AuthService реализует жизненный цикл учетной записи.
type AuthService struct {
	users         UserRepository
	cache         Cache
	jwtMaker      jwt.Maker
	publisher     EmailPublisher
	publicBaseURL string
	log           *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
// publicBaseURL используется для формирования ссылок верификации в письмах.
func NewAuthService(users UserRepository, cacheStore Cache, jwtMaker jwt.Maker,
	publisher EmailPublisher, publicBaseURL string, log *slog.Logger) *AuthService {
	return &AuthService{
		users:         users,
		cache:         cacheStore,
		jwtMaker:      jwtMaker,
		publisher:     publisher,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		log:           log,
	}
}

// LoginResult — результат успешного входа.
type LoginResult struct {
	Token string
	User  *models.User
}

// Register создает нового пользователя: хэширует пароль, выпускает токен
// верификации, назначает детерминированный аватар-заглушку и ставит письмо
// верификации в очередь. Ошибка доставки письма регистрацию не ломает.
func (s *AuthService) Register(ctx context.Context, email, rawPassword, subscription string) (*models.PublicUser, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if subscription == "" {
		subscription = DefaultSubscription
	}
	verificationToken := uuid.NewString()

	user := models.User{
		Email:             email,
		PasswordHash:      hashed,
		Subscription:      subscription,
		Verify:            false,
		VerificationToken: &verificationToken,
		AvatarURL:         gravatar.URL(email),
	}
	if _, err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.dispatchVerificationEmail(email, verificationToken)

	return &models.PublicUser{Email: email, Subscription: subscription}, nil
}

// Login проверяет учетные данные пользователя и выпускает новый токен сессии.
// Новый токен заменяет предыдущий в хранилище (одна активная сессия),
// но ранее выпущенный токен остаётся криптографически валидным до истечения —
// см. ResolveToken.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.Verify {
		return nil, ErrNotVerified
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.UID, user.Subscription)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateSessionToken(ctx, user.UID, token); err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(cache.UserKey(user.UID)); err != nil {
		s.log.Warn("failed to invalidate user cache", slog.String("uid", user.UID), sl.Err(err))
	}

	return &LoginResult{Token: token, User: user}, nil
}

// Logout очищает токен сессии пользователя. Повторный выход не является ошибкой.
func (s *AuthService) Logout(ctx context.Context, userUID string) error {
	if err := s.users.ClearSessionToken(ctx, userUID); err != nil {
		return err
	}
	if err := s.cache.Invalidate(cache.UserKey(userUID)); err != nil {
		s.log.Warn("failed to invalidate user cache", slog.String("uid", userUID), sl.Err(err))
	}
	return nil
}

// ResolveToken разбирает токен сессии и возвращает его владельца.
//
// Токен проверяется только по подписи и сроку действия: значение
// session_token в хранилище не сверяется. Токен, вытесненный более поздним
// входом или logout, остаётся валидным до истечения своего срока.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return s.getUserCached(ctx, claims.UserUID)
}

// RequestVerification повторно отправляет письмо верификации.
// Используется уже назначенный токен верификации, новый не выпускается.
func (s *AuthService) RequestVerification(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.Verify || user.VerificationToken == nil {
		return ErrAlreadyVerified
	}

	s.dispatchVerificationEmail(user.Email, *user.VerificationToken)
	return nil
}

// ConfirmVerification подтверждает почту по токену верификации.
// После подтверждения токен очищается, поэтому повторное подтверждение
// тем же токеном завершается ошибкой "пользователь не найден".
func (s *AuthService) ConfirmVerification(ctx context.Context, token string) error {
	user, err := s.users.GetUserByVerificationToken(ctx, token)
	if err != nil {
		return err
	}
	if err := s.users.ConfirmVerification(ctx, user.UID); err != nil {
		return err
	}
	if err := s.cache.Invalidate(cache.UserKey(user.UID)); err != nil {
		s.log.Warn("failed to invalidate user cache", slog.String("uid", user.UID), sl.Err(err))
	}
	return nil
}

func (s *AuthService) getUserCached(ctx context.Context, userUID string) (*models.User, error) {
	key := cache.UserKey(userUID)

	var cached models.User
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.log.Warn("failed to read user cache", slog.String("uid", userUID), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(key, user, userCacheTTL); err != nil {
		s.log.Warn("failed to cache user", slog.String("uid", userUID), sl.Err(err))
	}
	return user, nil
}

// dispatchVerificationEmail ставит письмо верификации в очередь доставки.
// Ошибка публикации только логируется и не влияет на исход операции.
func (s *AuthService) dispatchVerificationEmail(email, token string) {
	msg := models.EmailMessage{
		To:      email,
		Subject: "Verification email",
		HTML:    fmt.Sprintf(`<a href="%s/verify/%s" target="_blank">Click to verify</a>`, s.publicBaseURL, token),
	}
	if err := s.publisher.Publish(rabbitmq.VerificationRoutingKey, msg); err != nil {
		s.log.Error("failed to dispatch verification email",
			slog.String("email", email), sl.Err(err))
		return
	}
	s.log.Info("verification email dispatched", slog.String("email", email))
}
