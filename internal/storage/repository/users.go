package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/contacts-backend/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает его uid.
// Уникальность почты обеспечивается ограничением в базе: при одновременной
// регистрации одной и той же почты ровно одна вставка проходит, вторая
// получает ErrUserExists.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (email, password_hash, subscription, verify,
			      verification_token, avatar_url)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Subscription, user.Verify,
		user.VerificationToken, user.AvatarURL).Scan(&newUID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetUserByEmail возвращает пользователя по его почте.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	return s.getUserWhere(ctx, op, "email = $1", email)
}

// GetUser возвращает пользователя по его uid.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	return s.getUserWhere(ctx, op, "uid = $1", userUID)
}

// GetUserByVerificationToken возвращает пользователя, которому принадлежит
// указанный токен верификации. После подтверждения токен очищается,
// поэтому повторный поиск по тому же токену возвращает ErrUserNotFound.
func (s *Storage) GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	const op = "storage.GetUserByVerificationToken"
	return s.getUserWhere(ctx, op, "verification_token = $1", token)
}

func (s *Storage) getUserWhere(ctx context.Context, op, where string, arg any) (*models.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, password_hash, subscription, session_token,
			      verify, verification_token, avatar_url
			  FROM users
			  WHERE ` + where
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, arg)

	var sessionToken, verificationToken sql.NullString
	if err := row.Scan(&u.UID, &u.Email, &u.PasswordHash, &u.Subscription,
		&sessionToken, &u.Verify, &verificationToken, &u.AvatarURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if sessionToken.Valid {
		u.SessionToken = &sessionToken.String
	}
	if verificationToken.Valid {
		u.VerificationToken = &verificationToken.String
	}
	return u, nil
}

// UpdateSessionToken сохраняет новый токен сессии пользователя,
// заменяя предыдущий (режим одной активной сессии).
func (s *Storage) UpdateSessionToken(ctx context.Context, userUID, token string) error {
	const op = "storage.UpdateSessionToken"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET session_token = $1
			  WHERE uid = $2`
	_, err := s.DB.ExecContext(ctx, query, token, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ClearSessionToken очищает токен сессии пользователя. Повторный вызов
// для уже разлогиненного пользователя не является ошибкой.
func (s *Storage) ClearSessionToken(ctx context.Context, userUID string) error {
	const op = "storage.ClearSessionToken"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET session_token = NULL
			  WHERE uid = $1`
	_, err := s.DB.ExecContext(ctx, query, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ConfirmVerification помечает почту подтверждённой и очищает токен верификации.
func (s *Storage) ConfirmVerification(ctx context.Context, userUID string) error {
	const op = "storage.ConfirmVerification"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET verify = true,
			      verification_token = NULL
			  WHERE uid = $1`
	_, err := s.DB.ExecContext(ctx, query, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateAvatarURL сохраняет новую ссылку на аватар пользователя.
func (s *Storage) UpdateAvatarURL(ctx context.Context, userUID, avatarURL string) error {
	const op = "storage.UpdateAvatarURL"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET avatar_url = $1
			  WHERE uid = $2`
	_, err := s.DB.ExecContext(ctx, query, avatarURL, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
