package service

import (
	"context"
	"errors"
	"strings"

	"github.com/IvanChernomyrdin/go-webforge/internal/server/config"
	"github.com/IvanChernomyrdin/go-webforge/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-webforge/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-webforge/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (signup)
//   - аутентификация (login)
//   - выпуск bearer-токенов
//
// Revocation и refresh токенов нет: токен живёт свой TTL и умирает сам.
type AuthService struct {
	users UsersRepo
	token crypto.TokenConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		token: crypto.TokenConfig{
			Secret: cfg.Auth.TokenSecret,
			TTL:    cfg.Auth.TokenTTL,
		},
	}
}

// Signup регистрирует нового пользователя и сразу выдаёт токен.
//
// Валидация:
//   - email обязателен
//   - пароль обязателен и длиной >= 8 символов
//
// Имя опционально (по умолчанию пустая строка). Пароль сохраняется
// как SHA-256 дайджест без соли (зафиксированная небезопасная схема).
//
// Возвращает:
//   - созданного пользователя и токен
//   - ErrInvalidInput при некорректных данных
//   - ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (models.User, string, error) {
	email = strings.TrimSpace(email)

	if email == "" || len(password) < 8 {
		return models.User{}, "", serr.ErrInvalidInput
	}

	user, err := s.users.Create(ctx, email, crypto.Digest(password), name)
	if err != nil {
		return models.User{}, "", err
	}

	token, err := crypto.Issue(crypto.Identity{ID: user.ID, Email: user.Email}, s.token)
	if err != nil {
		return models.User{}, "", serr.ErrInternal
	}

	return user, token, nil
}

// Login аутентифицирует пользователя и выдаёт свежий токен.
//
// Поведение:
//   - не раскрывает факт существования email (один и тот же ответ
//     для неизвестного email и неверного пароля)
//   - сравнение паролей — точное равенство дайджестов
//
// Ошибки:
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	email = strings.TrimSpace(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, "", serr.ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if crypto.Digest(password) != user.PasswordHash {
		return models.User{}, "", serr.ErrInvalidCredentials
	}

	token, err := crypto.Issue(crypto.Identity{ID: user.ID, Email: user.Email}, s.token)
	if err != nil {
		return models.User{}, "", serr.ErrInternal
	}

	return user, token, nil
}
