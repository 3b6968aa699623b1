// Package service содержит бизнес-логику приложения (webforge).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-webforge/internal/server/config"
	"github.com/IvanChernomyrdin/go-webforge/internal/server/models"
	sharedModels "github.com/IvanChernomyrdin/go-webforge/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Items ItemsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Items *ItemsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (секрет и TTL токена).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, cfg),
		Items: NewItemsService(repos.Items),
	}
}

// UsersRepo — репозиторий пользователей (нужен для auth/signup/login).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash, name string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// ItemsRepo — репозиторий элементов (CRUD в пределах пользователя).
type ItemsRepo interface {
	List(ctx context.Context, userID int64) ([]sharedModels.Item, error)
	Get(ctx context.Context, userID, itemID int64) (sharedModels.Item, error)
	Create(ctx context.Context, userID int64, title, description, data string) (sharedModels.Item, error)
	Update(ctx context.Context, userID, itemID int64, title, description, data string) error
	Delete(ctx context.Context, userID, itemID int64) error
}
