package service

import (
	"context"
	"encoding/json"

	sharedModels "github.com/IvanChernomyrdin/go-webforge/internal/shared/models"
)

// ItemsService реализует бизнес-логику работы с элементами пользователя.
// Сервис:
//   - подставляет дефолты (description "", data {});
//   - сериализует payload для хранения текстом;
//   - не знает о HTTP и БД напрямую.
//
// Title намеренно не валидируется на этом уровне — контракт вызывающей
// стороны.
type ItemsService struct {
	repo ItemsRepo
}

// NewItemsService создаёт новый ItemsService.
func NewItemsService(repo ItemsRepo) *ItemsService {
	return &ItemsService{repo: repo}
}

// List возвращает все элементы пользователя, новые первыми.
func (s *ItemsService) List(ctx context.Context, userID int64) ([]sharedModels.Item, error) {
	return s.repo.List(ctx, userID)
}

// Get возвращает один элемент пользователя по id.
//
// Ошибки:
//   - ErrNotFound — элемента нет или он принадлежит другому пользователю
func (s *ItemsService) Get(ctx context.Context, userID, itemID int64) (sharedModels.Item, error) {
	return s.repo.Get(ctx, userID, itemID)
}

// Create создаёт новый элемент пользователя.
//
// Дефолты: description — пустая строка, data — пустой объект {}.
func (s *ItemsService) Create(ctx context.Context, userID int64, req sharedModels.ItemRequest) (sharedModels.Item, error) {
	return s.repo.Create(ctx, userID, req.Title, req.Description, serializeData(req.Data))
}

// Update безусловно обновляет элемент пользователя.
//
// Нулевое число совпавших строк не считается ошибкой (см. repository).
func (s *ItemsService) Update(ctx context.Context, userID, itemID int64, req sharedModels.ItemRequest) error {
	return s.repo.Update(ctx, userID, itemID, req.Title, req.Description, serializeData(req.Data))
}

// Delete удаляет элемент пользователя.
func (s *ItemsService) Delete(ctx context.Context, userID, itemID int64) error {
	return s.repo.Delete(ctx, userID, itemID)
}

// serializeData приводит произвольный payload к строке для хранения.
// nil/пустой payload превращается в пустой объект.
func serializeData(data json.RawMessage) string {
	if len(data) == 0 {
		return "{}"
	}
	return string(data)
}
