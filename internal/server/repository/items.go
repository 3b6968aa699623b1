package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	serr "github.com/IvanChernomyrdin/go-webforge/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-webforge/internal/shared/models"
	"github.com/IvanChernomyrdin/go-webforge/internal/shared/utils"
)

// ItemsRepository реализует доступ к хранилищу элементов (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
//
// Каждый запрос фильтруется по user_id владельца — чужие элементы
// недостижимы ни одной операцией.
type ItemsRepository struct {
	db *sql.DB
}

// NewItemsRepository создаёт новый экземпляр ItemsRepository.
func NewItemsRepository(db *sql.DB) *ItemsRepository {
	return &ItemsRepository{db: db}
}

// List возвращает все элементы пользователя, новые первыми (по created_at).
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *ItemsRepository) List(ctx context.Context, userID int64) ([]sharedModels.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, data, created_at, updated_at
		FROM items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	items := make([]sharedModels.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return items, nil
}

// Get возвращает один элемент по id в пределах пользователя.
//
// Ошибки:
//   - ErrNotFound — нет строки с таким (id, user_id)
//   - ErrInternal — ошибка базы данных
func (r *ItemsRepository) Get(ctx context.Context, userID, itemID int64) (sharedModels.Item, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, data, created_at, updated_at
		FROM items
		WHERE id = $1 AND user_id = $2
	`, itemID, userID)

	item, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return sharedModels.Item{}, serr.ErrNotFound
		}
		return sharedModels.Item{}, serr.ErrInternal
	}

	return item, nil
}

// Create сохраняет новый элемент пользователя.
//
// data уже сериализован сервисным слоем и хранится текстом.
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *ItemsRepository) Create(ctx context.Context, userID int64, title, description, data string) (sharedModels.Item, error) {
	item := sharedModels.Item{
		Title:       title,
		Description: description,
		Data:        json.RawMessage(data),
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO items (user_id, title, description, data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, userID, title, description, data).Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		return sharedModels.Item{}, serr.ErrInternal
	}

	return item, nil
}

// Update безусловно обновляет элемент в пределах пользователя.
//
// RowsAffected намеренно не проверяется: при нуле совпавших строк
// операция всё равно считается успешной — "строки не было" и
// "строка обновлена" для вызывающего неразличимы. Это зафиксированное
// поведение API, а не недосмотр.
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *ItemsRepository) Update(ctx context.Context, userID, itemID int64, title, description, data string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE items
		SET title = $1, description = $2, data = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5
	`, title, description, data, itemID, userID)

	if err != nil {
		return serr.ErrInternal
	}

	return nil
}

// Delete удаляет элемент в пределах пользователя.
//
// Как и Update, не различает "удалено" и "нечего удалять".
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *ItemsRepository) Delete(ctx context.Context, userID, itemID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM items WHERE id = $1 AND user_id = $2
	`, itemID, userID)

	if err != nil {
		return serr.ErrInternal
	}

	return nil
}

// rowScanner покрывает *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (sharedModels.Item, error) {
	var (
		item      sharedModels.Item
		data      []byte
		updatedAt sql.NullTime
	)

	if err := row.Scan(&item.ID, &item.Title, &item.Description, &data, &item.CreatedAt, &updatedAt); err != nil {
		return sharedModels.Item{}, err
	}

	item.Data = json.RawMessage(data)
	if updatedAt.Valid {
		item.UpdatedAt = utils.Ptr(updatedAt.Time)
	}

	return item, nil
}
