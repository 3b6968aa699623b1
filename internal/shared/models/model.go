package models

import (
	"encoding/json"
	"time"
)

// UserPublic — публичные поля пользователя, возвращаемые API.
//
// Хэш пароля наружу не отдаётся никогда.
type UserPublic struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Item — плоская модель элемента, используемая в HTTP API.
//
// Item всегда принадлежит ровно одному пользователю; наружу user_id
// не отдаётся, т.к. все запросы уже ограничены владельцем.
//
// Поля:
//   - ID: идентификатор, выдаётся базой (bigserial)
//   - Title: название элемента
//   - Description: описание, по умолчанию пустая строка
//   - Data: произвольный структурированный payload (хранится сериализованным текстом)
//   - CreatedAt: время создания (серверное)
//   - UpdatedAt: время последнего обновления; nil пока элемент не обновляли
type Item struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Data        json.RawMessage `json:"data"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// ListItemsResponse — ответ эндпоинта получения всех элементов пользователя.
//
// Используется в:
//
//	GET /api/items
type ListItemsResponse struct {
	Items []Item `json:"items"`
}

// ItemResponse — обёртка для ответа с одним элементом.
//
// Используется в:
//
//	GET /api/items/{id}
//	POST /api/items
type ItemResponse struct {
	Item Item `json:"item"`
}

// ItemRequest — тело запроса создания/обновления элемента.
//
// Используется в:
//
//	POST /api/items
//	PUT /api/items/{id}
//
// Title обязателен по контракту вызывающей стороны, но отдельно
// не валидируется. Description по умолчанию "", Data по умолчанию {}.
type ItemRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// SuccessResponse — ответ операций без возвращаемого объекта.
//
// Используется в:
//
//	PUT /api/items/{id}
//	DELETE /api/items/{id}
//
// Примечание: success=true возвращается даже если ни одна строка не
// совпала с (id, user_id) — сервер это не различает.
type SuccessResponse struct {
	Success bool `json:"success"`
}
