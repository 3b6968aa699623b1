package api

import (
	"fmt"

	sharedModels "github.com/IvanChernomyrdin/go-webforge/internal/shared/models"
)

// ListItems загружает все элементы пользователя с сервера.
//
// Выполняет запрос:
//
//	GET /api/items
//
// Параметры:
//   - token: bearer-токен пользователя (Authorization: Bearer <token>).
//
// Возвращает:
//   - sharedModels.ListItemsResponse (массив items, новые первыми)
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) ListItems(token string) (sharedModels.ListItemsResponse, error) {
	var resp sharedModels.ListItemsResponse
	err := c.GetJSON("/api/items", &resp, token)
	return resp, err
}

// GetItem загружает один элемент пользователя по ID.
//
// Выполняет запрос:
//
//	GET /api/items/{id}
//
// Возвращает ошибку с текстом "Item not found", если элемента нет
// или он принадлежит другому пользователю.
func (c *Client) GetItem(token string, id int64) (sharedModels.ItemResponse, error) {
	var resp sharedModels.ItemResponse
	err := c.GetJSON(fmt.Sprintf("/api/items/%d", id), &resp, token)
	return resp, err
}

// CreateItem создаёт новый элемент на сервере.
//
// Выполняет запрос:
//
//	POST /api/items
//
// Тело запроса сериализуется в JSON из sharedModels.ItemRequest.
//
// Возвращает:
//   - sharedModels.ItemResponse с присвоенным ID и created_at
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) CreateItem(token string, req sharedModels.ItemRequest) (sharedModels.ItemResponse, error) {
	var resp sharedModels.ItemResponse
	err := c.PostJSON("/api/items", req, &resp, token)
	return resp, err
}

// UpdateItem обновляет существующий элемент на сервере по ID.
//
// Выполняет запрос:
//
//	PUT /api/items/{id}
//
// Сервер отвечает {"success":true} независимо от того, была ли
// реально изменена строка.
func (c *Client) UpdateItem(token string, id int64, req sharedModels.ItemRequest) (sharedModels.SuccessResponse, error) {
	var resp sharedModels.SuccessResponse
	err := c.PutJSON(fmt.Sprintf("/api/items/%d", id), req, &resp, token)
	return resp, err
}

// DeleteItem удаляет элемент на сервере по ID.
//
// Выполняет запрос:
//
//	DELETE /api/items/{id}
//
// Возвращает nil при успешном удалении (сервер отвечает {"success":true}).
func (c *Client) DeleteItem(token string, id int64) (sharedModels.SuccessResponse, error) {
	var resp sharedModels.SuccessResponse
	err := c.DeleteJSON(fmt.Sprintf("/api/items/%d", id), &resp, token)
	return resp, err
}
