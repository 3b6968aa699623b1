// HTTP-хендлеры CRUD-операций над элементами пользователя
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/IvanChernomyrdin/go-webforge/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-webforge/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-webforge/internal/shared/models"
	"github.com/go-chi/chi/v5"
)

// ListItems возвращает все элементы текущего пользователя, новые первыми.
//
// Пользователь определяется по bearer-токену (middleware).
//
// @Summary      List items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.ListItemsResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /api/items [get]
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.Svc.Items.List(r.Context(), identity.ID)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list items failed", "error", err, "user_id", identity.ID)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		return
	}

	WriteJSON(w, http.StatusOK, sharedModels.ListItemsResponse{Items: items})
}

// GetItem возвращает один элемент пользователя по id.
//
// Элемент другого пользователя неотличим от несуществующего — 404.
//
// @Summary      Get item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Item ID"
// @Success      200 {object} models.ItemResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Item not found"
// @Router       /api/items/{id} [get]
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, ok := itemIDFromURL(r)
	if !ok {
		WriteError(w, http.StatusNotFound, MsgItemNotFound)
		return
	}

	item, err := h.Svc.Items.Get(r.Context(), identity.ID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, MsgItemNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("get item failed", "error", err, "user_id", identity.ID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		}
		return
	}

	WriteJSON(w, http.StatusOK, sharedModels.ItemResponse{Item: item})
}

// CreateItem создаёт новый элемент для аутентифицированного пользователя.
//
// description по умолчанию "", data по умолчанию {}.
//
// @Summary      Create item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.ItemRequest true "Create item request"
// @Success      201 {object} models.ItemResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /api/items [post]
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req sharedModels.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	item, err := h.Svc.Items.Create(r.Context(), identity.ID, req)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("create item failed", "error", err, "user_id", identity.ID)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		return
	}

	WriteJSON(w, http.StatusCreated, sharedModels.ItemResponse{Item: item})
}

// UpdateItem безусловно обновляет элемент пользователя.
//
// Возвращает success=true даже если строка не совпала —
// см. примечание в repository.
//
// @Summary      Update item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Item ID"
// @Param        request body models.ItemRequest true "Update item request"
// @Success      200 {object} models.SuccessResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /api/items/{id} [put]
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, ok := itemIDFromURL(r)
	if !ok {
		WriteError(w, http.StatusNotFound, MsgItemNotFound)
		return
	}

	var req sharedModels.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	if err := h.Svc.Items.Update(r.Context(), identity.ID, itemID, req); err != nil {
		h.Log.Logger.Sugar().Errorw("update item failed", "error", err, "user_id", identity.ID)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		return
	}

	WriteJSON(w, http.StatusOK, sharedModels.SuccessResponse{Success: true})
}

// DeleteItem удаляет элемент пользователя.
//
// @Summary      Delete item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Item ID"
// @Success      200 {object} models.SuccessResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /api/items/{id} [delete]
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, ok := itemIDFromURL(r)
	if !ok {
		WriteError(w, http.StatusNotFound, MsgItemNotFound)
		return
	}

	if err := h.Svc.Items.Delete(r.Context(), identity.ID, itemID); err != nil {
		h.Log.Logger.Sugar().Errorw("delete item failed", "error", err, "user_id", identity.ID)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal.Error())
		return
	}

	WriteJSON(w, http.StatusOK, sharedModels.SuccessResponse{Success: true})
}

// itemIDFromURL достаёт числовой id элемента из пути.
// Нечисловой id неотличим от несуществующего элемента.
func itemIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
