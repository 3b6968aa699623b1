package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/IvanChernomyrdin/go-webforge/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-webforge/internal/shared/errors"
)

// Список: новые первыми, updated_at может быть NULL
func TestItemsRepository_List_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewItemsRepository(db)

	now := time.Now()
	updated := now.Add(time.Hour)

	mock.ExpectQuery(`SELECT id, title, description, data, created_at, updated_at\s+FROM items`).
		WithArgs(int64(1)).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "title", "description", "data", "created_at", "updated_at"}).
				AddRow(int64(2), "second", "", []byte(`{"a":1}`), now, updated).
				AddRow(int64(1), "first", "desc", []byte(`{}`), now.Add(-time.Hour), nil),
		)

	items, err := repo.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != 2 || items[0].UpdatedAt == nil {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ID != 1 || items[1].UpdatedAt != nil {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
	if string(items[0].Data) != `{"a":1}` {
		t.Fatalf("unexpected data: %s", items[0].Data)
	}
}

// Пустой список — не ошибка
func TestItemsRepository_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewItemsRepository(db)

	mock.ExpectQuery(`SELECT id, title, description, data, created_at, updated_at\s+FROM items`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "data", "created_at", "updated_at"}))

	items, err := repo.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

// Ошибка базы при списке
func TestItemsRepository_List_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewItemsRepository(db)

	mock.ExpectQuery(`SELECT id, title, description, data, created_at, updated_at\s+FROM items`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.List(context.Background(), 1)
	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// Один элемент по id
func TestItemsRepository_Get_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewItemsRepository(db)

	now := time.Now()

	mock.ExpectQuery(`SELECT id, title, description, data, created_at, updated_at\s+FROM items`).
		WithArgs(int64(5), int64(1)).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "title", "description", "data", "created_at", "updated_at"}).
				AddRow(int64(5), "title", "desc", []byte(`{}`), now, nil),
		)

	item, err := repo.Get(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 5 || item.Title != "title" {
		t.Fatalf("unexpected item: %+v", item)
	}
}

// Элемента нет (или чужой)
func TestItemsRepository_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewItemsRepository(db)

	mock.ExpectQuery(`SELECT id, title, description, data, created_at, updated_at\s+FROM items`).
		WithArgs(int64(5), int64(1)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 1, 5)
	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Создание
func TestItemsRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewItemsRepository(db)

	created := time.Now()

	mock.ExpectQuery(`INSERT INTO items`).
		WithArgs(int64(1), "title", "desc", `{"x":1}`).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), created),
		)

	item, err := repo.Create(context.Background(), 1, "title", "desc", `{"x":1}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 10 || item.Title != "title" || string(item.Data) != `{"x":1}` {
		t.Fatalf("unexpected item: %+v", item)
	}
}

// Ошибка базы при создании
func TestItemsRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewItemsRepository(db)

	mock.ExpectQuery(`INSERT INTO items`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), 1, "title", "", "{}")
	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// Обновление: ноль совпавших строк — всё равно успех
func TestItemsRepository_Update_ZeroRowsIsOK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewItemsRepository(db)

	mock.ExpectExec(`UPDATE items`).
		WithArgs("title", "desc", "{}", int64(99), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), 1, 99, "title", "desc", "{}"); err != nil {
		t.Fatalf("expected nil error on zero rows, got %v", err)
	}
}

// Ошибка базы при обновлении
func TestItemsRepository_Update_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewItemsRepository(db)

	mock.ExpectExec(`UPDATE items`).
		WillReturnError(sql.ErrConnDone)

	if err := repo.Update(context.Background(), 1, 5, "t", "", "{}"); err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// Удаление: ноль совпавших строк — всё равно успех
func TestItemsRepository_Delete_ZeroRowsIsOK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewItemsRepository(db)

	mock.ExpectExec(`DELETE FROM items`).
		WithArgs(int64(99), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 1, 99); err != nil {
		t.Fatalf("expected nil error on zero rows, got %v", err)
	}
}

// Ошибка базы при удалении
func TestItemsRepository_Delete_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewItemsRepository(db)

	mock.ExpectExec(`DELETE FROM items`).
		WillReturnError(sql.ErrConnDone)

	if err := repo.Delete(context.Background(), 1, 5); err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
