package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-webforge/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - CORS-заголовки на каждый ответ + обработку preflight (OPTIONS);
//   - middleware логирования и recover для всех запросов;
//   - публичные эндпоинты аутентификации под префиксом /api/auth;
//   - группу защищённых токеном эндпоинтов /api/items (CRUD);
//   - JSON-ответы 404/405 для неизвестных маршрутов и методов.
//
// Пути вне /api отдаются статикой на внешней платформе —
// здесь на них отвечаем 404.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	// CORS первым: заголовки должны попасть и в ответы об ошибках
	r.Use(middleware.CORSMiddleware())
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())
	// внешняя граница обработки паник
	r.Use(middleware.RecoverMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		// Публичные пути
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
		})
		// защищённые пути
		r.Group(func(r chi.Router) {
			// проверка bearer-токена
			r.Use(h.Verifier.AuthMiddleware())
			// CRUD запросы для элементов
			r.Route("/items", func(r chi.Router) {
				r.Get("/", h.ListItems)         // список элементов пользователя
				r.Post("/", h.CreateItem)       // создание элемента
				r.Get("/{id}", h.GetItem)       // один элемент по id
				r.Put("/{id}", h.UpdateItem)    // обновление по id
				r.Delete("/{id}", h.DeleteItem) // удаление по id
			})
		})

		// неизвестный маршрут внутри /api
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			WriteError(w, http.StatusNotFound, MsgRouteNotFound)
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			WriteError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
		})
	})

	// всё остальное — статика на внешней платформе, здесь 404
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, MsgNotFound)
	})

	return r
}
