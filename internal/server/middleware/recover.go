package middleware

import (
	"fmt"
	"net/http"

	"github.com/IvanChernomyrdin/go-webforge/internal/shared/logger"
)

// RecoverMiddleware — внешняя граница обработки ошибок роутера.
//
// Любая паника хендлера превращается в ответ 500 с телом
// {"error": <сообщение>}. Сообщение отдаётся как есть — это
// зафиксированное поведение API, а не недосмотр.
func RecoverMiddleware() func(http.Handler) http.Handler {
	sugar := logger.NewHTTPLogger().Logger.Sugar()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					sugar.Errorf("panic in handler: %v", rec)
					writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("%v", rec))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
