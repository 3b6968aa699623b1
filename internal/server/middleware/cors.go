package middleware

import "net/http"

// CORSMiddleware выставляет CORS-заголовки на каждый ответ и
// сразу завершает preflight-запросы (OPTIONS) без тела.
//
// Политика: любой origin, методы GET/POST/PUT/DELETE/OPTIONS,
// заголовки Content-Type и Authorization. Благодаря тому, что middleware
// стоит первым в цепочке, заголовки попадают и в ответы об ошибках —
// браузерный клиент всегда может прочитать причину отказа.
func CORSMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			// preflight завершаем сразу
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
