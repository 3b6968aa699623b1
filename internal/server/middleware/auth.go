// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/IvanChernomyrdin/go-webforge/internal/server/crypto"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// identityKey — ключ контекста, под которым хранится идентичность
// аутентифицированного пользователя.
const identityKey ctxKey = "identity"

// TokenVerifier инкапсулирует параметры проверки bearer-токенов.
//
// Используется в HTTP middleware для:
//   - извлечения токена из заголовка Authorization
//   - проверки подписи и срока жизни токена
//   - помещения идентичности пользователя в context.Context
type TokenVerifier struct {
	Config crypto.TokenConfig
}

// NewTokenVerifier создаёт новый TokenVerifier с заданными параметрами.
func NewTokenVerifier(cfg crypto.TokenConfig) *TokenVerifier {
	return &TokenVerifier{Config: cfg}
}

// ContextWithIdentity кладёт идентичность пользователя в контекст.
// Используется middleware и тестами хендлеров.
func ContextWithIdentity(ctx context.Context, identity crypto.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext извлекает идентичность аутентифицированного
// пользователя из контекста.
//
// Возвращает:
//   - идентичность (id + email)
//   - false, если пользователь не аутентифицирован
func IdentityFromContext(ctx context.Context) (crypto.Identity, bool) {
	v := ctx.Value(identityKey)
	id, ok := v.(crypto.Identity)
	return id, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки bearer-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и exp токена
//   - сохраняет идентичность пользователя в context.Context
//
// Ответы об ошибках: JSON {"error": ...} со статусом 401.
// Отсутствующий/кривой заголовок — "Unauthorized",
// невалидный или просроченный токен — "Invalid token".
func (v *TokenVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			identity, err := crypto.Verify(tokenStr, v.Config)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearer извлекает токен из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// writeJSONError пишет ошибку в формате {"error": msg}.
// CORS-заголовки к этому моменту уже выставлены внешним middleware.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
