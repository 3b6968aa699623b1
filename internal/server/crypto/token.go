package crypto

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	serr "github.com/IvanChernomyrdin/go-webforge/internal/shared/errors"
)

// TokenConfig описывает параметры выпуска bearer-токенов.
type TokenConfig struct {
	// Secret — общий секрет для подписи токена.
	// Берётся из окружения через конфиг, должен быть длинным и случайным.
	Secret string
	// TTL — срок жизни токена. По умолчанию 24 часа.
	TTL time.Duration
}

// Identity — идентичность пользователя, зашитая в токен.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// tokenHeader — заголовок токена. Поле alg чисто косметическое:
// переговоров алгоритма нет, подпись всегда Digest(header.payload+secret).
type tokenHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// tokenClaims — payload токена: идентичность + срок жизни.
// Exp хранится в миллисекундах Unix-времени.
type tokenClaims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Exp   int64  `json:"exp"`
}

// Issue выпускает токен формата header.payload.signature.
//
// header и payload — base64 от JSON, signature = Digest(header+"."+payload+secret).
// Срок жизни: время выпуска + cfg.TTL (exp в миллисекундах).
func Issue(identity Identity, cfg TokenConfig) (string, error) {
	headerJSON, err := json.Marshal(tokenHeader{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", err
	}

	claims := tokenClaims{
		ID:    identity.ID,
		Email: identity.Email,
		Exp:   time.Now().Add(cfg.TTL).UnixMilli(),
	}
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	header := base64.StdEncoding.EncodeToString(headerJSON)
	payload := base64.StdEncoding.EncodeToString(payloadJSON)
	signature := Digest(header + "." + payload + cfg.Secret)

	return header + "." + payload + "." + signature, nil
}

// Verify проверяет токен и возвращает зашитую в него идентичность.
//
// Токен невалиден если:
//   - частей не ровно три;
//   - пересчитанная подпись не совпадает с переданной (точное сравнение строк);
//   - payload не декодируется (base64/JSON);
//   - exp раньше текущего времени.
//
// Возвращает ErrTokenExpired для просроченного токена
// и ErrUnauthorized для всех остальных случаев.
func Verify(token string, cfg TokenConfig) (Identity, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Identity{}, serr.ErrUnauthorized
	}

	expected := Digest(parts[0] + "." + parts[1] + cfg.Secret)
	if parts[2] != expected {
		return Identity{}, serr.ErrUnauthorized
	}

	payloadJSON, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return Identity{}, serr.ErrUnauthorized
	}

	var claims tokenClaims
	if err := json.Unmarshal(payloadJSON, &claims); err != nil {
		return Identity{}, serr.ErrUnauthorized
	}

	if claims.Exp < time.Now().UnixMilli() {
		return Identity{}, serr.ErrTokenExpired
	}

	return Identity{ID: claims.ID, Email: claims.Email}, nil
}
