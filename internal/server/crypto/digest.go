// Package crypto содержит криптографические примитивы сервера WebForge.
//
// В частности, пакет отвечает за:
//   - детерминированный дайджест паролей (SHA-256 hex);
//   - выпуск и проверку bearer-токенов формата header.payload.signature.
//
// ВНИМАНИЕ: схема намеренно упрощённая и НЕ production-grade:
// пароль хэшируется без соли (одинаковые пароли дают одинаковый дайджест),
// а подпись токена — keyed-hash по общему секрету, а не стандартный JWS.
// Поведение зафиксировано контрактом API и не должно "чиниться" молча.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest возвращает SHA-256 дайджест строки в hex-кодировке.
//
// Функция чистая и детерминированная: одинаковый вход всегда даёт
// одинаковый результат. Соль и секрет не подмешиваются.
func Digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
