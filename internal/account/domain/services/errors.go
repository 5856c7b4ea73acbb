// Package services содержит доменные ошибки и настройки сервисов учетных записей.
package services

import (
	"errors"
	"time"
)

// Ошибки нижних слоев. Не восстанавливаются в use case и превращаются контроллером в 500.
var (
	ErrEncryptionFailed  = errors.New("failed to encrypt value")
	ErrPersistenceFailed = errors.New("failed to persist data")
	ErrTokenGeneration   = errors.New("failed to generate access token")
	ErrEmailValidation   = errors.New("email validator failure")
)

// NoToken - отсутствие токена при несовпадении учетных данных. Это не ошибка.
const NoToken = ""

// TokenConfig содержит настройки выпуска токенов доступа.
type TokenConfig struct {
	SecretKey []byte
	TTL       time.Duration
	Issuer    string
}
