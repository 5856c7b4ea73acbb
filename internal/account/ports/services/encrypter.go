// Package services определяет порты криптографии, выпуска токенов и проверки email.
package services

import "context"

// Encrypter превращает открытое значение в хэш.
type Encrypter interface {
	Encrypt(ctx context.Context, value string) (string, error)
}

// HashComparer проверяет соответствие открытого значения хэшу.
type HashComparer interface {
	Compare(ctx context.Context, value, hash string) (bool, error)
}
