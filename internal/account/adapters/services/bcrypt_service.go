package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"gogetaccount/internal/account/domain/services"
)

const (
	// DefaultCost совпадает с исходной солью хэширования паролей.
	DefaultCost = 12

	errMsgFailedToGenerateHash = "failed to generate password hash"
	errMsgErrorComparingHash   = "error comparing password with hash"
)

// ServiceBcrypt реализует Encrypter и HashComparer.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt создает сервис bcrypt; стоимость вне допустимого диапазона заменяется DefaultCost.
func NewBcrypt(cost int) *ServiceBcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Encrypt хэширует значение.
func (s *ServiceBcrypt) Encrypt(_ context.Context, value string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(value), s.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", errMsgFailedToGenerateHash, services.ErrEncryptionFailed, err)
	}

	return string(hashedBytes), nil
}

// Compare возвращает false без ошибки, если значение не соответствует хэшу.
func (s *ServiceBcrypt) Compare(_ context.Context, value, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(value))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", errMsgErrorComparingHash, err)
	}

	return true, nil
}
