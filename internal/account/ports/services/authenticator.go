package services

import (
	"context"

	"gogetaccount/internal/account/domain/entities"
)

// TokenGenerator выпускает непрозрачный токен доступа для учетной записи.
type TokenGenerator interface {
	Generate(ctx context.Context, accountID string) (string, error)
}

// Authenticator проверяет учетные данные и выдает токен.
// При несовпадении возвращает пустой токен и nil.
type Authenticator interface {
	Authenticate(ctx context.Context, credentials entities.Credentials) (string, error)
}
