// Package api определяет входные порты use case сервиса учетных записей.
package api

import (
	"context"

	"gogetaccount/internal/account/domain/entities"
)

// AddAccount создает учетную запись.
type AddAccount interface {
	Add(ctx context.Context, account entities.AddAccountModel) (*entities.Account, error)
}

// Authentication аутентифицирует по учетным данным и возвращает токен
// или пустую строку, если данные не подошли.
type Authentication interface {
	Auth(ctx context.Context, credentials entities.Credentials) (string, error)
}
