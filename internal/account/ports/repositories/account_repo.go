// Package repositories определяет порты хранения данных сервиса учетных записей.
package repositories

import (
	"context"

	"gogetaccount/internal/account/domain/entities"
)

// AccountRepository определяет операции хранения учетных записей.
type AccountRepository interface {
	Add(ctx context.Context, account entities.AddAccountModel) (*entities.Account, error)

	FindByEmail(ctx context.Context, email string) (*entities.Account, error)
}
