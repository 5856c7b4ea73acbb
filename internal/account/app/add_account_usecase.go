// Package app содержит use case сервиса учетных записей.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gogetaccount/internal/account/domain/entities"
	"gogetaccount/internal/account/ports/api"
	"gogetaccount/internal/account/ports/repositories"
	"gogetaccount/internal/account/ports/services"
	"gogetaccount/pkg/logger"
)

const (
	methodAdd = "AddAccount.Add"

	msgAddingAccount = "adding account"
	msgAccountAdded  = "account added"

	msgErrEncryptPassword = "failed to encrypt password"
	msgErrPersistAccount  = "failed to persist account"

	errCtxEncryptingPassword = "encrypting password"
	errCtxPersistingAccount  = "persisting account"
)

// DbAddAccount реализует api.AddAccount поверх Encrypter и AccountRepository.
type DbAddAccount struct {
	encrypter   services.Encrypter
	accountRepo repositories.AccountRepository
}

// NewAddAccount создает use case добавления учетной записи.
func NewAddAccount(encrypter services.Encrypter, accountRepo repositories.AccountRepository) api.AddAccount {
	return &DbAddAccount{
		encrypter:   encrypter,
		accountRepo: accountRepo,
	}
}

// Add хэширует пароль и только после этого сохраняет учетную запись.
// Ошибки портов не обрабатываются и возвращаются вызывающему.
func (u *DbAddAccount) Add(ctx context.Context, account entities.AddAccountModel) (*entities.Account, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAdd), zap.String("email", account.Email))
	log.Debug(ctx, msgAddingAccount)

	hash, err := u.encrypter.Encrypt(ctx, account.Password)
	if err != nil {
		log.Error(ctx, msgErrEncryptPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxEncryptingPassword, err)
	}

	created, err := u.accountRepo.Add(ctx, entities.AddAccountModel{
		Name:     account.Name,
		Email:    account.Email,
		Password: hash,
	})
	if err != nil {
		log.Error(ctx, msgErrPersistAccount, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxPersistingAccount, err)
	}

	log.Info(ctx, msgAccountAdded, zap.String("accountID", created.ID))
	return created, nil
}
