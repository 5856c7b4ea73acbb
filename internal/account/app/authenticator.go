package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gogetaccount/internal/account/domain/entities"
	domain "gogetaccount/internal/account/domain/services"
	"gogetaccount/internal/account/ports/repositories"
	"gogetaccount/internal/account/ports/services"
	"gogetaccount/pkg/logger"
)

const (
	methodAuthenticate = "DbAuthenticator.Authenticate"

	msgUnknownEmail     = "no account for email"
	msgPasswordMismatch = "password does not match"
	msgTokenIssued      = "access token issued"

	errCtxFindingAccount  = "finding account"
	errCtxComparingHash   = "comparing password hash"
	errCtxGeneratingToken = "generating access token"
	errCtxStoringToken    = "storing access token"
)

// DbAuthenticator - рабочая реализация services.Authenticator:
// поиск учетной записи, сравнение хэша, выпуск и сохранение токена.
type DbAuthenticator struct {
	accountRepo  repositories.AccountRepository
	hashComparer services.HashComparer
	tokenGen     services.TokenGenerator
	tokenRepo    repositories.AccessTokenRepository
}

// NewAuthenticator создает DbAuthenticator.
func NewAuthenticator(
	accountRepo repositories.AccountRepository,
	hashComparer services.HashComparer,
	tokenGen services.TokenGenerator,
	tokenRepo repositories.AccessTokenRepository,
) services.Authenticator {
	return &DbAuthenticator{
		accountRepo:  accountRepo,
		hashComparer: hashComparer,
		tokenGen:     tokenGen,
		tokenRepo:    tokenRepo,
	}
}

// Authenticate возвращает domain.NoToken без ошибки, если email неизвестен или пароль не совпал.
func (a *DbAuthenticator) Authenticate(ctx context.Context, credentials entities.Credentials) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate), zap.String("email", credentials.Email))

	account, err := a.accountRepo.FindByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) {
			log.Debug(ctx, msgUnknownEmail)
			return domain.NoToken, nil
		}
		return domain.NoToken, fmt.Errorf("%s: %w", errCtxFindingAccount, err)
	}

	log = log.With(zap.String("accountID", account.ID))

	matches, err := a.hashComparer.Compare(ctx, credentials.Password, account.PasswordHash)
	if err != nil {
		return domain.NoToken, fmt.Errorf("%s: %w", errCtxComparingHash, err)
	}
	if !matches {
		log.Debug(ctx, msgPasswordMismatch)
		return domain.NoToken, nil
	}

	token, err := a.tokenGen.Generate(ctx, account.ID)
	if err != nil {
		return domain.NoToken, fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	if err := a.tokenRepo.Store(ctx, account.ID, token); err != nil {
		return domain.NoToken, fmt.Errorf("%s: %w", errCtxStoringToken, err)
	}

	log.Debug(ctx, msgTokenIssued)
	return token, nil
}
