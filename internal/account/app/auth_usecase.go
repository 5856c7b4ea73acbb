package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gogetaccount/internal/account/domain/entities"
	domain "gogetaccount/internal/account/domain/services"
	"gogetaccount/internal/account/ports/api"
	"gogetaccount/internal/account/ports/services"
	"gogetaccount/pkg/logger"
)

const (
	methodAuth = "Authentication.Auth"

	msgAuthAttempt     = "authentication attempt"
	msgAuthRejected    = "credentials rejected"
	msgAuthSucceeded   = "authentication succeeded"
	msgErrAuthenticate = "authenticator failure"

	errCtxAuthenticating = "authenticating"
)

// AuthUseCase реализует api.Authentication, делегируя проверку Authenticator.
type AuthUseCase struct {
	authenticator services.Authenticator
}

// NewAuthentication создает use case аутентификации.
func NewAuthentication(authenticator services.Authenticator) api.Authentication {
	return &AuthUseCase{authenticator: authenticator}
}

// Auth возвращает токен, либо domain.NoToken при несовпадении учетных данных.
func (u *AuthUseCase) Auth(ctx context.Context, credentials entities.Credentials) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuth), zap.String("email", credentials.Email))
	log.Debug(ctx, msgAuthAttempt)

	token, err := u.authenticator.Authenticate(ctx, credentials)
	if err != nil {
		log.Error(ctx, msgErrAuthenticate, zap.Error(err))
		return domain.NoToken, fmt.Errorf("%s: %w", errCtxAuthenticating, err)
	}

	if token == domain.NoToken {
		log.Debug(ctx, msgAuthRejected)
		return domain.NoToken, nil
	}

	log.Info(ctx, msgAuthSucceeded)
	return token, nil
}
