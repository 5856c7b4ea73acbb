package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gogetaccount/internal/account/domain/services"
	"gogetaccount/pkg/logger"
)

const (
	methodGenerate = "ServiceJWT.Generate"

	msgGeneratingToken = "generating access token"
	msgTokenGenerated  = "access token generated"
	msgEmptySecretKey  = "empty secret key provided"
	//nolint:gosec
	errSigningToken       = "error signing token"
	errCtxGeneratingToken = "generating token"
)

// Claims - полезная нагрузка токена доступа.
type Claims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

// ServiceJWT выпускает подписанные HS256 токены доступа.
type ServiceJWT struct {
	config services.TokenConfig
}

// NewJWT создает сервис выпуска токенов.
func NewJWT(cfg services.TokenConfig) *ServiceJWT {
	return &ServiceJWT{config: cfg}
}

// Generate выпускает токен для учетной записи.
func (s *ServiceJWT) Generate(ctx context.Context, accountID string) (string, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerate),
		zap.String("accountID", accountID),
	)
	log.Debug(ctx, msgGeneratingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, msgEmptySecretKey)
		return "", fmt.Errorf("%s: %w: empty secret key", errCtxGeneratingToken, services.ErrTokenGeneration)
	}

	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   accountID,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrTokenGeneration, err)
	}

	log.Debug(ctx, msgTokenGenerated)
	return token, nil
}
