package config

import (
	"time"

	"gogetaccount/internal/account/domain/services"
)

// JWTConfig содержит настройки токенов доступа и хэширования паролей.
type JWTConfig struct {
	SecretKey      string        `yaml:"secret_key" env:"ACCOUNT_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	Issuer         string        `yaml:"issuer" env:"ACCOUNT_JWT_ISSUER" env-default:"gogetaccount"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"ACCOUNT_JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	BCryptCost     int           `yaml:"bcrypt_cost" env:"ACCOUNT_JWT_BCRYPT_COST" env-default:"12"`
}

// TokenConfig возвращает настройки выпуска токенов.
func (c *JWTConfig) TokenConfig() services.TokenConfig {
	return services.TokenConfig{
		SecretKey: []byte(c.SecretKey),
		TTL:       c.AccessTokenTTL,
		Issuer:    c.Issuer,
	}
}
