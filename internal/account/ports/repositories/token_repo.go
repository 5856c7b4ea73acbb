package repositories

import "context"

// AccessTokenRepository запоминает последний выданный токен доступа учетной записи.
type AccessTokenRepository interface {
	Store(ctx context.Context, accountID, token string) error
}
