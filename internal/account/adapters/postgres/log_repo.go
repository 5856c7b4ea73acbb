package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gogetaccount/internal/account/domain/services"
	"gogetaccount/pkg/db/postgres"
	"gogetaccount/pkg/logger"
)

const (
	msgErrStoreTrace   = "error storing error trace"
	errCtxStoringTrace = "error storing error trace"
)

// LogRepository пишет трассировки в таблицу errors.
type LogRepository struct {
	pool postgres.Querier
}

func NewLogRepository(pool postgres.Querier) *LogRepository {
	return &LogRepository{pool: pool}
}

func (r *LogRepository) LogError(ctx context.Context, trace string) error {
	query := `
        INSERT INTO errors (stack)
        VALUES ($1)
    `

	if _, err := r.pool.Exec(ctx, query, trace); err != nil {
		logger.Log(ctx).With(zap.String("repository", "errors"), zap.String("method", "LogError")).
			Error(ctx, msgErrStoreTrace, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", errCtxStoringTrace, services.ErrPersistenceFailed, err)
	}

	return nil
}
