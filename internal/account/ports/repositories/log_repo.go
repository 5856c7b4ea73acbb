package repositories

import "context"

// LogRepository сохраняет трассировки внутренних ошибок.
type LogRepository interface {
	LogError(ctx context.Context, trace string) error
}
