package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gogetaccount/pkg/logger"
)

const (
	healthTimeout = 2 * time.Second

	statusOK          = "ok"
	statusUnavailable = "unavailable"

	msgHealthCheckFailed = "health check failed"
)

// HealthCheck проверяет доступность зависимости.
type HealthCheck func(ctx context.Context) error

// healthHandler отвечает 200, если все проверки прошли, иначе 503 с перечнем отказов.
func healthHandler(checks map[string]HealthCheck) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx, cancel := context.WithTimeout(ctx.Context(), healthTimeout)
		defer cancel()

		result := make(map[string]string, len(checks))
		healthy := true
		for name, check := range checks {
			if err := check(requestCtx); err != nil {
				logger.Log(requestCtx).Warn(requestCtx, msgHealthCheckFailed,
					zap.String("dependency", name), zap.Error(err))
				result[name] = statusUnavailable
				healthy = false
				continue
			}
			result[name] = statusOK
		}

		status := fiber.StatusOK
		overall := statusOK
		if !healthy {
			status = fiber.StatusServiceUnavailable
			overall = statusUnavailable
		}

		return ctx.Status(status).JSON(fiber.Map{
			"status": overall,
			"checks": result,
		})
	}
}
