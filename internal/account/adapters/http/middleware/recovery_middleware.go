package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gogetaccount/internal/account/ports/presentation"
	"gogetaccount/pkg/logger"
)

// NewRecoveryMiddleware отвечает 500 в общем формате ошибок, если обработчик запаниковал.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx)

		defer func() {
			if r := recover(); r != nil {
				log.Error(requestCtx, "Server panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				body := presentation.InternalServerError("")
				if sendErr := ctx.Status(fiber.StatusInternalServerError).JSON(body); sendErr != nil {
					log.Error(requestCtx, "Failed to send error response after panic", zap.Error(sendErr))
					err = sendErr
				}
			}
		}()

		return ctx.Next()
	}
}
