// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"gogetaccount/pkg/logger"
)

// NewRequestIDMiddleware кладет идентификатор запроса в контекст и возвращает его в заголовке.
// Пустой входящий заголовок заменяется новым UUID.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(logger.HeaderRequestID))
		ctx.SetContext(requestCtx)

		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(logger.HeaderRequestID, id)
		}

		return ctx.Next()
	}
}
