package http

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gogetaccount/internal/account/app/controllers"
	"gogetaccount/internal/account/ports/presentation"
	"gogetaccount/pkg/logger"
)

const (
	fieldBody = "body"

	ErrorInvalidRequest = "invalid request body"
	ErrorSendResponse   = "error sending response"
)

// AdaptRoute превращает контроллер в обработчик fiber: тело JSON становится
// presentation.Request, конверт ответа - статусом и телом JSON.
func AdaptRoute(controller presentation.Controller) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()

		body, err := decodeBody(ctx)
		if err != nil {
			logger.Log(requestCtx).Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
			return writeResponse(ctx, controllers.BadRequest(presentation.InvalidParamError(fieldBody)))
		}

		return writeResponse(ctx, controller.Handle(requestCtx, presentation.Request{Body: body}))
	}
}

// decodeBody читает JSON-объект. Строки берутся как есть, прочие скалярные значения
// приводятся к строке, null считается отсутствующим полем.
func decodeBody(ctx fiber.Ctx) (map[string]string, error) {
	body := make(map[string]string)
	if len(ctx.Body()) == 0 {
		return body, nil
	}

	var raw map[string]any
	if err := ctx.Bind().JSON(&raw); err != nil {
		return nil, fmt.Errorf("decoding json body: %w", err)
	}

	for key, value := range raw {
		switch v := value.(type) {
		case nil:
		case string:
			body[key] = v
		case map[string]any, []any:
			encoded, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("encoding field %s: %w", key, err)
			}
			body[key] = string(encoded)
		default:
			body[key] = fmt.Sprint(v)
		}
	}

	return body, nil
}

func writeResponse(ctx fiber.Ctx, response presentation.Response) error {
	if err := ctx.Status(response.StatusCode).JSON(response.Body); err != nil {
		return fmt.Errorf("%s: %w", ErrorSendResponse, err)
	}
	return nil
}
