// Package decorators содержит обертки контроллеров.
package decorators

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"gogetaccount/internal/account/ports/presentation"
	"gogetaccount/internal/account/ports/repositories"
	"gogetaccount/pkg/logger"
)

const (
	methodHandle = "LogControllerDecorator.Handle"

	msgErrLogError = "failed to persist error trace"
)

// ErrLogPanic возвращается, когда LogRepository паникует при записи трассировки.
var ErrLogPanic = errors.New("log repository panicked")

// LogControllerDecorator сохраняет трассировку каждого ответа 500 в LogRepository.
// Ответ внутреннего контроллера возвращается без изменений.
type LogControllerDecorator struct {
	controller presentation.Controller
	logRepo    repositories.LogRepository
}

func NewLogControllerDecorator(controller presentation.Controller, logRepo repositories.LogRepository) *LogControllerDecorator {
	return &LogControllerDecorator{
		controller: controller,
		logRepo:    logRepo,
	}
}

func (d *LogControllerDecorator) Handle(ctx context.Context, request presentation.Request) presentation.Response {
	response := d.controller.Handle(ctx, request)
	if response.StatusCode != http.StatusInternalServerError {
		return response
	}

	var trace string
	if descriptor, ok := response.Body.(*presentation.ErrorDescriptor); ok {
		trace = descriptor.Trace
	}

	if err := d.logError(ctx, trace); err != nil {
		logger.Log(ctx).With(zap.String("method", methodHandle)).
			Error(ctx, msgErrLogError, zap.Error(err), zap.String("trace", trace))
	}

	return response
}

// logError не дает сбою хранилища логов изменить ответ.
func (d *LogControllerDecorator) logError(ctx context.Context, trace string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrLogPanic, r)
		}
	}()

	return d.logRepo.LogError(ctx, trace)
}
