// Package shutdown реализует корректное завершение процесса по сигналам SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gogetaccount/pkg/logger"
)

const (
	msgSignalReceived = "shutdown signal received"
	msgHookFailed     = "shutdown hook failed"
	msgTimeoutReached = "shutdown timeout reached, some hooks did not finish"
)

// Hook - функция освобождения ресурса при остановке.
type Hook func(context.Context) error

// Sequence объединяет хуки в один, выполняемый по порядку.
// Ошибка одного шага не отменяет следующие, ошибки объединяются.
func Sequence(hooks ...Hook) Hook {
	return func(ctx context.Context) error {
		errs := make([]error, 0, len(hooks))
		for _, hook := range hooks {
			errs = append(errs, hook(ctx))
		}
		return errors.Join(errs...)
	}
}

// Wait блокируется до получения SIGINT/SIGTERM и затем выполняет хуки в пределах timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	sig := <-sigCh
	logger.Log(ctx).Info(ctx, msgSignalReceived, zap.String("signal", sig.String()))

	Run(ctx, timeout, hooks...)
}

// Run параллельно выполняет хуки и ждет их завершения не дольше timeout.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	log := logger.Log(ctx)

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			if err := fn(hookCtx); err != nil {
				log.Error(hookCtx, msgHookFailed, zap.Error(err))
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-hookCtx.Done():
		log.Warn(ctx, msgTimeoutReached)
	}
}
