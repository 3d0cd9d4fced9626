package lib

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

func RunAsync(ctx context.Context, fn func()) {
	go func() {
		defer Recover(ctx)
		fn()
	}()
}

func Recover(ctx context.Context) bool {
	recoverErr := recover()
	if recoverErr == nil {
		return false
	}

	stack := debug.Stack()
	pc, file, line, _ := runtime.Caller(2)
	logrus.WithFields(logrus.Fields{
		"file":     file,
		"line":     line,
		"function": runtime.FuncForPC(pc).Name(),
		"stack":    string(stack),
	}).Error(fmt.Sprintf("Recovered panic. error: %v", recoverErr))

	return true
}

// Retrier выполняет f не более maxRetries раз с экспоненциально растущей паузой начиная с delay
// ошибка, обернутая в backoff.Permanent, прекращает повторы сразу
func Retrier[T any](ctx context.Context, maxRetries int, delay time.Duration, f func() (T, error)) (T, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = delay
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0

	return backoff.RetryWithData(f, backoff.WithContext(backoff.WithMaxRetries(b, uint64(maxRetries-1)), ctx))
}
