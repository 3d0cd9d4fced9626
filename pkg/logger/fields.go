package logger

import (
	"context"
	"sync"
)

const (
	keyPrefix             = "logger."
	requestIDField string = "request-id"
	configIDField  string = "config-id"
)

//nolint:gochecknoglobals
var (
	logKeys = make(map[key]struct{})
	mtx     sync.RWMutex
)

type key string

func SetFieldCtx(ctx context.Context, name, val string) context.Context {
	nameKey := key(keyPrefix + name)

	mtx.RLock()
	_, ok := logKeys[nameKey]
	mtx.RUnlock()

	if !ok {
		mtx.Lock()
		logKeys[nameKey] = struct{}{}
		mtx.Unlock()
	}

	return context.WithValue(ctx, nameKey, val)
}

func GetFieldCtx(ctx context.Context, name string) string {
	value, _ := ctx.Value(key(keyPrefix + name)).(string)

	return value
}

func SetRequestIDCtx(ctx context.Context, val string) context.Context {
	return SetFieldCtx(ctx, requestIDField, val)
}

func GetRequestIDCtx(ctx context.Context) string {
	return GetFieldCtx(ctx, requestIDField)
}

func SetConfigIDCtx(ctx context.Context, val string) context.Context {
	return SetFieldCtx(ctx, configIDField, val)
}
