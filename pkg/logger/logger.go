// контекстный логгер поверх zap: поля из контекста (request-id и т.п.) попадают в каждую запись
package logger

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger *Engine
	level         = zap.NewAtomicLevelAt(zap.InfoLevel)
)

type Engine struct {
	*zap.Logger
}

type ConfigOption func(cfg zap.Config) zap.Config

// WithCustomField добавляет постоянные поля в логи
func WithCustomField(key, value string) ConfigOption {
	return func(cfg zap.Config) zap.Config {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]interface{}{}
		}
		cfg.InitialFields[key] = value

		return cfg
	}
}

func WithOutputPaths(paths []string) ConfigOption {
	return func(cfg zap.Config) zap.Config {
		cfg.OutputPaths = paths
		return cfg
	}
}

// SetupDefaultLogger инициируем логгер по-умолчанию
func SetupDefaultLogger(namespace string, options ...ConfigOption) error {
	config := zap.NewProductionConfig()
	config.Level = level
	config.Sampling = &zap.SamplingConfig{
		Initial:    1000,
		Thereafter: 10,
	}

	for _, opt := range options {
		config = opt(config)
	}

	l, err := config.Build()
	if err != nil {
		return err
	}
	SetDefault(l.Named(namespace))

	return nil
}

// SetDefault подменяет логгер по-умолчанию (например, на observer в тестах)
func SetDefault(l *zap.Logger) {
	defaultMu.Lock()
	defaultLogger = New(l)
	defaultMu.Unlock()
}

// SetLevel уровень логирования из строки конфигурации (Error|Warning|Info, All)
func SetLevel(levels string) {
	switch {
	case strings.Contains(levels, "All"), strings.Contains(levels, "Debug"), strings.Contains(levels, "Trace"):
		level.SetLevel(zapcore.DebugLevel)
	case strings.Contains(levels, "Info"):
		level.SetLevel(zapcore.InfoLevel)
	case strings.Contains(levels, "Warning"):
		level.SetLevel(zapcore.WarnLevel)
	case strings.Contains(levels, "Error"):
		level.SetLevel(zapcore.ErrorLevel)
	}
}

func Logger(ctx context.Context) *Engine {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()

	if l == nil {
		l = New(zap.NewNop())
	}

	return l.WithContext(ctx)
}

func New(logger *zap.Logger) *Engine {
	return &Engine{
		Logger: logger,
	}
}

func (l *Engine) WithContext(ctx context.Context) *Engine {
	if ctx == nil {
		return l
	}

	logger := l.Logger

	mtx.RLock()
	for field := range logKeys {
		value, ok := ctx.Value(field).(string)
		if !ok || value == "" {
			continue
		}
		logger = logger.With(zap.String(strings.TrimPrefix(string(field), keyPrefix), value))
	}
	mtx.RUnlock()

	return &Engine{Logger: logger}
}
