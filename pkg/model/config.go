package model

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"onlyflow-front" toml:"service_name"`

	// Маршрутизация
	Basename    string `envconfig:"BASENAME" default:"/onlyflow/" toml:"basename"`
	Port        string `envconfig:"PORT" default:"3000" toml:"port" validate:"required,numeric"`
	ProxyTarget string `envconfig:"PROXY_TARGET" default:"http://127.0.0.1:7860" toml:"proxy_target" validate:"required,url"`
	DocsLink    string `envconfig:"DOCS_LINK" default:"https://docs.langflow.org" toml:"docs_link" validate:"omitempty,url"`
	StaticDir   string `envconfig:"STATIC_DIR" default:"" toml:"static_dir" validate:"omitempty,dir"`

	ProxyStripBasename Bool     `envconfig:"PROXY_STRIP_BASENAME" default:"false" toml:"proxy_strip_basename" description:"отрезать BASENAME перед отправкой запроса в бекенд"`
	ProxyTimeout       Duration `envconfig:"PROXY_TIMEOUT" default:"60s" toml:"proxy_timeout"`
	HealthCacheTTL     Duration `envconfig:"HEALTH_CACHE_TTL" default:"5s" toml:"health_cache_ttl" description:"время жизни закешированного статуса бекенда"`
	UpstreamWait       Duration `envconfig:"UPSTREAM_WAIT" default:"30s" toml:"upstream_wait" description:"сколько ждать готовности бекенда при старте (0 - не ждать)"`

	ReadTimeout  Duration `envconfig:"READ_TIMEOUT" default:"10s" toml:"read_timeout"`
	WriteTimeout Duration `envconfig:"WRITE_TIMEOUT" default:"60s" toml:"write_timeout"`

	// Logger
	LogsLevel      string `envconfig:"LOGS_LEVEL" default:"Error|Warning|Info|Stdout" toml:"logs_level"`
	LogsDir        string `envconfig:"LOGS_DIR" default:"logs" toml:"logs_dir"`
	LogsFile       Bool   `envconfig:"LOGS_FILE" default:"false" toml:"logs_file" description:"писать логи в файл с ротацией"`
	LogsMaxSizeMB  Int    `envconfig:"LOGS_MAX_SIZE_MB" default:"10" toml:"logs_max_size_mb"`
	LogsMaxBackups Int    `envconfig:"LOGS_MAX_BACKUPS" default:"3" toml:"logs_max_backups"`

	ServiceVersion string `ignored:"true" toml:"-"`
	HashCommit     string `ignored:"true" toml:"-"`
	HashRun        string `ignored:"true" toml:"-"`
}

var validate = validator.New()

// Validate проверяем конфигурацию, возвращаем все найденные ошибки разом
func (c *Config) Validate() (err error) {
	if errV := validate.Struct(c); errV != nil {
		validationErrors, ok := errV.(validator.ValidationErrors)
		if !ok {
			return errV
		}
		for _, fe := range validationErrors {
			err = multierr.Append(err, fmt.Errorf("config field %s: failed on '%s' (value: %v)", fe.Field(), fe.Tag(), fe.Value()))
		}
	}

	if c.ProxyTarget != "" {
		if u, errP := url.Parse(c.ProxyTarget); errP == nil && u.Scheme != "http" && u.Scheme != "https" {
			err = multierr.Append(err, fmt.Errorf("config field ProxyTarget: unsupported scheme %q", u.Scheme))
		}
	}

	return err
}
