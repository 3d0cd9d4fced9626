package service

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/ReneKroon/ttlcache"
	"github.com/pkg/errors"

	lib "git.edtech.vm.prod-6.cloud.el/onlyflow/lib"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/model"
)

type service struct {
	cfg    model.Config
	routes lib.Routes
	target *url.URL
	client *http.Client
	cache  *ttlcache.Cache
	ttl    time.Duration
}

// Service interface
type Service interface {
	Alive(ctx context.Context) (out model.AliveOut, err error)
	Ping(ctx context.Context) (result model.PongObj, err error)

	// Health состояние бекенда, кешируется на HealthCacheTTL
	Health(ctx context.Context) (status model.UpstreamStatus, err error)
	// Wait блокирует до готовности бекенда, но не дольше UpstreamWait
	Wait(ctx context.Context) error
	// UpstreamPath путь запроса на стороне бекенда
	UpstreamPath(path string) string

	Target() *url.URL
	Routes() lib.Routes
	Close()
}

func New(
	cfg model.Config,
	routes lib.Routes,
) (Service, error) {
	target, err := url.Parse(cfg.ProxyTarget)
	if err != nil {
		return nil, errors.Wrap(err, "parse proxy target")
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, errors.Errorf("proxy target must be absolute url, got %q", cfg.ProxyTarget)
	}

	cache := ttlcache.NewCache()
	cache.SkipTtlExtensionOnHit(true)

	return &service{
		cfg:    cfg,
		routes: routes,
		target: target,
		client: &http.Client{Timeout: cfg.ProxyTimeout.Value},
		cache:  cache,
		ttl:    cfg.HealthCacheTTL.Value,
	}, nil
}

func (s *service) Target() *url.URL {
	u := *s.target
	return &u
}

func (s *service) Routes() lib.Routes {
	return s.routes
}

func (s *service) Close() {
	s.cache.Close()
}
