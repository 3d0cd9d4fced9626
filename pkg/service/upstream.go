package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
	"go.uber.org/zap"

	lib "git.edtech.vm.prod-6.cloud.el/onlyflow/lib"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/logger"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/metrics"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/model"
)

const (
	healthCacheKey = "upstream.health"
	statusOK       = "ok"
	// ответ health_check больше этого не читаем
	maxHealthBody = 64 << 10
)

var ErrUpstreamUnavailable = errors.New("upstream is unavailable")

// UpstreamPath путь на бекенде: префикс из PROXY_TARGET + путь запроса
// при PROXY_STRIP_BASENAME префикс приложения из пути удаляется
func (s *service) UpstreamPath(path string) string {
	if s.cfg.ProxyStripBasename.V() {
		if mount := s.routes.MountPath(); mount != "" {
			if path == mount {
				path = "/"
			} else if strings.HasPrefix(path, mount+"/") {
				path = strings.TrimPrefix(path, mount)
			}
		}
	}

	joined := lib.JoinPaths(s.target.Path, path)
	if !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}

	return joined
}

func (s *service) healthURL() string {
	u := s.Target()
	u.Path = s.UpstreamPath(s.routes.HealthCheckURL)
	u.RawPath = ""
	u.RawQuery = ""

	return u.String()
}

func (s *service) Health(ctx context.Context) (status model.UpstreamStatus, err error) {
	if cached, ok := s.cache.Get(healthCacheKey); ok {
		status = cached.(model.UpstreamStatus)
		if !status.Healthy {
			err = errors.Wrap(ErrUpstreamUnavailable, status.Error)
		}
		return status, err
	}

	status, err = s.check(ctx)
	if s.ttl > 0 {
		s.cache.SetWithTTL(healthCacheKey, status, s.ttl)
	}

	return status, err
}

// check запрашивает health_check бекенда без кеша
func (s *service) check(ctx context.Context) (status model.UpstreamStatus, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveUpstream(s.target.String(), status.Healthy, start)
	}()

	status = model.UpstreamStatus{
		Target:    s.target.String(),
		Status:    "unavailable",
		CheckedAt: time.Now(),
	}

	fail := func(e error) (model.UpstreamStatus, error) {
		status.Error = e.Error()
		return status, errors.Wrap(ErrUpstreamUnavailable, e.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.healthURL(), nil)
	if err != nil {
		return fail(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxHealthBody))
	if err != nil {
		return fail(errors.Wrap(err, "read health body"))
	}

	if resp.StatusCode != http.StatusOK {
		return fail(fmt.Errorf("health check status %d", resp.StatusCode))
	}

	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return fail(errors.Wrap(err, "parse health body"))
	}

	status.Status = string(v.GetStringBytes("status"))
	if status.Status != statusOK {
		return fail(fmt.Errorf("health status %q", status.Status))
	}
	status.Healthy = true

	return status, nil
}

func (s *service) Wait(ctx context.Context) error {
	wait := s.cfg.UpstreamWait.Value
	if wait <= 0 {
		_, err := s.Health(ctx)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = wait

	attempt := 0
	status, err := backoff.RetryWithData(func() (model.UpstreamStatus, error) {
		attempt++
		st, errC := s.check(ctx)
		if errC != nil {
			logger.Debug(ctx, "upstream is not ready",
				zap.Int("attempt", attempt),
				zap.String("target", s.target.String()),
				zap.Error(errC))
		}
		return st, errC
	}, backoff.WithContext(b, ctx))

	if s.ttl > 0 {
		s.cache.SetWithTTL(healthCacheKey, status, s.ttl)
	}
	if err != nil {
		return errors.Wrapf(ErrUpstreamUnavailable, "wait %s (%s): %v", s.target, wait, err)
	}

	logger.Info(ctx, "upstream is ready", zap.String("target", s.target.String()), zap.Int("attempts", attempt))

	return nil
}
