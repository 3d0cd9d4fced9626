package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lib "git.edtech.vm.prod-6.cloud.el/onlyflow/lib"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/model"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/service"
)

func newConfig(target string) model.Config {
	cfg := model.Config{
		Basename:    "/onlyflow/",
		Port:        "3000",
		ProxyTarget: target,
	}
	cfg.ProxyTimeout.Value = time.Second
	cfg.HealthCacheTTL.Value = time.Minute
	return cfg
}

func newService(t *testing.T, cfg model.Config) service.Service {
	t.Helper()
	s, err := service.New(cfg, lib.NewRoutes(cfg.Basename))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNew_InvalidTarget(t *testing.T) {
	_, err := service.New(newConfig("127.0.0.1:7860"), lib.NewRoutes(""))
	assert.Error(t, err)

	_, err = service.New(newConfig("/relative"), lib.NewRoutes(""))
	assert.Error(t, err)
}

func TestUpstreamPath(t *testing.T) {
	cases := []struct {
		name   string
		target string
		strip  bool
		path   string
		want   string
	}{
		{"as is", "http://backend:7860", false, "/onlyflow/api/v1/flows/", "/onlyflow/api/v1/flows/"},
		{"target prefix", "http://backend:7860/langflow", false, "/onlyflow/api/v1/flows", "/langflow/onlyflow/api/v1/flows"},
		{"target with slash", "http://backend:7860/", false, "/health", "/health"},
		{"strip basename", "http://backend:7860", true, "/onlyflow/api/v1/flows/", "/api/v1/flows/"},
		{"strip mount only", "http://backend:7860", true, "/onlyflow", "/"},
		{"strip keeps foreign", "http://backend:7860", true, "/onlyflowx/api", "/onlyflowx/api"},
		{"strip with prefix", "http://backend:7860/lf/", true, "/onlyflow/health", "/lf/health"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := newConfig(tc.target)
			cfg.ProxyStripBasename.Value = tc.strip
			assert.Equal(t, tc.want, newService(t, cfg).UpstreamPath(tc.path))
		})
	}
}

func TestHealth_OKAndCached(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/onlyflow/health_check", r.URL.Path)
		w.Write([]byte(`{"status":"ok","chat":"ok","db":"ok"}`))
	}))
	defer srv.Close()

	s := newService(t, newConfig(srv.URL))

	st, err := s.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Healthy)
	assert.Equal(t, "ok", st.Status)
	assert.Equal(t, srv.URL, st.Target)

	_, err = s.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "второй запрос берется из кеша")
}

func TestHealth_NotOK(t *testing.T) {
	cases := []struct {
		name string
		code int
		body string
	}{
		{"status error", http.StatusOK, `{"status":"error","db":"down"}`},
		{"bad json", http.StatusOK, `status ok`},
		{"http 500", http.StatusInternalServerError, `{"status":"ok"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			st, err := newService(t, newConfig(srv.URL)).Health(context.Background())
			assert.True(t, errors.Is(err, service.ErrUpstreamUnavailable))
			assert.False(t, st.Healthy)
			assert.NotEmpty(t, st.Error)
		})
	}
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	s := newService(t, newConfig(url))
	_, err := s.Health(context.Background())
	assert.True(t, errors.Is(err, service.ErrUpstreamUnavailable))

	// закешированная ошибка тоже ErrUpstreamUnavailable
	_, err = s.Health(context.Background())
	assert.True(t, errors.Is(err, service.ErrUpstreamUnavailable))
}

func TestWait_BecomesHealthy(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	cfg := newConfig(srv.URL)
	cfg.UpstreamWait.Value = 10 * time.Second
	s := newService(t, cfg)

	require.NoError(t, s.Wait(context.Background()))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&hits), int32(3))

	st, err := s.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Healthy)
}

func TestWait_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := newConfig(srv.URL)
	cfg.UpstreamWait.Value = 300 * time.Millisecond
	s := newService(t, cfg)

	start := time.Now()
	err := s.Wait(context.Background())
	assert.True(t, errors.Is(err, service.ErrUpstreamUnavailable))
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestPingAndAlive(t *testing.T) {
	cfg := newConfig("http://backend:7860")
	lib.SetPingConfig(cfg, "test")
	s := newService(t, cfg)

	pong, err := s.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/onlyflow/", pong.Basename)
	assert.NotEmpty(t, pong.ReplicaID)

	alive, err := s.Alive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alive", alive.Status)
	assert.Equal(t, "http://backend:7860", alive.Config.ProxyTarget)
	assert.Equal(t, "/onlyflow/", s.Routes().BaseName)
	assert.Equal(t, "backend:7860", s.Target().Host)
}
