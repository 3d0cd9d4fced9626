package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"

	"go.uber.org/zap"

	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/logger"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/servers/httpserver/handlers"
)

// newProxy проксирует API в бекенд
// путь на бекенде: префикс из PROXY_TARGET + путь запроса (без BASENAME при PROXY_STRIP_BASENAME)
func (h *httpserver) newProxy() *httputil.ReverseProxy {
	target := h.src.Target()

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = h.cfg.ProxyTimeout.Value

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)

			rawPath := h.src.UpstreamPath(pr.In.URL.EscapedPath())
			if p, err := url.PathUnescape(rawPath); err == nil {
				pr.Out.URL.Path = p
				pr.Out.URL.RawPath = rawPath
			} else {
				pr.Out.URL.Path = rawPath
				pr.Out.URL.RawPath = ""
			}

			pr.SetXForwarded()

			logger.Debug(pr.In.Context(), "proxy request",
				zap.String("method", pr.In.Method),
				zap.String("from", pr.In.URL.Path),
				zap.String("to", pr.Out.URL.String()))
		},
		Transport:     transport,
		FlushInterval: -1,
		ErrorHandler:  h.proxyError,
	}
}

func (h *httpserver) proxyError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		logger.Warn(r.Context(), "proxy request canceled by client", zap.String("path", r.URL.Path))
		return
	}

	logger.Error(r.Context(), "proxy request failed",
		zap.String("path", r.URL.Path),
		zap.String("target", h.cfg.ProxyTarget),
		zap.Error(err))
	handlers.WriteError(r.Context(), w, http.StatusBadGateway, err, "upstream unavailable")
}
