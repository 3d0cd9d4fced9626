package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	lib "git.edtech.vm.prod-6.cloud.el/onlyflow/lib"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/logger"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/model"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/service"
)

const shutdownTimeout = 5 * time.Second

type httpserver struct {
	ctx    context.Context
	cfg    model.Config
	src    service.Service
	logger lib.Log

	serviceVersion string
	hashCommit     string
}

type Server interface {
	Run() (err error)
	Handler() http.Handler
}

// Handler собранный роутер шлюза
func (h *httpserver) Handler() http.Handler {
	return h.NewRouter()
}

// Run server, останавливается при отмене контекста
func (h *httpserver) Run() error {
	done := color.Green("[OK]")
	fail := color.Red("[Fail]")

	srv := &http.Server{
		Addr:         ":" + h.cfg.Port,
		Handler:      h.NewRouter(),
		ReadTimeout:  h.cfg.ReadTimeout.Value,
		WriteTimeout: h.cfg.WriteTimeout.Value,
	}

	routes := h.src.Routes()
	fmt.Printf("%s Gateway run (port:%s, basename:%q, target:%s)\n", done, h.cfg.Port, routes.BaseName, h.cfg.ProxyTarget)
	logger.Info(h.ctx, "Запуск http сервера",
		zap.String("port", h.cfg.Port),
		zap.String("basename", routes.BaseName),
		zap.String("target", h.cfg.ProxyTarget),
		zap.Strings("api routes", routes.APIRoutes),
		zap.String("version", h.serviceVersion),
		zap.String("commit", h.hashCommit))

	errCh := make(chan error, 1)
	lib.RunAsync(h.ctx, func() {
		errCh <- srv.ListenAndServe()
	})

	select {
	case <-h.ctx.Done():
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info(ctx, "Остановка http сервера", zap.String("port", h.cfg.Port))
		if e := srv.Shutdown(ctx); e != nil {
			return errors.Wrap(e, "SERVER shutdown")
		}
		return nil
	case e := <-errCh:
		if e != nil && !errors.Is(e, http.ErrServerClosed) {
			fmt.Printf("%s Error run (port:%s) err: %s\n", fail, h.cfg.Port, e)
			return errors.Wrap(e, "SERVER run")
		}
		return nil
	}
}

func New(
	ctx context.Context,
	cfg model.Config,
	src service.Service,
	logger lib.Log,
	serviceVersion string,
	hashCommit string,
) Server {
	return &httpserver{
		ctx,
		cfg,
		src,
		logger,
		serviceVersion,
		hashCommit,
	}
}
