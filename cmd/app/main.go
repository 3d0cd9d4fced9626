package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/gommon/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	lib "git.edtech.vm.prod-6.cloud.el/onlyflow/lib"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/internal/utils"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/logger"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/model"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/servers"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/servers/httpserver"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/servers/httpserver/docs"
	"git.edtech.vm.prod-6.cloud.el/onlyflow/lib/pkg/service"
)

var (
	serviceVersion string
	hashCommit     string
)

func main() {
	err := lib.RunServiceFuncCLI(context.Background(), os.Args, os.Stdout, Start)
	if err != nil {
		fmt.Printf("%s (os.exit 1)\n", err)
		os.Exit(1)
	}
}

// Start стартуем шлюз фронтенда
func Start(ctxm context.Context, p lib.StartParams) error {
	var cfg model.Config
	var err error

	done := color.Green("[OK]")
	fail := color.Red("[Fail]")

	ctx, cancel := context.WithCancel(ctxm)
	defer cancel()

	_, err = lib.ConfigLoad(p.Config, &cfg)
	switch {
	case errors.Is(err, lib.ErrConfig):
		fmt.Printf("%s Config file is not set, using environment\n", done)
	case err != nil:
		return fmt.Errorf("%s (%s)", "Error. Load config is failed.", err)
	}

	if p.Port != "" {
		cfg.Port = p.Port
	}
	if p.Basename != "" {
		cfg.Basename = p.Basename
	}
	if p.Target != "" {
		cfg.ProxyTarget = p.Target
	}
	if p.Static != "" {
		cfg.StaticDir = p.Static
	}
	cfg.Basename = utils.NormalizeBasename(cfg.Basename)

	cfg.ServiceVersion = serviceVersion
	cfg.HashCommit = hashCommit
	cfg.HashRun = ksuid.New().String()
	docs.SwaggerInfo.Version = serviceVersion

	if err = cfg.Validate(); err != nil {
		fmt.Printf("%s Config is invalid: %s\n", fail, err)
		return err
	}

	logs, err := lib.NewLogger(lib.ConfigLogger{
		Level:  cfg.LogsLevel,
		Uid:    cfg.HashRun,
		Name:   cfg.ServiceName,
		Srv:    "front",
		Config: p.Config,
		File: lib.ConfigFileLogger{
			Enabled:    cfg.LogsFile.V(),
			Dir:        cfg.LogsDir,
			MaxSizeMB:  cfg.LogsMaxSizeMB.Value,
			MaxBackups: cfg.LogsMaxBackups.Value,
		},
	})
	if err != nil {
		fmt.Printf("%s Error init logger: %s\n", fail, err)
		return err
	}
	defer logs.Close()

	err = logger.SetupDefaultLogger(cfg.ServiceName,
		logger.WithCustomField("service-id", cfg.HashRun),
		logger.WithCustomField("config-id", p.Config),
	)
	if err != nil {
		fmt.Printf("%s Error init zap logger: %s\n", fail, err)
		return err
	}
	logger.SetLevel(cfg.LogsLevel)
	ctx = logger.SetConfigIDCtx(ctx, p.Config)

	fmt.Printf("%s Enabled logs. Level:%s, File:%t, Dir:%s\n", done, cfg.LogsLevel, cfg.LogsFile.V(), cfg.LogsDir)
	logs.Info("Запускаем шлюз фронтенда", cfg.Basename, cfg.ProxyTarget)

	routes := lib.NewRoutes(cfg.Basename)
	if cfg.DocsLink != "" {
		routes.DocsLink = cfg.DocsLink
	}

	lib.SetPingConfig(cfg, p.Config)
	lib.SendServiceParamsToMetric(lib.ServiceParams{
		Name:        cfg.ServiceName,
		Version:     cfg.ServiceVersion,
		Status:      "run",
		Basename:    cfg.Basename,
		ProxyTarget: cfg.ProxyTarget,
		PortHTTP:    cfg.Port,
		Pid:         strconv.Itoa(os.Getpid()),
	})
	prometheus.MustRegister(lib.NewBuildInfo(cfg.ServiceName))
	lib.SetBuildInfo(serviceVersion, hashCommit, "")

	if _, err = lib.WaitPort(ctx, cfg.Port, 5, 500*time.Millisecond); err != nil {
		fmt.Printf("%s Port is busy: %s\n", fail, err)
		logs.Error(err, "port is busy")
		return err
	}

	src, err := service.New(cfg, routes)
	if err != nil {
		logs.Error(err, "init upstream")
		return err
	}
	defer src.Close()

	// бекенд может подняться позже шлюза, поэтому не готовность только логируем
	if !utils.GetEnvBool("ONLYFLOW_SKIP_WAIT", false) {
		if errW := src.Wait(ctx); errW != nil {
			fmt.Printf("%s Upstream %s is not ready: %s\n", fail, cfg.ProxyTarget, errW)
			logs.Warning("upstream is not ready", errW)
		} else {
			fmt.Printf("%s Upstream %s is ready\n", done, cfg.ProxyTarget)
		}
	}

	httpsrv := httpserver.New(
		ctx,
		cfg,
		src,
		logs,
		serviceVersion,
		hashCommit,
	)

	// для завершения сервиса ждем сигнал в процесс
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
	lib.RunAsync(ctx, func() { ListenForShutdown(ch, cancel) })

	srv := servers.New(
		utils.GetEnv("ONLYFLOW_SERVERS", "http"),
		src,
		httpsrv,
		cfg,
	)
	if err = srv.Run(); err != nil {
		logger.Error(ctx, "gateway stopped with error", zap.Error(err))
		return err
	}

	fmt.Printf("%s Gateway is stopped\n", color.Grey("[OK]"))

	return nil
}

func ListenForShutdown(ch <-chan os.Signal, cancelFunc context.CancelFunc) {
	sig := <-ch
	logger.Info(context.Background(), "Получен сигнал остановки", zap.String("signal", sig.String()))
	cancelFunc()
}
