package daemon

import (
	"context"

	"github.com/lgrossi/banter/internal/chat"
	"github.com/lgrossi/banter/internal/config"
	"github.com/lgrossi/banter/internal/httpapi"
	"github.com/lgrossi/banter/internal/hub"
	"github.com/lgrossi/banter/internal/logging"
	"github.com/lgrossi/banter/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the daemon startup options.
type Params struct {
	ConfigPath string // optional; empty means defaults + env
}

// Module returns the fx module for the daemon, composing all providers and
// lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideMetrics,
			provideService,
			provideHub,
			provideHTTPServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	return config.Load(p.ConfigPath)
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.LogPath, "banterd")
}

func provideMetrics() (*prometheus.Registry, *metrics.Set) {
	reg := prometheus.NewRegistry()
	return reg, metrics.New(reg)
}

func provideService(set *metrics.Set, logger *zap.Logger) *chat.Service {
	return chat.NewService(chat.NewRegistry(), chat.NewStore(), set, logger)
}

func provideHub(svc *chat.Service, cfg *config.Config, logger *zap.Logger) *hub.Hub {
	return hub.New(svc, logger, cfg.SendBuffer)
}

func provideHTTPServer(cfg *config.Config, h *hub.Hub, reg *prometheus.Registry, logger *zap.Logger) *httpapi.Server {
	return httpapi.New(cfg, h, reg, logger)
}

func registerLifecycle(lc fx.Lifecycle, h *hub.Hub, srv *httpapi.Server, logger *zap.Logger) {
	runCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go h.Run(runCtx)
			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("http server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			srv.Stop(ctx)
			cancel()
			logger.Info("daemon stopped")
			return nil
		},
	})
}
