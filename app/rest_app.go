package app

import (
	"context"
	"time"

	"github.com/cyltest/api/config"
	"github.com/cyltest/api/domain"
	"github.com/cyltest/api/migration"
	"github.com/cyltest/api/pkg/logger"
	"github.com/cyltest/api/rest"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func NewRestApp(configName string, configDirPath string) (*fx.App, error) {
	handlerModule, err := HandlerModule(configName, configDirPath)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		handlerModule,
		fx.Invoke(func(cfg config.APIConfig) {
			logger.SetLevel(cfg.Logging.Level)
		}),
		fx.Invoke(migration.RunMongoMigration),
		// The writer hook registers first so it is running before the
		// server accepts a request that emits.
		fx.Invoke(StartAuditWriter),
		fx.Invoke(StartRestApp),
		fx.Invoke(StartRetentionSweeper),
		fx.Invoke(BootstrapAdminAccount),
	)
	return app, nil
}

func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler) error {
	engine := echo.New()
	handler.SetupRoutes(engine)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = ":8080"
			}
			go func() {
				logger.Logger(ctx).Info().Msgf("starting rest server on port %s", serverHost)
				if err := engine.Start(serverHost); err != nil {
					logger.Logger(ctx).Fatal().Err(err).Msgf("start rest server fail on port %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			return engine.Shutdown(ctx)
		},
	})

	return nil
}

// StartAuditWriter ties the background audit writer to the app lifecycle.
// Stop drains entries accepted before shutdown.
func StartAuditWriter(lc fx.Lifecycle, svc domain.Service) error {
	lc.Append(fx.Hook{
		OnStart: svc.StartAuditWriter,
		OnStop:  svc.StopAuditWriter,
	})
	return nil
}

// StartRetentionSweeper starts a background goroutine that periodically
// removes audit entries past their advisory retention horizon.
func StartRetentionSweeper(lc fx.Lifecycle, svc domain.Service, cfg config.AuditConfig) error {
	if cfg.SweepIntervalMin <= 0 {
		return nil
	}
	sweepInterval := time.Duration(cfg.SweepIntervalMin) * time.Minute
	stopCh := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				bgCtx := context.Background()
				logger.Logger(bgCtx).Info().Msgf("retention sweeper starting, interval %s", sweepInterval)

				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if _, err := svc.PurgeExpiredAuditLogs(bgCtx); err != nil {
							logger.Logger(bgCtx).Warn().Err(err).Msg("retention sweep failed")
						}
					case <-stopCh:
						logger.Logger(bgCtx).Info().Msg("retention sweeper stopped")
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stopCh)
			return nil
		},
	})

	return nil
}

// BootstrapAdminAccount seeds the configured admin account on startup.
func BootstrapAdminAccount(lc fx.Lifecycle, svc domain.Service, cfg config.AccountConfig) error {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.CreateAdminUserIfNotExists(ctx, cfg.AdminEmail, string(cfg.AdminPassword))
		},
	})
	return nil
}
