package app

import (
	"github.com/cyltest/api/config"
	"github.com/cyltest/api/repository"
	"github.com/cyltest/api/rest"
	"github.com/cyltest/api/service"
	"go.uber.org/fx"
)

func ConfigModule(configName string, configPath string) (fx.Option, error) {
	cfg, err := config.InitAPIConfig(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		fx.Provide(func() config.APIConfig {
			return cfg
		}),
		fx.Provide(func(apiCfg config.APIConfig) config.MongoDBConfig {
			return apiCfg.MongoDB
		}),
		fx.Provide(func(apiCfg config.APIConfig) config.ServerConfig {
			return apiCfg.Server
		}),
		fx.Provide(func(apiCfg config.APIConfig) config.KeyConfig {
			return apiCfg.Key
		}),
		fx.Provide(func(apiCfg config.APIConfig) config.AccountConfig {
			return apiCfg.Account
		}),
		fx.Provide(func(apiCfg config.APIConfig) config.AuditConfig {
			return apiCfg.Audit
		}),
	), nil
}

// RepoModule creates an Fx module that provides the repository layer, return domain.Repository
func RepoModule(configName string, configPath string) (fx.Option, error) {
	configModule, err := ConfigModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		fx.Provide(repository.NewRepository),
	), nil
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(configName string, configPath string) (fx.Option, error) {
	repoModule, err := RepoModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		repoModule,
		fx.Provide(service.NewService),
	), nil
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(configName string, configPath string) (fx.Option, error) {
	serviceModule, err := ServiceModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	), nil
}
