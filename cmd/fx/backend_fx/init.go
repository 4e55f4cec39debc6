package backend_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"smartcity/internal/config"
	"smartcity/internal/infra"
	"smartcity/internal/repositories"
	"smartcity/internal/services"
)

var Module = fx.Provide(
	provideBackend, provideBackendRepo, provideHealthService)

func provideBackend(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) *infra.Backend {
	backend := infra.InitBackend(cfg, log)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseBackend(backend, log)
			return nil
		},
	})
	return backend
}

func provideBackendRepo(backend *infra.Backend, log *zap.Logger) *repositories.BackendRepository {
	return repositories.NewBackendRepository(backend, log)
}

func provideHealthService(backend *repositories.BackendRepository) services.HealthServiceInterface {
	return services.NewHealthService(backend)
}
