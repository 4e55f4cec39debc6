package transport_fx

import (
	"go.uber.org/fx"
	"smartcity/internal/api/controllers"
	"smartcity/internal/repositories"
	"smartcity/internal/services"
)

var Module = fx.Provide(
	provideTransportRepo, provideTransportService, provideTransportController,
)

func provideTransportRepo(backend *repositories.BackendRepository) repositories.TransportRepositoryInterface {
	return repositories.NewTransportRepository(backend)
}

func provideTransportService(transportRepo repositories.TransportRepositoryInterface, lists *services.ListKeeper) services.TransportServiceInterface {
	return services.NewTransportService(transportRepo, lists)
}

func provideTransportController(transportService services.TransportServiceInterface) *controllers.TransportController {
	return controllers.NewTransportController(transportService)
}
