package infrastructure_fx

import (
	"go.uber.org/fx"
	"smartcity/internal/api/controllers"
	"smartcity/internal/repositories"
	"smartcity/internal/services"
)

// The infrastructure repository is shared with the events screen.
var Module = fx.Provide(
	provideInfrastructureRepo, provideInfrastructureService, provideInfrastructureController,
)

func provideInfrastructureRepo(backend *repositories.BackendRepository) repositories.InfrastructureRepositoryInterface {
	return repositories.NewInfrastructureRepository(backend)
}

func provideInfrastructureService(infraRepo repositories.InfrastructureRepositoryInterface, lists *services.ListKeeper) services.InfrastructureServiceInterface {
	return services.NewInfrastructureService(infraRepo, lists)
}

func provideInfrastructureController(infrastructureService services.InfrastructureServiceInterface) *controllers.InfrastructureController {
	return controllers.NewInfrastructureController(infrastructureService)
}
