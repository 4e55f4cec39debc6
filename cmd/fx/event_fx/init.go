package event_fx

import (
	"go.uber.org/fx"
	"smartcity/internal/api/controllers"
	"smartcity/internal/repositories"
	"smartcity/internal/services"
)

var Module = fx.Provide(
	provideEventRepo, provideEventService, provideEventController,
)

func provideEventRepo(backend *repositories.BackendRepository) repositories.EventRepositoryInterface {
	return repositories.NewEventRepository(backend)
}

func provideEventService(
	eventRepo repositories.EventRepositoryInterface,
	infraRepo repositories.InfrastructureRepositoryInterface,
	lists *services.ListKeeper,
) services.EventServiceInterface {
	return services.NewEventService(eventRepo, infraRepo, lists)
}

func provideEventController(eventService services.EventServiceInterface) *controllers.EventController {
	return controllers.NewEventController(eventService)
}
