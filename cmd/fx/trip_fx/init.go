package trip_fx

import (
	"go.uber.org/fx"
	"smartcity/internal/api/controllers"
	"smartcity/internal/repositories"
	"smartcity/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripController,
)

func provideTripRepo(backend *repositories.BackendRepository) repositories.TripRepositoryInterface {
	return repositories.NewTripRepository(backend)
}

func provideTripService(tripRepo repositories.TripRepositoryInterface, lists *services.ListKeeper) services.TripServiceInterface {
	return services.NewTripService(tripRepo, lists)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
