package recharge_fx

import (
	"go.uber.org/fx"
	"smartcity/internal/api/controllers"
	"smartcity/internal/repositories"
	"smartcity/internal/services"
)

var Module = fx.Provide(
	provideRechargeRepo, provideRechargeService, provideRechargeController,
)

func provideRechargeRepo(backend *repositories.BackendRepository) repositories.RechargeRepositoryInterface {
	return repositories.NewRechargeRepository(backend)
}

func provideRechargeService(rechargeRepo repositories.RechargeRepositoryInterface, lists *services.ListKeeper) services.RechargeServiceInterface {
	return services.NewRechargeService(rechargeRepo, lists)
}

func provideRechargeController(rechargeService services.RechargeServiceInterface) *controllers.RechargeController {
	return controllers.NewRechargeController(rechargeService)
}
