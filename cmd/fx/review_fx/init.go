package review_fx

import (
	"go.uber.org/fx"
	"smartcity/internal/api/controllers"
	"smartcity/internal/repositories"
	"smartcity/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService, provideReviewController,
)

func provideReviewRepo(backend *repositories.BackendRepository) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(backend)
}

func provideReviewService(reviewRepo repositories.ReviewRepositoryInterface, lists *services.ListKeeper) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, lists)
}

func provideReviewController(reviewService services.ReviewServiceInterface) *controllers.ReviewController {
	return controllers.NewReviewController(reviewService)
}
