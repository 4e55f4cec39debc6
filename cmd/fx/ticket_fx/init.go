package ticket_fx

import (
	"go.uber.org/fx"
	"smartcity/internal/api/controllers"
	"smartcity/internal/repositories"
	"smartcity/internal/services"
)

var Module = fx.Provide(
	provideTicketRepo, provideTicketService, provideTicketController,
)

func provideTicketRepo(backend *repositories.BackendRepository) repositories.TicketRepositoryInterface {
	return repositories.NewTicketRepository(backend)
}

func provideTicketService(ticketRepo repositories.TicketRepositoryInterface, lists *services.ListKeeper) services.TicketServiceInterface {
	return services.NewTicketService(ticketRepo, lists)
}

func provideTicketController(ticketService services.TicketServiceInterface) *controllers.TicketController {
	return controllers.NewTicketController(ticketService)
}
