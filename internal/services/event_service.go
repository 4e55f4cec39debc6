package services

import (
	"context"
	"sync"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/repositories"
)

const eventCreated = "✅ Événement ajouté avec succès !"

type EventServiceInterface interface {
	ListEvents(ctx context.Context, session string) ListResult[response_models.Event]
	// LoadEventsPage fetches the events and the infrastructure reference list side by side.
	LoadEventsPage(ctx context.Context, session string) (ListResult[response_models.Event], ListResult[response_models.Infrastructure])
	CurrentEvents(ctx context.Context, session string) ListResult[response_models.Event]
	CurrentInfrastructures(ctx context.Context, session string) ListResult[response_models.Infrastructure]
	AddEvent(ctx context.Context, req request_models.AddEventRequest) Outcome
}

type EventService struct {
	eventRepo repositories.EventRepositoryInterface
	infraRepo repositories.InfrastructureRepositoryInterface
	lists     *ListKeeper
}

func NewEventService(
	eventRepo repositories.EventRepositoryInterface,
	infraRepo repositories.InfrastructureRepositoryInterface,
	lists *ListKeeper,
) EventServiceInterface {
	return &EventService{eventRepo: eventRepo, infraRepo: infraRepo, lists: lists}
}

func (s *EventService) ListEvents(ctx context.Context, session string) ListResult[response_models.Event] {
	return fetchList(ctx, s.lists, session, "events", s.eventRepo.ListEvents)
}

func (s *EventService) LoadEventsPage(ctx context.Context, session string) (ListResult[response_models.Event], ListResult[response_models.Infrastructure]) {
	var (
		events ListResult[response_models.Event]
		infras ListResult[response_models.Infrastructure]
		wg     sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		events = s.ListEvents(ctx, session)
	}()
	go func() {
		defer wg.Done()
		infras = fetchList(ctx, s.lists, session, "infrastructures", s.infraRepo.ListInfrastructures)
	}()
	wg.Wait()
	return events, infras
}

func (s *EventService) CurrentEvents(ctx context.Context, session string) ListResult[response_models.Event] {
	return currentList(ctx, s.lists, session, "events", s.eventRepo.ListEvents)
}

func (s *EventService) CurrentInfrastructures(ctx context.Context, session string) ListResult[response_models.Infrastructure] {
	return currentList(ctx, s.lists, session, "infrastructures", s.infraRepo.ListInfrastructures)
}

func (s *EventService) AddEvent(ctx context.Context, req request_models.AddEventRequest) Outcome {
	msg, err := s.eventRepo.CreateEvent(ctx, req)
	if err != nil {
		return refused(err)
	}
	return accepted(msg, eventCreated)
}
