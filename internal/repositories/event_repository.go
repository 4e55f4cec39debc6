package repositories

import (
	"context"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
)

type EventRepositoryInterface interface {
	ListEvents(ctx context.Context) ([]response_models.Event, error)
	CreateEvent(ctx context.Context, req request_models.AddEventRequest) (response_models.MessageResponse, error)
}

type EventRepository struct {
	*BackendRepository
}

func NewEventRepository(backend *BackendRepository) EventRepositoryInterface {
	return &EventRepository{BackendRepository: backend}
}

func (r *EventRepository) ListEvents(ctx context.Context) ([]response_models.Event, error) {
	var events []response_models.Event
	if err := r.get(ctx, "/events/", "/events/", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, req request_models.AddEventRequest) (response_models.MessageResponse, error) {
	return r.post(ctx, "/add_event/", req)
}
