package repositories

import (
	"context"
	"net/url"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
)

type TicketRepositoryInterface interface {
	AssignTicket(ctx context.Context, req request_models.AssignTicketRequest) (response_models.MessageResponse, error)
	ListTravelerTickets(ctx context.Context, travelerID string) ([]string, error)
	ListTickets(ctx context.Context) ([]response_models.Ticket, error)
}

type TicketRepository struct {
	*BackendRepository
}

func NewTicketRepository(backend *BackendRepository) TicketRepositoryInterface {
	return &TicketRepository{BackendRepository: backend}
}

func (r *TicketRepository) AssignTicket(ctx context.Context, req request_models.AssignTicketRequest) (response_models.MessageResponse, error) {
	return r.post(ctx, "/add_ticket_voyageur/", req)
}

// ListTravelerTickets returns the ticket ids of a traveler. The backend answers
// {message} without "tickets" when there are none, which decodes to an empty list.
func (r *TicketRepository) ListTravelerTickets(ctx context.Context, travelerID string) ([]string, error) {
	var envelope response_models.TravelerTicketsEnvelope
	if err := r.get(ctx, "/tickets/{traveler}", "/tickets/"+url.PathEscape(travelerID), &envelope); err != nil {
		return nil, err
	}
	if envelope.Tickets == nil {
		return []string{}, nil
	}
	return envelope.Tickets, nil
}

func (r *TicketRepository) ListTickets(ctx context.Context) ([]response_models.Ticket, error) {
	var envelope response_models.TicketsEnvelope
	if err := r.get(ctx, "/tickets/", "/tickets/", &envelope); err != nil {
		return nil, err
	}
	if envelope.Tickets == nil {
		return []response_models.Ticket{}, nil
	}
	return envelope.Tickets, nil
}
