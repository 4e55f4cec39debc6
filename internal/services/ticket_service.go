package services

import (
	"context"
	"strings"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/repositories"
)

const ticketAssigned = "🎟️ Ticket attribué avec succès !"

type TicketServiceInterface interface {
	ListTickets(ctx context.Context, session string) ListResult[response_models.Ticket]
	// ListTravelerTickets returns an empty result without calling the backend for a blank traveler.
	ListTravelerTickets(ctx context.Context, session, travelerID string) ListResult[string]
	LoadTicketsPage(ctx context.Context, session, travelerID string) (ListResult[string], ListResult[response_models.Ticket])
	CurrentTickets(ctx context.Context, session string) ListResult[response_models.Ticket]
	CurrentTravelerTickets(ctx context.Context, session, travelerID string) ListResult[string]
	AssignTicket(ctx context.Context, req request_models.AssignTicketRequest) Outcome
}

type TicketService struct {
	ticketRepo repositories.TicketRepositoryInterface
	lists      *ListKeeper
}

func NewTicketService(ticketRepo repositories.TicketRepositoryInterface, lists *ListKeeper) TicketServiceInterface {
	return &TicketService{ticketRepo: ticketRepo, lists: lists}
}

func (s *TicketService) ListTickets(ctx context.Context, session string) ListResult[response_models.Ticket] {
	return fetchList(ctx, s.lists, session, "tickets", s.ticketRepo.ListTickets)
}

func (s *TicketService) travelerFetch(travelerID string) func(context.Context) ([]string, error) {
	return func(ctx context.Context) ([]string, error) {
		return s.ticketRepo.ListTravelerTickets(ctx, travelerID)
	}
}

func (s *TicketService) ListTravelerTickets(ctx context.Context, session, travelerID string) ListResult[string] {
	travelerID = strings.TrimSpace(travelerID)
	if travelerID == "" {
		return ListResult[string]{Items: []string{}}
	}
	return fetchList(ctx, s.lists, session, "tickets:"+travelerID, s.travelerFetch(travelerID))
}

func (s *TicketService) LoadTicketsPage(ctx context.Context, session, travelerID string) (ListResult[string], ListResult[response_models.Ticket]) {
	return s.ListTravelerTickets(ctx, session, travelerID), s.ListTickets(ctx, session)
}

func (s *TicketService) CurrentTickets(ctx context.Context, session string) ListResult[response_models.Ticket] {
	return currentList(ctx, s.lists, session, "tickets", s.ticketRepo.ListTickets)
}

func (s *TicketService) CurrentTravelerTickets(ctx context.Context, session, travelerID string) ListResult[string] {
	travelerID = strings.TrimSpace(travelerID)
	if travelerID == "" {
		return ListResult[string]{Items: []string{}}
	}
	return currentList(ctx, s.lists, session, "tickets:"+travelerID, s.travelerFetch(travelerID))
}

func (s *TicketService) AssignTicket(ctx context.Context, req request_models.AssignTicketRequest) Outcome {
	msg, err := s.ticketRepo.AssignTicket(ctx, req)
	if err != nil {
		return refused(err)
	}
	return accepted(msg, ticketAssigned)
}
