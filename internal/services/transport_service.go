package services

import (
	"context"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/repositories"
)

const networkCreated = "✅ Réseau de transport ajouté avec succès !"

type TransportServiceInterface interface {
	ListNetworks(ctx context.Context, session string) ListResult[response_models.TransportNetwork]
	CurrentNetworks(ctx context.Context, session string) ListResult[response_models.TransportNetwork]
	AddNetwork(ctx context.Context, req request_models.AddTransportNetworkRequest) Outcome
}

type TransportService struct {
	transportRepo repositories.TransportRepositoryInterface
	lists         *ListKeeper
}

func NewTransportService(transportRepo repositories.TransportRepositoryInterface, lists *ListKeeper) TransportServiceInterface {
	return &TransportService{transportRepo: transportRepo, lists: lists}
}

func (s *TransportService) ListNetworks(ctx context.Context, session string) ListResult[response_models.TransportNetwork] {
	return fetchList(ctx, s.lists, session, "networks", s.transportRepo.ListNetworks)
}

func (s *TransportService) CurrentNetworks(ctx context.Context, session string) ListResult[response_models.TransportNetwork] {
	return currentList(ctx, s.lists, session, "networks", s.transportRepo.ListNetworks)
}

func (s *TransportService) AddNetwork(ctx context.Context, req request_models.AddTransportNetworkRequest) Outcome {
	msg, err := s.transportRepo.CreateNetwork(ctx, req)
	if err != nil {
		return refused(err)
	}
	return accepted(msg, networkCreated)
}
