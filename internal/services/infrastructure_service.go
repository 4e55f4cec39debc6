package services

import (
	"context"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/repositories"
)

const infrastructureCreated = "✅ Infrastructure ajoutée avec succès !"

type InfrastructureServiceInterface interface {
	ListInfrastructures(ctx context.Context, session string) ListResult[response_models.Infrastructure]
	CurrentInfrastructures(ctx context.Context, session string) ListResult[response_models.Infrastructure]
	AddInfrastructure(ctx context.Context, req request_models.AddInfrastructureRequest) Outcome
}

type InfrastructureService struct {
	infraRepo repositories.InfrastructureRepositoryInterface
	lists     *ListKeeper
}

func NewInfrastructureService(infraRepo repositories.InfrastructureRepositoryInterface, lists *ListKeeper) InfrastructureServiceInterface {
	return &InfrastructureService{infraRepo: infraRepo, lists: lists}
}

func (s *InfrastructureService) ListInfrastructures(ctx context.Context, session string) ListResult[response_models.Infrastructure] {
	return fetchList(ctx, s.lists, session, "infrastructures", s.infraRepo.ListInfrastructures)
}

func (s *InfrastructureService) CurrentInfrastructures(ctx context.Context, session string) ListResult[response_models.Infrastructure] {
	return currentList(ctx, s.lists, session, "infrastructures", s.infraRepo.ListInfrastructures)
}

func (s *InfrastructureService) AddInfrastructure(ctx context.Context, req request_models.AddInfrastructureRequest) Outcome {
	msg, err := s.infraRepo.CreateInfrastructure(ctx, req)
	if err != nil {
		return refused(err)
	}
	return accepted(msg, infrastructureCreated)
}
