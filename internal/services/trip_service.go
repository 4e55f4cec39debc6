package services

import (
	"context"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/repositories"
)

const (
	tripCreated     = "✅ Trajet ajouté avec succès !"
	tripLinkCreated = "✅ Relation utilisateur → trajet ajoutée avec succès !"
)

type TripServiceInterface interface {
	ListRelations(ctx context.Context, session string) ListResult[response_models.TripRelation]
	CurrentRelations(ctx context.Context, session string) ListResult[response_models.TripRelation]
	AddTrip(ctx context.Context, req request_models.AddTripRequest) Outcome
	AddTripLink(ctx context.Context, req request_models.AddTripLinkRequest) Outcome
}

type TripService struct {
	tripRepo repositories.TripRepositoryInterface
	lists    *ListKeeper
}

func NewTripService(tripRepo repositories.TripRepositoryInterface, lists *ListKeeper) TripServiceInterface {
	return &TripService{tripRepo: tripRepo, lists: lists}
}

func (s *TripService) ListRelations(ctx context.Context, session string) ListResult[response_models.TripRelation] {
	return fetchList(ctx, s.lists, session, "trip-relations", s.tripRepo.ListTripRelations)
}

func (s *TripService) CurrentRelations(ctx context.Context, session string) ListResult[response_models.TripRelation] {
	return currentList(ctx, s.lists, session, "trip-relations", s.tripRepo.ListTripRelations)
}

func (s *TripService) AddTrip(ctx context.Context, req request_models.AddTripRequest) Outcome {
	msg, err := s.tripRepo.CreateTrip(ctx, req)
	if err != nil {
		return refused(err)
	}
	return accepted(msg, tripCreated)
}

func (s *TripService) AddTripLink(ctx context.Context, req request_models.AddTripLinkRequest) Outcome {
	msg, err := s.tripRepo.CreateTripLink(ctx, req)
	if err != nil {
		return refused(err)
	}
	return accepted(msg, tripLinkCreated)
}
