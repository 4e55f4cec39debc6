package repositories

import (
	"context"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
)

type TripRepositoryInterface interface {
	ListTripRelations(ctx context.Context) ([]response_models.TripRelation, error)
	CreateTrip(ctx context.Context, req request_models.AddTripRequest) (response_models.MessageResponse, error)
	CreateTripLink(ctx context.Context, req request_models.AddTripLinkRequest) (response_models.MessageResponse, error)
}

type TripRepository struct {
	*BackendRepository
}

func NewTripRepository(backend *BackendRepository) TripRepositoryInterface {
	return &TripRepository{BackendRepository: backend}
}

func (r *TripRepository) ListTripRelations(ctx context.Context) ([]response_models.TripRelation, error) {
	var envelope response_models.TripRelationsEnvelope
	if err := r.get(ctx, "/utilisateurs/trajets/", "/utilisateurs/trajets/", &envelope); err != nil {
		return nil, err
	}
	return envelope.Relations, nil
}

func (r *TripRepository) CreateTrip(ctx context.Context, req request_models.AddTripRequest) (response_models.MessageResponse, error) {
	return r.post(ctx, "/add_trajet/", req)
}

func (r *TripRepository) CreateTripLink(ctx context.Context, req request_models.AddTripLinkRequest) (response_models.MessageResponse, error) {
	return r.post(ctx, "/utilisateur/effectue_trajet/", req)
}
