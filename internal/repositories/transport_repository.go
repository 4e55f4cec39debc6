package repositories

import (
	"context"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
)

type TransportRepositoryInterface interface {
	ListNetworks(ctx context.Context) ([]response_models.TransportNetwork, error)
	CreateNetwork(ctx context.Context, req request_models.AddTransportNetworkRequest) (response_models.MessageResponse, error)
}

type TransportRepository struct {
	*BackendRepository
}

func NewTransportRepository(backend *BackendRepository) TransportRepositoryInterface {
	return &TransportRepository{BackendRepository: backend}
}

func (r *TransportRepository) ListNetworks(ctx context.Context) ([]response_models.TransportNetwork, error) {
	var networks []response_models.TransportNetwork
	if err := r.get(ctx, "/reseaux_transport/", "/reseaux_transport/", &networks); err != nil {
		return nil, err
	}
	return networks, nil
}

func (r *TransportRepository) CreateNetwork(ctx context.Context, req request_models.AddTransportNetworkRequest) (response_models.MessageResponse, error) {
	return r.post(ctx, "/add_reseau_transport/", req)
}
