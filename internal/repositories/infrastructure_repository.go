package repositories

import (
	"context"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
)

type InfrastructureRepositoryInterface interface {
	ListInfrastructures(ctx context.Context) ([]response_models.Infrastructure, error)
	CreateInfrastructure(ctx context.Context, req request_models.AddInfrastructureRequest) (response_models.MessageResponse, error)
}

type InfrastructureRepository struct {
	*BackendRepository
}

func NewInfrastructureRepository(backend *BackendRepository) InfrastructureRepositoryInterface {
	return &InfrastructureRepository{BackendRepository: backend}
}

func (r *InfrastructureRepository) ListInfrastructures(ctx context.Context) ([]response_models.Infrastructure, error) {
	var infras []response_models.Infrastructure
	if err := r.get(ctx, "/get_infrastructures/", "/get_infrastructures/", &infras); err != nil {
		return nil, err
	}
	return infras, nil
}

func (r *InfrastructureRepository) CreateInfrastructure(ctx context.Context, req request_models.AddInfrastructureRequest) (response_models.MessageResponse, error) {
	return r.post(ctx, "/add_infrastructure/", req)
}
