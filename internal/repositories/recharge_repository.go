package repositories

import (
	"context"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
)

type RechargeRepositoryInterface interface {
	ListStations(ctx context.Context) ([]response_models.ChargingStation, error)
	ListLinks(ctx context.Context) ([]response_models.RechargeLink, error)
	CreateStation(ctx context.Context, req request_models.AddChargingStationRequest) (response_models.MessageResponse, error)
	CreateLink(ctx context.Context, req request_models.AddRechargeLinkRequest) (response_models.MessageResponse, error)
}

type RechargeRepository struct {
	*BackendRepository
}

func NewRechargeRepository(backend *BackendRepository) RechargeRepositoryInterface {
	return &RechargeRepository{BackendRepository: backend}
}

func (r *RechargeRepository) ListStations(ctx context.Context) ([]response_models.ChargingStation, error) {
	var stations []response_models.ChargingStation
	if err := r.get(ctx, "/stations_recharge/", "/stations_recharge/", &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *RechargeRepository) ListLinks(ctx context.Context) ([]response_models.RechargeLink, error) {
	var envelope response_models.RechargeLinksEnvelope
	if err := r.get(ctx, "/reseaux/seRecharge", "/reseaux/seRecharge", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (r *RechargeRepository) CreateStation(ctx context.Context, req request_models.AddChargingStationRequest) (response_models.MessageResponse, error) {
	return r.post(ctx, "/add_station_recharge/", req)
}

func (r *RechargeRepository) CreateLink(ctx context.Context, req request_models.AddRechargeLinkRequest) (response_models.MessageResponse, error) {
	return r.post(ctx, "/reseaux/seRecharge", req)
}
