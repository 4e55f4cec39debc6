package services

import (
	"context"
	"sync"

	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
	"smartcity/internal/repositories"
)

const (
	stationCreated = "✅ Station de recharge ajoutée avec succès !"
	linkCreated    = "✅ Relation réseau → station ajoutée avec succès !"
)

type RechargeServiceInterface interface {
	ListStations(ctx context.Context, session string) ListResult[response_models.ChargingStation]
	ListLinks(ctx context.Context, session string) ListResult[response_models.RechargeLink]
	LoadRechargePage(ctx context.Context, session string) (ListResult[response_models.ChargingStation], ListResult[response_models.RechargeLink])
	CurrentStations(ctx context.Context, session string) ListResult[response_models.ChargingStation]
	CurrentLinks(ctx context.Context, session string) ListResult[response_models.RechargeLink]
	AddStation(ctx context.Context, req request_models.AddChargingStationRequest) Outcome
	AddLink(ctx context.Context, req request_models.AddRechargeLinkRequest) Outcome
}

type RechargeService struct {
	rechargeRepo repositories.RechargeRepositoryInterface
	lists        *ListKeeper
}

func NewRechargeService(rechargeRepo repositories.RechargeRepositoryInterface, lists *ListKeeper) RechargeServiceInterface {
	return &RechargeService{rechargeRepo: rechargeRepo, lists: lists}
}

func (s *RechargeService) ListStations(ctx context.Context, session string) ListResult[response_models.ChargingStation] {
	return fetchList(ctx, s.lists, session, "stations", s.rechargeRepo.ListStations)
}

func (s *RechargeService) ListLinks(ctx context.Context, session string) ListResult[response_models.RechargeLink] {
	return fetchList(ctx, s.lists, session, "recharge-links", s.rechargeRepo.ListLinks)
}

func (s *RechargeService) LoadRechargePage(ctx context.Context, session string) (ListResult[response_models.ChargingStation], ListResult[response_models.RechargeLink]) {
	var (
		stations ListResult[response_models.ChargingStation]
		links    ListResult[response_models.RechargeLink]
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		stations = s.ListStations(ctx, session)
	}()
	go func() {
		defer wg.Done()
		links = s.ListLinks(ctx, session)
	}()
	wg.Wait()
	return stations, links
}

func (s *RechargeService) CurrentStations(ctx context.Context, session string) ListResult[response_models.ChargingStation] {
	return currentList(ctx, s.lists, session, "stations", s.rechargeRepo.ListStations)
}

func (s *RechargeService) CurrentLinks(ctx context.Context, session string) ListResult[response_models.RechargeLink] {
	return currentList(ctx, s.lists, session, "recharge-links", s.rechargeRepo.ListLinks)
}

func (s *RechargeService) AddStation(ctx context.Context, req request_models.AddChargingStationRequest) Outcome {
	msg, err := s.rechargeRepo.CreateStation(ctx, req)
	if err != nil {
		return refused(err)
	}
	return accepted(msg, stationCreated)
}

func (s *RechargeService) AddLink(ctx context.Context, req request_models.AddRechargeLinkRequest) Outcome {
	msg, err := s.rechargeRepo.CreateLink(ctx, req)
	if err != nil {
		return refused(err)
	}
	return accepted(msg, linkCreated)
}
