package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"smartcity/internal/models/request_models"
	"smartcity/internal/models/response_models"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListReviews(ctx context.Context) ([]response_models.Review, error) {
	args := m.Called(ctx)
	reviews, _ := args.Get(0).([]response_models.Review)
	return reviews, args.Error(1)
}

func (m *MockReviewRepository) ListReviewsByUser(ctx context.Context, userID string) ([]response_models.Review, error) {
	args := m.Called(ctx, userID)
	reviews, _ := args.Get(0).([]response_models.Review)
	return reviews, args.Error(1)
}

func (m *MockReviewRepository) CreateReview(ctx context.Context, req request_models.AddReviewRequest) (response_models.MessageResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(response_models.MessageResponse), args.Error(1)
}

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) AssignTicket(ctx context.Context, req request_models.AssignTicketRequest) (response_models.MessageResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(response_models.MessageResponse), args.Error(1)
}

func (m *MockTicketRepository) ListTravelerTickets(ctx context.Context, travelerID string) ([]string, error) {
	args := m.Called(ctx, travelerID)
	tickets, _ := args.Get(0).([]string)
	return tickets, args.Error(1)
}

func (m *MockTicketRepository) ListTickets(ctx context.Context) ([]response_models.Ticket, error) {
	args := m.Called(ctx)
	tickets, _ := args.Get(0).([]response_models.Ticket)
	return tickets, args.Error(1)
}

type MockRechargeRepository struct {
	mock.Mock
}

func (m *MockRechargeRepository) ListStations(ctx context.Context) ([]response_models.ChargingStation, error) {
	args := m.Called(ctx)
	stations, _ := args.Get(0).([]response_models.ChargingStation)
	return stations, args.Error(1)
}

func (m *MockRechargeRepository) ListLinks(ctx context.Context) ([]response_models.RechargeLink, error) {
	args := m.Called(ctx)
	links, _ := args.Get(0).([]response_models.RechargeLink)
	return links, args.Error(1)
}

func (m *MockRechargeRepository) CreateStation(ctx context.Context, req request_models.AddChargingStationRequest) (response_models.MessageResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(response_models.MessageResponse), args.Error(1)
}

func (m *MockRechargeRepository) CreateLink(ctx context.Context, req request_models.AddRechargeLinkRequest) (response_models.MessageResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(response_models.MessageResponse), args.Error(1)
}
