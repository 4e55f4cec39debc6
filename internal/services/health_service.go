package services

import (
	"context"
	"time"

	"smartcity/internal/repositories"
)

type BackendStatus struct {
	Reachable bool   `json:"reachable"`
	BaseURL   string `json:"base_url"`
	Latency   string `json:"latency"`
	Error     string `json:"error,omitempty"`
}

type HealthServiceInterface interface {
	CheckBackend(ctx context.Context) BackendStatus
}

type HealthService struct {
	backend *repositories.BackendRepository
}

func NewHealthService(backend *repositories.BackendRepository) HealthServiceInterface {
	return &HealthService{backend: backend}
}

func (s *HealthService) CheckBackend(ctx context.Context) BackendStatus {
	start := time.Now()
	err := s.backend.Ping(ctx)
	status := BackendStatus{
		Reachable: err == nil,
		BaseURL:   s.backend.BaseURL(),
		Latency:   time.Since(start).Round(time.Millisecond).String(),
	}
	if err != nil {
		status.Error = ErrorText(err)
	}
	return status
}
