package infra

import (
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"smartcity/internal/config"
)

// Backend is the connection to the smart-city REST API: one base URL and one
// pooled HTTP client shared by every repository.
type Backend struct {
	BaseURL string
	HTTP    *http.Client
}

func InitBackend(cfg *config.Config, log *zap.Logger) *Backend {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	log.Info("smartcity backend configured",
		zap.String("base_url", cfg.APIBaseURL),
		zap.Duration("timeout", cfg.APITimeout))

	return &Backend{
		BaseURL: cfg.APIBaseURL,
		HTTP:    &http.Client{Timeout: cfg.APITimeout, Transport: transport},
	}
}

func CloseBackend(b *Backend, log *zap.Logger) {
	if t, ok := b.HTTP.Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
	log.Info("smartcity backend connections closed")
}
