package infra

import (
	"log"

	"go.uber.org/zap"
	"smartcity/internal/config"
)

func InitLogger(cfg *config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger.With(zap.String("app", "smartcity-console"))
}
