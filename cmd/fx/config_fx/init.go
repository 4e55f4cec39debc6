package config_fx

import (
	"go.uber.org/fx"
	"smartcity/internal/config"
	"smartcity/internal/infra"
)

var Module = fx.Provide(config.Load, infra.InitLogger)
