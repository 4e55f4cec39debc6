package controllers_fx

import (
	"go.uber.org/fx"
	"smartcity/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHomeController),
	fx.Provide(controllers.NewHealthController))
