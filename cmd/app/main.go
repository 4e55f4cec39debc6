package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"smartcity/cmd/fx/backend_fx"
	"smartcity/cmd/fx/config_fx"
	"smartcity/cmd/fx/controllers_fx"
	"smartcity/cmd/fx/event_fx"
	"smartcity/cmd/fx/infrastructure_fx"
	"smartcity/cmd/fx/memcache_fx"
	"smartcity/cmd/fx/recharge_fx"
	"smartcity/cmd/fx/review_fx"
	"smartcity/cmd/fx/ticket_fx"
	"smartcity/cmd/fx/transport_fx"
	"smartcity/cmd/fx/trip_fx"
	"smartcity/internal/api/controllers"
	"smartcity/internal/config"
	"smartcity/internal/monitoring"
	"smartcity/pkg/middleware"
	"smartcity/pkg/utils"
	"smartcity/web"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		backend_fx.Module,
		memcache_fx.Module,
		review_fx.Module,
		infrastructure_fx.Module,
		event_fx.Module,
		recharge_fx.Module,
		ticket_fx.Module,
		trip_fx.Module,
		transport_fx.Module,
		controllers_fx.Module,

		fx.Invoke(registerMetrics),
		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func registerMetrics(cfg *config.Config) {
	if cfg.EnableMetrics {
		utils.PageRenderHook = monitoring.TrackPageRender
	}
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr), zap.String("backend", cfg.APIBaseURL))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	homeController *controllers.HomeController,
	healthController *controllers.HealthController,
	reviewController *controllers.ReviewController,
	eventController *controllers.EventController,
	infrastructureController *controllers.InfrastructureController,
	rechargeController *controllers.RechargeController,
	ticketController *controllers.TicketController,
	tripController *controllers.TripController,
	transportController *controllers.TransportController) (*gin.Engine, error) {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.AllowOrigins))
	r.SetHTMLTemplate(templates)
	r.StaticFS("/static", web.Static())

	r.GET("/health", healthController.Health)
	if cfg.EnableMetrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	pages := r.Group("/")
	pages.Use(middleware.ViewSessionMiddleware())
	RegisterRoutes(pages, homeController, reviewController, eventController, infrastructureController,
		rechargeController, ticketController, tripController, transportController)

	r.NoRoute(homeController.NotFound)

	return r, nil
}

func RegisterRoutes(r *gin.RouterGroup,
	homeController *controllers.HomeController,
	reviewController *controllers.ReviewController,
	eventController *controllers.EventController,
	infrastructureController *controllers.InfrastructureController,
	rechargeController *controllers.RechargeController,
	ticketController *controllers.TicketController,
	tripController *controllers.TripController,
	transportController *controllers.TransportController) {

	r.GET("/", homeController.Home)

	r.GET("/avis", reviewController.ListReviews)
	r.POST("/avis", reviewController.AddReview)

	r.GET("/events", eventController.ListEvents)
	r.POST("/events", eventController.AddEvent)

	r.GET("/infrastructures", infrastructureController.ListInfrastructures)
	r.POST("/infrastructures", infrastructureController.AddInfrastructure)

	rechargeGroup := r.Group("/recharge")
	rechargeGroup.GET("", rechargeController.ShowRecharge)
	rechargeGroup.POST("/stations", rechargeController.AddStation)
	rechargeGroup.POST("/links", rechargeController.AddLink)

	r.GET("/tickets", ticketController.ListTickets)
	r.POST("/tickets", ticketController.AssignTicket)

	tripsGroup := r.Group("/trajets")
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.POST("", tripController.AddTrip)
	tripsGroup.POST("/links", tripController.AddTripLink)

	r.GET("/transports", transportController.ListNetworks)
	r.POST("/transports", transportController.AddNetwork)
}
