// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bootwatcher/internal/delivery/api/router/handler"
	"bootwatcher/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RelayHandler        *handler.RelayHandler
	LotHandler          *handler.LotHandler
	SubscriptionHandler *handler.SubscriptionHandler
	MarkerHandler       *handler.MarkerHandler
	Gatherer            prometheus.Gatherer `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	relayHandler        *handler.RelayHandler
	lotHandler          *handler.LotHandler
	subscriptionHandler *handler.SubscriptionHandler
	markerHandler       *handler.MarkerHandler
	gatherer            prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		relayHandler:        params.RelayHandler,
		lotHandler:          params.LotHandler,
		subscriptionHandler: params.SubscriptionHandler,
		markerHandler:       params.MarkerHandler,
		gatherer:            params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))
	}

	// Relay routes kept at the root for existing UI builds
	e.GET("/", r.relayHandler.Welcome)
	e.POST("/send-sms", r.relayHandler.SendSMS)
	e.GET("/users", r.relayHandler.ListUsers)

	apiV1 := e.Group("/api/v1")

	apiV1.GET("/map", r.lotHandler.GetMap)

	lotsGroup := apiV1.Group("/lots")
	{
		lotsGroup.GET("", r.lotHandler.FindLots)
		lotsGroup.GET("/panel", r.lotHandler.GetPanel)
		lotsGroup.GET("/count", r.lotHandler.CountRecent)
		lotsGroup.GET("/subscribers", r.lotHandler.ListSubscribers)
		lotsGroup.GET("/qr", r.lotHandler.GenerateLotQR)
		lotsGroup.POST("/notify", r.lotHandler.NotifyLot)
	}

	subscriptionsGroup := apiV1.Group("/subscriptions")
	{
		subscriptionsGroup.POST("", r.subscriptionHandler.Subscribe)
		subscriptionsGroup.POST("/qr", r.subscriptionHandler.ProcessQRSubscription)
	}

	markersGroup := apiV1.Group("/markers")
	{
		markersGroup.GET("", r.markerHandler.ListMarkers)
		markersGroup.POST("", r.markerHandler.CreateMarker)
		markersGroup.DELETE("/:id", r.markerHandler.DeleteMarker)
	}
}
