package main

import (
	"context"
	"log/slog"
	"os"

	"bootwatcher/config"
	"bootwatcher/internal/delivery"
	"bootwatcher/internal/delivery/api"
	"bootwatcher/internal/delivery/api/router/handler"
	"bootwatcher/internal/domain/service"
	logs "bootwatcher/internal/infra/log"
	"bootwatcher/internal/infra/metrics"
	"bootwatcher/internal/infra/persistence"
	"bootwatcher/internal/infra/places"
	"bootwatcher/internal/infra/qrcode"
	"bootwatcher/internal/infra/sms"
	"bootwatcher/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			sms.NewSMSService,
			places.NewPlacesService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSubscriptionService,
			impl.NewDispatchService,
			impl.NewMapService,
			impl.NewMarkerService,
			impl.NewUserService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRelayHandler,
			handler.NewLotHandler,
			handler.NewSubscriptionHandler,
			handler.NewMarkerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
