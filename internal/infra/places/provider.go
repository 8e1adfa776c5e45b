package places

import (
	"context"
	"log/slog"

	"bootwatcher/config"
	"bootwatcher/internal/domain/service"

	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the places provider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPlacesService creates the PlacesService. Without an API key it returns
// nil and map lookups report the access denied state.
func NewPlacesService(params ProviderParams) (service.PlacesService, error) {
	cfg := params.Config.Places
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Warn("Places API key not configured, nearby lookups are disabled")

		return nil, nil
	}

	return NewGoogleService(params.Ctx, cfg)
}
