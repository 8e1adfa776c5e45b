// Package persistence selects the repository backend from configuration.
package persistence

import (
	"context"
	"log/slog"

	"bootwatcher/config"
	"bootwatcher/internal/domain/repository"
	"bootwatcher/internal/infra/firebase"
	"bootwatcher/internal/infra/persistence/memory"
	"bootwatcher/internal/infra/persistence/rtdb"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderMemory   = "memory"
	ProviderFirebase = "firebase"
)

// Params holds dependencies for the repository providers, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories exposed to the use cases
type Repositories struct {
	fx.Out

	Subscriptions repository.SubscriptionRepository
	Markers       repository.MarkerRepository
	Users         repository.UserRepository
}

// NewRepositories builds the repositories for the configured store provider
func NewRepositories(params Params) (Repositories, error) {
	switch params.Config.Store.Provider {
	case ProviderMemory, "":
		params.Logger.Warn("Using in-memory store, data is lost on restart")

		return Repositories{
			Subscriptions: memory.NewSubscriptionRepository(),
			Markers:       memory.NewMarkerRepository(),
			Users:         memory.NewUserRepository(nil),
		}, nil

	case ProviderFirebase:
		client, err := firebase.NewDatabaseClient(params.Ctx, params.Config.Firebase)
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using Firebase realtime database",
			slog.String("database_url", params.Config.Firebase.DatabaseURL),
		)

		return Repositories{
			Subscriptions: rtdb.NewSubscriptionRepository(client, params.Logger),
			Markers:       rtdb.NewMarkerRepository(client, params.Logger),
			Users:         rtdb.NewUserRepository(client),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store provider: %s", params.Config.Store.Provider)
	}
}
