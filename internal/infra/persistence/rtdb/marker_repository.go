package rtdb

import (
	"context"
	"log/slog"

	"bootwatcher/internal/domain/entity"
	domainerrors "bootwatcher/internal/domain/errors"
	"bootwatcher/internal/domain/repository"
	"bootwatcher/internal/infra/persistence/model"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

type markerRepository struct {
	client *db.Client
	logger *slog.Logger
}

// NewMarkerRepository is the constructor for markerRepository.
func NewMarkerRepository(client *db.Client, logger *slog.Logger) repository.MarkerRepository {
	return &markerRepository{
		client: client,
		logger: logger,
	}
}

func (repo *markerRepository) CreateMarker(ctx context.Context, marker *entity.CustomMarker) error {
	ref, err := repo.client.NewRef(model.MarkersPath).Push(ctx, model.FromMarkerDomain(marker))
	if err != nil {
		return domainerrors.NewProviderError("firebase", errors.Wrap(err, "push custom marker"))
	}

	marker.ID = ref.Key

	return nil
}

func (repo *markerRepository) FindAllMarkers(ctx context.Context) ([]*entity.CustomMarker, error) {
	nodes, err := repo.client.NewRef(model.MarkersPath).OrderByKey().GetOrdered(ctx)
	if err != nil {
		return nil, domainerrors.NewProviderError("firebase", errors.Wrap(err, "load custom markers"))
	}

	markers := make([]*entity.CustomMarker, 0, len(nodes))
	for _, node := range nodes {
		var record model.MarkerRecord
		if err := node.Unmarshal(&record); err != nil {
			repo.logger.WarnContext(ctx, "Skipping undecodable custom marker",
				slog.String("key", node.Key()),
				slog.Any("error", err),
			)
			continue
		}
		markers = append(markers, record.ToDomain(node.Key()))
	}

	return markers, nil
}

func (repo *markerRepository) DeleteMarker(ctx context.Context, id string) error {
	ref := repo.client.NewRef(model.MarkersPath).Child(id)

	var existing map[string]any
	if err := ref.Get(ctx, &existing); err != nil {
		return domainerrors.NewProviderError("firebase", errors.Wrap(err, "load custom marker"))
	}
	if existing == nil {
		return repository.ErrMarkerNotFound
	}

	if err := ref.Delete(ctx); err != nil {
		return domainerrors.NewProviderError("firebase", errors.Wrap(err, "delete custom marker"))
	}

	return nil
}
