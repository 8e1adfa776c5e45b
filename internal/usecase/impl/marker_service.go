package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bootwatcher/internal/delivery/context"
	"bootwatcher/internal/domain/entity"
	domainerrors "bootwatcher/internal/domain/errors"
	"bootwatcher/internal/domain/repository"
	"bootwatcher/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type markerService struct {
	markerRepo repository.MarkerRepository
	logger     *slog.Logger
}

// MarkerServiceParams holds dependencies for MarkerService, injected by Fx.
type MarkerServiceParams struct {
	fx.In

	MarkerRepo repository.MarkerRepository
	Logger     *slog.Logger
}

// NewMarkerService creates a new custom marker service instance
func NewMarkerService(params MarkerServiceParams) usecase.MarkerUsecase {
	return &markerService{
		markerRepo: params.MarkerRepo,
		logger:     params.Logger,
	}
}

func (s *markerService) ListMarkers(ctx context.Context) ([]*entity.CustomMarker, error) {
	markers, err := s.markerRepo.FindAllMarkers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find markers")
	}

	return markers, nil
}

func (s *markerService) AddMarker(ctx context.Context, name string, location entity.Coordinate) (*entity.CustomMarker, error) {
	if !location.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location is out of range")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = entity.DefaultCustomMarkerName
	}

	marker := &entity.CustomMarker{
		Name:     name,
		Location: location,
	}
	if err := s.markerRepo.CreateMarker(ctx, marker); err != nil {
		return nil, errors.Wrap(err, "failed to create marker")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Custom marker added", slog.String("marker_id", marker.ID))

	return marker, nil
}

func (s *markerService) DeleteMarker(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("id is required")
	}

	if err := s.markerRepo.DeleteMarker(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMarkerNotFound) {
			return domainerrors.ErrMarkerNotFound
		}

		return errors.Wrap(err, "failed to delete marker")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Custom marker deleted", slog.String("marker_id", id))

	return nil
}
