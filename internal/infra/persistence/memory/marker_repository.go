package memory

import (
	"context"
	"sync"

	"bootwatcher/internal/domain/entity"
	"bootwatcher/internal/domain/repository"

	"github.com/google/uuid"
)

type markerRepository struct {
	mu      sync.RWMutex
	order   []string
	markers map[string]entity.CustomMarker
}

// NewMarkerRepository creates an empty in-memory marker store.
func NewMarkerRepository() repository.MarkerRepository {
	return &markerRepository{
		markers: make(map[string]entity.CustomMarker),
	}
}

func (repo *markerRepository) CreateMarker(ctx context.Context, marker *entity.CustomMarker) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	marker.ID = uuid.NewString()
	repo.markers[marker.ID] = *marker
	repo.order = append(repo.order, marker.ID)

	return nil
}

func (repo *markerRepository) FindAllMarkers(ctx context.Context) ([]*entity.CustomMarker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	markers := make([]*entity.CustomMarker, 0, len(repo.order))
	for _, id := range repo.order {
		marker := repo.markers[id]
		markers = append(markers, &marker)
	}

	return markers, nil
}

func (repo *markerRepository) DeleteMarker(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.markers[id]; !ok {
		return repository.ErrMarkerNotFound
	}

	delete(repo.markers, id)
	for i, key := range repo.order {
		if key == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)

			break
		}
	}

	return nil
}
