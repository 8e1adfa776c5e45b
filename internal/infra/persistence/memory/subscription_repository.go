// Package memory provides process-local repositories for development and tests.
package memory

import (
	"context"
	"sync"

	"bootwatcher/internal/domain/entity"
	"bootwatcher/internal/domain/repository"

	"github.com/google/uuid"
)

type subscriptionRepository struct {
	mu      sync.RWMutex
	records []entity.Subscription
}

// NewSubscriptionRepository creates an empty in-memory subscription store.
func NewSubscriptionRepository() repository.SubscriptionRepository {
	return &subscriptionRepository{}
}

func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	subscription.ID = uuid.NewString()
	repo.records = append(repo.records, *subscription)

	return nil
}

func (repo *subscriptionRepository) FindSubscriptionsByLot(ctx context.Context, lotName string) ([]*entity.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	matches := make([]*entity.Subscription, 0)
	for i := range repo.records {
		if repo.records[i].ParkingLot != lotName {
			continue
		}
		record := repo.records[i]
		matches = append(matches, &record)
	}

	return matches, nil
}
