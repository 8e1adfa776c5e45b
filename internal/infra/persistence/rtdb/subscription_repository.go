// Package rtdb contains the persistence layer backed by the Firebase Realtime Database.
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

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	client *db.Client
	logger *slog.Logger
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(client *db.Client, logger *slog.Logger) repository.SubscriptionRepository {
	return &subscriptionRepository{
		client: client,
		logger: logger,
	}
}

// CreateSubscription pushes a new child under the subscriptions node. Push
// generates a unique, chronologically ordered key, so records never collide.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	record := model.FromSubscriptionDomain(subscription)

	ref, err := repo.client.NewRef(model.SubscriptionsPath).Push(ctx, record)
	if err != nil {
		return domainerrors.NewProviderError("firebase", errors.Wrap(err, "push subscription"))
	}

	subscription.ID = ref.Key

	return nil
}

// FindSubscriptionsByLot queries subscriptions by exact lot name. The database
// rules must index phoneNumbers on parkingLot. Records that do not decode are
// skipped so the rest of the lot still counts.
func (repo *subscriptionRepository) FindSubscriptionsByLot(ctx context.Context, lotName string) ([]*entity.Subscription, error) {
	nodes, err := repo.client.NewRef(model.SubscriptionsPath).
		OrderByChild("parkingLot").
		EqualTo(lotName).
		GetOrdered(ctx)
	if err != nil {
		return nil, domainerrors.NewProviderError("firebase", errors.Wrap(err, "query subscriptions"))
	}

	subscriptions := make([]*entity.Subscription, 0, len(nodes))
	for _, node := range nodes {
		var record model.SubscriptionRecord
		if err := node.Unmarshal(&record); err != nil {
			repo.logger.WarnContext(ctx, "Skipping undecodable subscription",
				slog.String("key", node.Key()),
				slog.Any("error", err),
			)
			continue
		}

		subscriptions = append(subscriptions, record.ToDomain(node.Key()))
	}

	return subscriptions, nil
}
