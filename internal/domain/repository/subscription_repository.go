// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bootwatcher/internal/domain/entity"
)

// SubscriptionRepository defines the append-only store of lot subscriptions.
type SubscriptionRepository interface {
	// CreateSubscription appends a new record and sets its generated ID.
	// Existing records are never overwritten.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// FindSubscriptionsByLot returns every record whose lot name equals lotName exactly.
	FindSubscriptionsByLot(ctx context.Context, lotName string) ([]*entity.Subscription, error)
}
