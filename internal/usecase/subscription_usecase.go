package usecase

import (
	"context"
	"time"

	"bootwatcher/internal/domain/entity"
)

// SubscriptionUsecase defines the interface for lot subscription use cases
type SubscriptionUsecase interface {
	// AddSubscription validates the phone number and appends a subscription for the lot
	AddSubscription(ctx context.Context, phoneNumber string, lot entity.LotRef) (*entity.Subscription, error)

	// CountRecent counts subscriptions for the lot created within the trailing window.
	// A non-positive window uses the configured default. Read errors count as zero.
	CountRecent(ctx context.Context, lotName string, window time.Duration) int

	// ListPhoneNumbers returns the phone numbers subscribed to the lot in store order.
	// Read errors yield an empty list.
	ListPhoneNumbers(ctx context.Context, lotName string) []string

	// GenerateLotQR generates a QR code that opens the lot's panel
	GenerateLotQR(ctx context.Context, lot entity.LotRef) ([]byte, error)

	// ProcessQRSubscription subscribes the phone number to the lot referenced by a scanned QR code
	ProcessQRSubscription(ctx context.Context, phoneNumber, qrData string) (*entity.Subscription, error)
}
