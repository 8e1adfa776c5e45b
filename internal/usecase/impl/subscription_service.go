package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bootwatcher/config"
	deliverycontext "bootwatcher/internal/delivery/context"
	"bootwatcher/internal/domain/entity"
	domainerrors "bootwatcher/internal/domain/errors"
	"bootwatcher/internal/domain/repository"
	"bootwatcher/internal/domain/service"
	"bootwatcher/internal/usecase"
	"bootwatcher/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	opCountRecent      = "count_recent"
	opListPhoneNumbers = "list_phone_numbers"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	qrcodeService    service.QRCodeService
	metrics          service.MetricsRecorder
	window           time.Duration
	logger           *slog.Logger
	now              func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	QRCodeService    service.QRCodeService
	Metrics          service.MetricsRecorder
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		qrcodeService:    params.QRCodeService,
		metrics:          params.Metrics,
		window:           params.Config.Notification.Window,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AddSubscription appends a subscription record for the lot
func (s *subscriptionService) AddSubscription(ctx context.Context, phoneNumber string, lot entity.LotRef) (*entity.Subscription, error) {
	if !entity.ValidPhoneNumber(phoneNumber) {
		return nil, domainerrors.ErrInvalidPhoneNumber
	}
	if strings.TrimSpace(lot.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("parkingLot is required")
	}

	subscription := &entity.Subscription{
		PhoneNumber:  phoneNumber,
		ParkingLot:   lot.Name,
		ParkingLotID: lot.ID,
		Timestamp:    s.now().UTC(),
	}

	if err := s.subscriptionRepo.CreateSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	s.metrics.RecordSubscription(lot.Name)
	s.log(ctx).Info("Subscription added",
		slog.String("subscription_id", subscription.ID),
		slog.String("parking_lot", lot.Name),
		slog.String("phone_number", util.MaskPhoneNumber(phoneNumber)),
	)

	return subscription, nil
}

// CountRecent counts subscriptions for the lot inside [now-window, now]
func (s *subscriptionService) CountRecent(ctx context.Context, lotName string, window time.Duration) int {
	if window <= 0 {
		window = s.window
	}

	subscriptions, err := s.subscriptionRepo.FindSubscriptionsByLot(ctx, lotName)
	if err != nil {
		s.readFailed(ctx, opCountRecent, lotName, err)

		return 0
	}

	now := s.now()
	count := 0
	for _, sub := range subscriptions {
		if sub.ParkingLot == lotName && sub.WithinWindow(now, window) {
			count++
		}
	}

	return count
}

// ListPhoneNumbers returns every phone number subscribed to the lot
func (s *subscriptionService) ListPhoneNumbers(ctx context.Context, lotName string) []string {
	subscriptions, err := s.subscriptionRepo.FindSubscriptionsByLot(ctx, lotName)
	if err != nil {
		s.readFailed(ctx, opListPhoneNumbers, lotName, err)

		return []string{}
	}

	phoneNumbers := make([]string, 0, len(subscriptions))
	for _, sub := range subscriptions {
		if sub.ParkingLot == lotName {
			phoneNumbers = append(phoneNumbers, sub.PhoneNumber)
		}
	}

	return phoneNumbers
}

// readFailed logs a degraded read. Cancelled reads belong to closed panels
// and are not failures.
func (s *subscriptionService) readFailed(ctx context.Context, operation, lotName string, err error) {
	if errors.Is(err, context.Canceled) {
		s.log(ctx).Debug("Subscription read cancelled", slog.String("operation", operation), slog.String("parking_lot", lotName))

		return
	}

	s.metrics.RecordStoreReadFailure(operation)
	s.log(ctx).Error("Subscription read failed",
		slog.String("operation", operation),
		slog.String("parking_lot", lotName),
		slog.Any("error", err),
	)
}

// GenerateLotQR generates a QR code for the lot's panel
func (s *subscriptionService) GenerateLotQR(ctx context.Context, lot entity.LotRef) ([]byte, error) {
	if strings.TrimSpace(lot.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	qrCode, err := s.qrcodeService.GenerateLotQR(lot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate lot QR")
	}

	return qrCode, nil
}

// ProcessQRSubscription subscribes the phone number to the lot in the QR code
func (s *subscriptionService) ProcessQRSubscription(ctx context.Context, phoneNumber, qrData string) (*entity.Subscription, error) {
	lot, err := s.qrcodeService.ParseLotQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid QR code")
	}

	return s.AddSubscription(ctx, phoneNumber, lot)
}
