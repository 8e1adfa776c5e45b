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
	"bootwatcher/internal/domain/service"
	"bootwatcher/internal/usecase"
	"bootwatcher/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type dispatchService struct {
	smsService     service.SMSService
	subscriptionUC usecase.SubscriptionUsecase
	metrics        service.MetricsRecorder
	limiter        *rate.Limiter
	maxConcurrency int
	defaultMessage string
	logger         *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	SMSService     service.SMSService `optional:"true"`
	SubscriptionUC usecase.SubscriptionUsecase
	Metrics        service.MetricsRecorder
	Config         *config.Config
	Logger         *slog.Logger
}

// NewDispatchService creates a new dispatch service instance. A nil SMS
// service makes every dispatch fail as unavailable.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	cfg := params.Config.SMS

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), max(1, int(cfg.RatePerSecond)))
	}

	return &dispatchService{
		smsService:     params.SMSService,
		subscriptionUC: params.SubscriptionUC,
		metrics:        params.Metrics,
		limiter:        limiter,
		maxConcurrency: cfg.MaxConcurrency,
		defaultMessage: params.Config.Notification.MessageBody,
		logger:         params.Logger,
	}
}

// dispatch tracks one request through its states
type dispatch struct {
	result *entity.DispatchResult
	logger *slog.Logger
	start  time.Time
}

func (s *dispatchService) begin(ctx context.Context, parkingLot string) *dispatch {
	d := &dispatch{
		result: &entity.DispatchResult{ParkingLot: parkingLot, Results: []entity.DeliveryOutcome{}},
		logger: deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("parking_lot", parkingLot)),
		start:  time.Now(),
	}
	d.transition(entity.DispatchReceived)

	return d
}

func (d *dispatch) transition(state entity.DispatchState) {
	d.result.State = state
	d.logger.Debug("Dispatch state changed", slog.String("state", string(state)))
}

func (s *dispatchService) finish(d *dispatch, state entity.DispatchState) {
	d.transition(state)
	s.metrics.RecordDispatch(state, time.Since(d.start))
	d.logger.Info("Dispatch finished",
		slog.String("state", string(state)),
		slog.Int("total_sent", d.result.TotalSent),
		slog.Int("total_failed", d.result.TotalError),
		slog.String("duration", util.FormatDuration(time.Since(d.start))),
	)
}

func (s *dispatchService) fail(d *dispatch, err error) (*entity.DispatchResult, error) {
	s.finish(d, entity.DispatchFailed)

	return d.result, err
}

// Dispatch sends the message to every caller-supplied number
func (s *dispatchService) Dispatch(ctx context.Context, req *usecase.DispatchRequest) (*entity.DispatchResult, error) {
	parkingLot := ""
	if req != nil {
		parkingLot = req.ParkingLot
	}
	d := s.begin(ctx, parkingLot)

	switch {
	case req == nil || len(req.PhoneNumbers) == 0:
		return s.fail(d, domainerrors.ErrValidationFailed.WithDetails("phoneNumbers must be a non-empty list"))
	case strings.TrimSpace(req.Message) == "":
		return s.fail(d, domainerrors.ErrValidationFailed.WithDetails("message is required"))
	}
	d.transition(entity.DispatchValidated)

	return s.send(ctx, d, req.PhoneNumbers, req.Message)
}

// NotifyLot sends the message to every subscriber of the lot
func (s *dispatchService) NotifyLot(ctx context.Context, lotName, message string) (*entity.DispatchResult, error) {
	d := s.begin(ctx, lotName)

	if strings.TrimSpace(lotName) == "" {
		return s.fail(d, domainerrors.ErrValidationFailed.WithDetails("parkingLot is required"))
	}
	if strings.TrimSpace(message) == "" {
		message = s.defaultMessage
	}
	d.transition(entity.DispatchValidated)

	d.transition(entity.DispatchFetchingRecipients)
	phoneNumbers := s.subscriptionUC.ListPhoneNumbers(ctx, lotName)
	if len(phoneNumbers) == 0 {
		s.finish(d, entity.DispatchCompleted)

		return d.result, nil
	}

	return s.send(ctx, d, phoneNumbers, message)
}

// send fans out one delivery per destination and waits for all of them.
// Outcomes keep the order of phoneNumbers.
func (s *dispatchService) send(ctx context.Context, d *dispatch, phoneNumbers []string, message string) (*entity.DispatchResult, error) {
	if s.smsService == nil {
		return s.fail(d, domainerrors.ErrSMSUnavailable.WithDetails("SMS provider is not configured"))
	}
	d.transition(entity.DispatchSending)

	outcomes := make([]entity.DeliveryOutcome, len(phoneNumbers))
	unreachable := make([]bool, len(phoneNumbers))

	g := new(errgroup.Group)
	if s.maxConcurrency > 0 {
		g.SetLimit(s.maxConcurrency)
	}

	for i, phoneNumber := range phoneNumbers {
		g.Go(func() error {
			outcomes[i], unreachable[i] = s.deliver(ctx, d.logger, phoneNumber, message)

			return nil
		})
	}
	_ = g.Wait()

	allUnreachable := true
	for i, outcome := range outcomes {
		s.metrics.RecordDelivery(outcome)
		if outcome.Accepted() {
			d.result.TotalSent++
		} else {
			d.result.TotalError++
		}
		allUnreachable = allUnreachable && unreachable[i]
	}
	d.result.Results = outcomes

	if allUnreachable {
		return s.fail(d, domainerrors.ErrSMSUnavailable.WithDetails(outcomes[0].Error))
	}

	s.finish(d, entity.DispatchCompleted)

	return d.result, nil
}

// deliver performs one send and reports whether the provider was unreachable
func (s *dispatchService) deliver(ctx context.Context, logger *slog.Logger, phoneNumber, message string) (entity.DeliveryOutcome, bool) {
	outcome := entity.DeliveryOutcome{PhoneNumber: phoneNumber}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			outcome.Error = err.Error()

			return outcome, true
		}
	}

	sid, err := s.smsService.SendSMS(ctx, phoneNumber, message)
	if err != nil {
		outcome.Error = err.Error()
		logger.Warn("SMS delivery failed",
			slog.String("phone_number", util.MaskPhoneNumber(phoneNumber)),
			slog.Any("error", err),
		)

		return outcome, errors.Is(err, service.ErrSMSUnreachable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
	}

	outcome.SID = sid

	return outcome, false
}
