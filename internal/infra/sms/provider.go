package sms

import (
	"log/slog"

	"bootwatcher/config"
	"bootwatcher/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderTwilio = "twilio"
	ProviderLog    = "log"
)

// ProviderParams holds dependencies for the SMS provider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSMSService creates the SMSService selected by configuration. It returns
// nil when SMS is not configured; dispatch then fails as provider unavailable.
func NewSMSService(params ProviderParams) (service.SMSService, error) {
	cfg := params.Config.SMS

	switch cfg.Provider {
	case "":
		params.Logger.Warn("SMS provider not configured, dispatch is disabled")

		return nil, nil

	case ProviderLog:
		params.Logger.Info("Using log SMS provider")

		return NewLogService(params.Logger), nil

	case ProviderTwilio:
		svc, err := NewTwilioService(params.Config.Twilio, cfg.DefaultCountryCode)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Twilio service")
		}
		params.Logger.Info("Using Twilio SMS provider")

		return svc, nil

	default:
		return nil, errors.Errorf("unknown sms provider: %s", cfg.Provider)
	}
}
