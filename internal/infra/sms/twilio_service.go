// Package sms contains SMS delivery providers.
package sms

import (
	"context"
	"strings"

	"bootwatcher/config"
	"bootwatcher/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator is the subset of the Twilio REST API used for sending.
type messageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

type twilioService struct {
	api         messageCreator
	from        string
	countryCode string
}

// NewTwilioService creates a Twilio SMS service authenticated with an API key
func NewTwilioService(cfg *config.TwilioConfig, countryCode string) (service.SMSService, error) {
	if cfg == nil || cfg.AccountSID == "" || cfg.APIKeySID == "" || cfg.APIKeySecret == "" {
		return nil, errors.New("twilio accountSid, apiKeySid and apiKeySecret are required")
	}
	if cfg.PhoneNumber == "" {
		return nil, errors.New("twilio phoneNumber is required")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.APIKeySID,
		Password:   cfg.APIKeySecret,
		AccountSid: cfg.AccountSID,
	})

	return newTwilioService(client.Api, cfg.PhoneNumber, countryCode), nil
}

func newTwilioService(api messageCreator, from, countryCode string) *twilioService {
	return &twilioService{
		api:         api,
		from:        from,
		countryCode: countryCode,
	}
}

// SendSMS sends one message through the Twilio Messages API
func (s *twilioService) SendSMS(ctx context.Context, to, body string) (string, error) {
	// The Twilio client has no context support; honour cancellation up front.
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(ToE164(to, s.countryCode))
	params.SetFrom(s.from)
	params.SetBody(body)

	message, err := s.api.CreateMessage(params)
	if err != nil {
		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) {
			return "", errors.Errorf("twilio rejected message (code %d): %s", restErr.Code, restErr.Message)
		}

		return "", errors.Wrap(service.ErrSMSUnreachable, err.Error())
	}

	if message == nil || message.Sid == nil {
		return "", errors.New("twilio returned no message sid")
	}

	return *message.Sid, nil
}

// ToE164 prefixes bare 10-digit numbers with the country code. Numbers that
// already carry a "+" are returned unchanged.
func ToE164(number, countryCode string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, "+") || countryCode == "" {
		return number
	}

	return countryCode + number
}
