package service

import (
	"context"

	"bootwatcher/internal/errors"
)

// ErrSMSUnreachable marks a send that failed before the provider answered.
// Provider rejections (bad number, blocked destination) are not wrapped with it.
var ErrSMSUnreachable = errors.New("sms provider unreachable")

// SMSService defines the interface for SMS delivery providers
type SMSService interface {
	// SendSMS requests delivery of body to one destination and returns the
	// provider's message SID once the provider has accepted it.
	SendSMS(ctx context.Context, to, body string) (sid string, err error)
}
