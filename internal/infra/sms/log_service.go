package sms

import (
	"context"
	"log/slog"

	"bootwatcher/internal/domain/service"

	"github.com/google/uuid"
)

// logService accepts every message and only logs it. Used for local development.
type logService struct {
	logger *slog.Logger
}

// NewLogService creates an SMS service that logs instead of sending
func NewLogService(logger *slog.Logger) service.SMSService {
	return &logService{logger: logger}
}

func (s *logService) SendSMS(ctx context.Context, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sid := "LOG" + uuid.NewString()
	s.logger.InfoContext(ctx, "[LogSMS] Message accepted",
		slog.String("to", to),
		slog.String("sid", sid),
		slog.Int("body_length", len(body)),
	)

	return sid, nil
}
